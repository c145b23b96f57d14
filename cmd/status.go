package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccleaner/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage and target availability",
	Long:  "Show system drive usage, host and GPU information, and which cleanup targets are installed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := status.Collect(current.cleaner, status.SystemDrive(current.folders))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}

		fmt.Println(status.Render(snap))
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("json", false, "Output status as JSON")
}
