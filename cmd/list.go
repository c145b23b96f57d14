package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
	"github.com/lakshaymaurya-felt/pccleaner/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cleanup targets",
	Long:  "List every cleanup target with its category, whether it needs administrator rights, and whether it is installed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		printTargets(current.cleaner.Catalog(), catalog.Category(category), current.cleaner.Elevated)
		return nil
	},
}

func init() {
	listCmd.Flags().String("category", "", "Only list one category (system, apps, browser, graphics)")
}

// builtinCatalog is the catalog bound to the real filesystem, for code paths
// that run without bootstrap.
func builtinCatalog() *catalog.Catalog {
	return catalog.New(afero.NewOsFs(), config.DetectFolders())
}

func printTargets(c *catalog.Catalog, category catalog.Category, elevated bool) {
	targets := c.Targets()
	if category != "" {
		targets = c.TargetsByCategory(category)
	}

	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)
	name := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorText).Width(20)
	cat := lipgloss.NewStyle().Foreground(ui.ColorSecondary).Width(10)

	for _, t := range targets {
		res := c.ResolveTarget(t)

		line := "  " + name.Render(string(t.ID)) + cat.Render(string(t.Category)) + dim.Render(t.Description)
		if res.Status == catalog.NotInstalled {
			line += dim.Render(fmt.Sprintf("  %s %s", ui.IconPipe, res.Status))
		}
		if t.RequiresAdmin && !elevated {
			line += " " + ui.TagAdminStyle().Render(" "+ui.IconShield+" admin ")
		}
		fmt.Println(line)
	}
}
