package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/clean"
	"github.com/lakshaymaurya-felt/pccleaner/internal/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [target...]",
	Short: "Free up disk space",
	Long: `Empty the cache folders of one or more targets.

Name targets explicitly (see 'pcc list') or select whole categories.
Admin-only targets are not cleaned without administrator rights and are
listed with a warning. The command fails when a target named explicitly,
or every selected target, needs administrator rights.`,
	Example: `  pcc clean Steam Discord
  pcc clean --browser
  pcc clean --all`,
	ValidArgsFunction: completeTargets,
	RunE:              runClean,
}

func init() {
	cleanCmd.Flags().Bool("all", false, "Clean every target")
	cleanCmd.Flags().Bool("system", false, "Clean Windows caches (requires admin)")
	cleanCmd.Flags().Bool("apps", false, "Clean Steam and Discord caches")
	cleanCmd.Flags().Bool("browser", false, "Clean browser caches")
	cleanCmd.Flags().Bool("graphics", false, "Clean graphics shader caches")
}

var categoryFlags = map[string]catalog.Category{
	"system":   catalog.CategorySystem,
	"apps":     catalog.CategoryApps,
	"browser":  catalog.CategoryBrowser,
	"graphics": catalog.CategoryGraphics,
}

func runClean(cmd *cobra.Command, args []string) error {
	c := current.cleaner
	cat := c.Catalog()

	seen := make(map[catalog.ID]bool)
	var explicit, bulk []catalog.Target

	for _, arg := range args {
		t, ok := cat.Lookup(arg)
		if !ok {
			return fmt.Errorf("%w: %q (run 'pcc list')", catalog.ErrUnknownTarget, arg)
		}
		if !seen[t.ID] {
			seen[t.ID] = true
			explicit = append(explicit, t)
		}
	}

	all, _ := cmd.Flags().GetBool("all")
	categories := make(map[catalog.Category]bool)
	for name, category := range categoryFlags {
		if on, _ := cmd.Flags().GetBool(name); on {
			categories[category] = true
		}
	}
	for _, t := range cat.Targets() {
		if (all || categories[t.Category]) && !seen[t.ID] {
			seen[t.ID] = true
			bulk = append(bulk, t)
		}
	}

	if len(explicit) == 0 && len(bulk) == 0 {
		return cmd.Help()
	}

	var reports []clean.Report
	explicitRefused := false
	for _, t := range explicit {
		r, err := c.RunTarget(t)
		if err != nil && !errors.Is(err, clean.ErrElevationRequired) {
			return err
		}
		explicitRefused = explicitRefused || r.Refused
		reports = append(reports, r)
	}
	if len(bulk) > 0 {
		reports = append(reports, c.RunAll(bulk...)...)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReports(reports))

	// A refused explicit target, or a selection where every target was
	// refused, fails the command.
	if explicitRefused || allRefused(reports) {
		return fmt.Errorf("%w: %w", errShown, clean.ErrElevationRequired)
	}
	return nil
}

func allRefused(reports []clean.Report) bool {
	for _, r := range reports {
		if !r.Refused {
			return false
		}
	}
	return len(reports) > 0
}

// completeTargets offers catalog identifiers for shell completion.
func completeTargets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, t := range builtinCatalog().Targets() {
		ids = append(ids, string(t.ID)+"\t"+t.Description)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
