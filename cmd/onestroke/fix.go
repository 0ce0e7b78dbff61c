package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newFixCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Patch or regenerate invalid levels and save the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, a, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report repairs without writing the catalog")
	return cmd
}

func runFix(cmd *cobra.Command, a *app, dryRun bool) error {
	cat, err := a.loadCatalog(lenientCatalog, false)
	if err != nil {
		return err
	}

	fixed, res, err := a.pipeline().Run(cmd.Context(), cat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printRepair(out, res.Checked, res.Invalid, res.Patched, res.Replaced)
	for _, f := range res.Failed {
		fmt.Fprintf(out, "failed: level %d: %s\n", f.LevelID, f.Reason)
	}

	if res.Changed() && !dryRun {
		if err := a.saveCatalog(fixed); err != nil {
			return err
		}
	}
	if len(res.Failed) > 0 {
		return fmt.Errorf("%d levels could not be repaired", len(res.Failed))
	}
	return nil
}

func printRepair(out io.Writer, checked, invalid int, patched, replaced []int) {
	fmt.Fprintf(out, "%d levels checked, %d invalid\n", checked, invalid)
	if len(patched) > 0 {
		fmt.Fprintf(out, "patched: %s\n", joinInts(patched))
	}
	if len(replaced) > 0 {
		fmt.Fprintf(out, "replaced: %s\n", joinInts(replaced))
	}
}
