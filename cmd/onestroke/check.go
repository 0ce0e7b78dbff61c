package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/validate"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every level of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(a, cmd.OutOrStdout())
		},
	}
}

func runCheck(a *app, out io.Writer) error {
	cat, err := a.loadCatalog(lenientCatalog, false)
	if err != nil {
		return err
	}

	reports := validate.CheckCatalog(cat, a.checkOptions()...)
	for _, r := range reports {
		fmt.Fprintln(out, r.String())
	}
	for _, ids := range validate.Duplicates(cat) {
		fmt.Fprintf(out, "duplicate fingerprint: levels %s\n", joinInts(ids))
	}

	bad := validate.Invalid(reports)
	fmt.Fprintf(out, "%d levels checked, %d invalid\n", len(reports), len(bad))
	if len(bad) > 0 {
		return fmt.Errorf("%d invalid levels", len(bad))
	}
	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
