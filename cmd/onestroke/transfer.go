package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/store"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		notation string
		replace  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge levels written in the text notation into the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(a, cmd.OutOrStdout(), notation, replace)
		},
	}
	cmd.Flags().StringVar(&notation, "notation", "", "Notation file to import")
	cmd.Flags().BoolVar(&replace, "replace", false, "Overwrite levels whose ID already exists")
	_ = cmd.MarkFlagRequired("notation")
	return cmd
}

func runImport(a *app, out io.Writer, path string, replace bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	incoming, err := store.ParseNotation(path, string(src))
	if err != nil {
		return err
	}

	cat, err := a.loadCatalog(strictCatalog, true)
	if err != nil {
		return err
	}
	for _, l := range incoming {
		switch {
		case replace && cat.Replace(l):
			fmt.Fprintf(out, "level %d: replaced\n", l.ID)
		default:
			if err := cat.Append(l); err != nil {
				return err
			}
			fmt.Fprintf(out, "level %d: added\n", l.ID)
		}
	}
	cat.SortByID()
	return a.saveCatalog(cat)
}

func newExportBadgerCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export-badger",
		Short: "Copy the catalog into a badger database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("db") {
				a.cfg.Catalog.BadgerDir = dir
			}
			return runExportBadger(a, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&dir, "db", "", "Badger directory (overrides catalog.badger_dir)")
	return cmd
}

func runExportBadger(a *app, out io.Writer) (err error) {
	cat, err := a.loadCatalog(strictCatalog, false)
	if err != nil {
		return err
	}

	db, err := store.OpenBadger(a.cfg.Catalog.BadgerDir, false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	if err := db.PutCatalog(cat); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d levels exported to %s\n", len(cat), a.cfg.Catalog.BadgerDir)
	return nil
}
