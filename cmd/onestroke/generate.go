package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/generator"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/validate"
)

func newGenerateCmd(a *app) *cobra.Command {
	var from, to, difficulty int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a range of new levels and append them to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, from, to, difficulty)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "First level ID")
	cmd.Flags().IntVar(&to, "to", 0, "Last level ID (inclusive)")
	cmd.Flags().IntVar(&difficulty, "difficulty", 1, "Difficulty tier")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, from, to, difficulty int) error {
	if from <= 0 || to < from {
		return fmt.Errorf("generate: invalid range %d..%d", from, to)
	}
	if _, err := a.tiers.Get(difficulty); err != nil {
		return err
	}

	cat, err := a.loadCatalog(strictCatalog, true)
	if err != nil {
		return err
	}
	for id := from; id <= to; id++ {
		if cat.Index(id) >= 0 {
			return fmt.Errorf("generate: level %d: %w", id, level.ErrDuplicateLevel)
		}
	}

	opts := a.checkOptions()
	gate := func(l level.Level) error { return validate.Level(l, opts...) }

	reg := generator.NewRegistry(cat, 0)
	batch, err := a.generator().GenerateRange(cmd.Context(), from, to, difficulty, reg, gate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range batch.Levels {
		fmt.Fprintf(out, "level %d: %d nodes, %d edges\n", l.ID, len(l.Nodes), len(l.Edges))
		if err := cat.Append(l); err != nil {
			return err
		}
	}
	for _, id := range batch.Failed {
		fmt.Fprintf(out, "level %d: generation failed, skipped\n", id)
	}

	if len(batch.Levels) > 0 {
		if err := a.saveCatalog(cat); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%d generated, %d failed\n", len(batch.Levels), len(batch.Failed))
	return nil
}
