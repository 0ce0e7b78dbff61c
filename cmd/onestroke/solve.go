package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/engine"
	"github.com/katalvlaran/onestroke/euler"
)

func newSolveCmd(a *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print a complete trail and the starting hint for one level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(a, cmd.OutOrStdout(), id)
		},
	}
	cmd.Flags().IntVar(&id, "level", 0, "Level ID")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func runSolve(a *app, out io.Writer, id int) error {
	cat, err := a.loadCatalog(strictCatalog, false)
	if err != nil {
		return err
	}
	e, err := engine.Load(cat, id)
	if err != nil {
		return err
	}
	l := e.Level()

	var opts []euler.Option
	if n := a.cfg.Generator.StepLimit; n > 0 {
		opts = append(opts, euler.WithStepLimit(n))
	}
	walk, ok := euler.Solve(l.Nodes, l.Edges, opts...)
	if !ok {
		return fmt.Errorf("level %d: no complete trail", id)
	}
	fmt.Fprintf(out, "level %d: trail %s\n", id, joinInts(walk))

	if hint, ok := e.Hint(); ok {
		fmt.Fprintf(out, "hint: start at %d\n", hint)
	}
	return nil
}
