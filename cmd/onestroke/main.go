// Command onestroke maintains a catalog of single-stroke puzzle levels:
// it checks, repairs, generates, solves, imports and exports them.
//
//	onestroke check --catalog levels.json
//	onestroke fix --catalog levels.json
//	onestroke generate --from 101 --to 120 --difficulty 3
//	onestroke solve --level 7
//	onestroke import --notation extra.lvl
//	onestroke export-badger --db levels.badger
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	var a app
	if err := run(&a, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command line and flushes spans whether or not the
// command failed.
func run(a *app, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if serr := a.shutdown(); err == nil {
		err = serr
	}
	return err
}
