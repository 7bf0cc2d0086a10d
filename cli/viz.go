// ABOUTME: Visualization CLI command
// ABOUTME: Renders the account/project pipeline as Graphviz DOT
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ptrack/store"
	"ptrack/viz"
)

// VizCommand routes the viz subcommands.
func VizCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("viz requires a subcommand: pipeline")
	}
	switch args[0] {
	case "pipeline":
		return vizPipelineCommand(st, args[1:])
	default:
		return fmt.Errorf("unknown viz subcommand: %s", args[0])
	}
}

func vizPipelineCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz pipeline", flag.ExitOnError)
	account := fs.String("account", "", "Limit the graph to one account name")
	out := fs.String("out", "", "Write DOT output to a file instead of stdout")
	fs.Parse(args)

	accountID := ""
	if *account != "" {
		acct, err := st.AccountByName(*account)
		if err != nil {
			return err
		}
		if acct == nil {
			return fmt.Errorf("account not found: %s", *account)
		}
		accountID = acct.ID
	}

	gen := viz.NewGraphGenerator(st)
	dot, err := gen.GeneratePipelineGraph(context.Background(), accountID)
	if err != nil {
		return err
	}

	if *out == "" {
		fmt.Print(dot)
		return nil
	}
	if err := os.WriteFile(*out, []byte(dot), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	fmt.Printf("✓ Graph written to %s\n", *out)
	return nil
}
