package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"specsort/internal/classify"
	"specsort/internal/organize"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Preview what organize would do, without changing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			if root, err = filepath.Abs(root); err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			plans, err := organize.PlanDir(root, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writePlansJSON(out, root, plans)
			}
			printPlans(out, root, plans)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan as JSON")
	return cmd
}

func printPlans(out io.Writer, root string, plans []organize.Plan) {
	if len(plans) == 0 {
		fmt.Fprintf(out, "No files to organize in %s\n", root)
		return
	}

	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, []string{plan.Name, planAction(plan), planDetail(plan)})
	}
	fmt.Fprintln(out, renderTable([]string{"File", "Action", "Detail"}, rows, nil))
}

func planAction(plan organize.Plan) string {
	switch plan.Classification.Kind {
	case classify.KindBinary:
		return "delete"
	case classify.KindExcluded:
		return "skip"
	case classify.KindReference, classify.KindSample:
		return "move"
	default:
		return "error"
	}
}

func planDetail(plan organize.Plan) string {
	switch plan.Classification.Kind {
	case classify.KindBinary:
		return "instrument binary"
	case classify.KindExcluded:
		return "excluded"
	case classify.KindMalformed:
		return plan.Classification.Reason
	default:
		return plan.Destination
	}
}
