package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"specsort/internal/history"
	"specsort/internal/organize"
)

const lockFileName = ".specsort.lock"

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "organize [dir]",
		Short: "Reorganize a directory of spectrum acquisitions in place",
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

			lockPath := filepath.Join(root, lockFileName)
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock %s: %w", lockPath, err)
			}
			if !locked {
				return fmt.Errorf("another specsort run holds %s", lockPath)
			}
			defer func() {
				_ = lock.Unlock()
				_ = os.Remove(lockPath)
			}()

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				logger.Warn("history store unavailable, continuing without run records", "error", err)
				store = nil
			} else {
				defer store.Close()
			}

			report, err := organize.New(cfg, store, logger).Run(cmd.Context(), root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				if err := writeReportJSON(out, report); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}

			if report.HasFailures() {
				return fmt.Errorf("%d file(s) could not be processed", report.Count(history.ActionFailed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	return cmd
}

func printReport(out io.Writer, report *organize.Report) {
	rows := [][]string{
		{"Moved", strconv.Itoa(report.Count(history.ActionMoved))},
		{"Deleted", strconv.Itoa(report.Count(history.ActionDeleted))},
		{"Skipped", strconv.Itoa(report.Count(history.ActionSkipped))},
		{"Failed", strconv.Itoa(report.Count(history.ActionFailed))},
	}
	fmt.Fprintln(out, renderTable([]string{"Outcome", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))

	failures := report.Failures()
	if len(failures) == 0 {
		return
	}
	failureRows := make([][]string, 0, len(failures))
	for _, f := range failures {
		failureRows = append(failureRows, []string{f.Name, f.Err.Error()})
	}
	fmt.Fprintln(out, renderTable([]string{"File", "Error"}, failureRows, nil))
}
