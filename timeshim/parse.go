package main

import (
	"errors"
	"fmt"

	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"

	"github.com/jonbca/timeshim"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value>...",
		Short: "Parse values and print them as a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return fmt.Errorf("loading timezone: %w", err)
			}

			table := termtables.CreateTable()
			table.AddHeaders("Input", "Date", "Time", "Parsed", "Resolved in "+loc.String())

			failed := 0
			for _, value := range args {
				r, err := timeshim.Parse(value, opts.parserOptions()...)
				if err != nil {
					failed++
					table.AddRow(value, "", "", describeError(err), "")
					continue
				}
				table.AddRow(value, r.HasDate, r.HasTime, r.String(), r.Time(loc).String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), table.Render())

			if failed > 0 {
				return fmt.Errorf("%d of %d values could not be parsed", failed, len(args))
			}
			return nil
		},
	}
}

func describeError(err error) string {
	if errors.Is(err, timeshim.ErrNoParse) {
		return "not a date or time"
	}
	var se *timeshim.SyntaxError
	if errors.As(err, &se) {
		return fmt.Sprintf("invalid %s at %d: %s", se.Component, se.Pos, se.Msg)
	}
	return err.Error()
}
