package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonbca/timeshim"
)

var errInvalid = errors.New("not a valid date or time string")

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <value>",
		Short: "Report whether a value is a well formed date or time",
		Long: `Report the validity predicates for a value. Exits non-zero when the
value is not a valid date or time string for its context.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := timeshim.NewParser(args[0], opts.parserOptions()...)
			out := cmd.OutOrStdout()

			dateOK := p.IsValidDateWithOptionalTime()
			valid := p.IsValidDateOrTimeString()
			if opts.content {
				dateOK = p.IsValidDateInContentWithOptionalTime()
				valid = p.IsValidDateOrTimeStringInContent()
			}
			fmt.Fprintf(out, "date present:            %v\n", p.HasDateComponent())
			fmt.Fprintf(out, "time present:            %v\n", p.HasTimeComponent())
			fmt.Fprintf(out, "date with optional time: %v\n", dateOK)
			fmt.Fprintf(out, "date or time:            %v\n", valid)

			if !valid {
				return fmt.Errorf("%q: %w", args[0], errInvalid)
			}
			return nil
		},
	}
}
