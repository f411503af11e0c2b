// Command timeshim parses html5 date and time strings from the command line.
//
//	timeshim parse "2009-08-12T22:15:09.99"
//	timeshim check --content "  20:02 "
//	timeshim batch cases.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	u "github.com/araddon/gou"
	"github.com/spf13/cobra"

	"github.com/jonbca/timeshim"
)

// Version is set via ldflags at build time.
var Version = "dev"

type options struct {
	content        bool
	allowZeroMonth bool
	logLevel       string
	color          bool
	timezone       string
}

func (o *options) parserOptions() []timeshim.Option {
	return []timeshim.Option{
		timeshim.InContent(o.content),
		timeshim.AllowZeroMonth(o.allowZeroMonth),
	}
}

func (o *options) location() (*time.Location, error) {
	if o.timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(o.timezone)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code: 1 when a value
// checked is not valid, 2 for any other error.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errInvalid) {
			return 1
		}
		return 2
	}
	return 0
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "timeshim",
		Short: "Parse html5 date and time strings",
		Long: `timeshim parses the values of html5 time elements:

  2011-03-12                 a date
  20:02 or 20:02:05.5        a time
  2011-03-12T20:02:05.5      a date and a time

Values from a datetime attribute allow no surrounding whitespace, values
from element text (--content) do.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			u.SetupLogging(opts.logLevel)
			if opts.color {
				u.SetColorOutput()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.content, "content", false, "treat values as element text content")
	flags.BoolVar(&opts.allowZeroMonth, "allow-zero-month", false, "accept month 00 in month components")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.color, "color", false, "colorize log output")
	flags.StringVar(&opts.timezone, "tz", "", "timezone aka `America/Los_Angeles` for resolved times, default local")

	root.AddCommand(newParseCommand(opts))
	root.AddCommand(newCheckCommand(opts))
	root.AddCommand(newBatchCommand(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timeshim %s\n", Version)
		},
	})
	return root
}
