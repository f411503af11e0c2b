package main

import (
	"errors"
	"fmt"
	"os"

	u "github.com/araddon/gou"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonbca/timeshim"
)

// BatchFile is a list of values to parse, with optional expectations.
type BatchFile struct {
	// Content is the default context for cases that don't set one.
	Content bool        `yaml:"content"`
	Cases   []BatchCase `yaml:"cases"`
}

type BatchCase struct {
	Value   string `yaml:"value"`
	Content *bool  `yaml:"content,omitempty"`
	// Expect is the canonical form of the parsed value; see Result.String.
	Expect string `yaml:"expect,omitempty"`
	// Fail expects the value not to parse.
	Fail  bool  `yaml:"fail,omitempty"`
	Valid *bool `yaml:"valid,omitempty"`
}

// LoadBatch reads and validates a batch file.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided batch path is expected
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	bf := &BatchFile{}
	if err := yaml.Unmarshal(data, bf); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if err := bf.Validate(); err != nil {
		return nil, fmt.Errorf("validating batch file: %w", err)
	}
	return bf, nil
}

func (bf *BatchFile) Validate() error {
	if len(bf.Cases) == 0 {
		return errors.New("cases: at least one case is required")
	}
	for i, c := range bf.Cases {
		if c.Fail && c.Expect != "" {
			return fmt.Errorf("cases[%d] (%q): expect and fail are exclusive", i, c.Value)
		}
	}
	return nil
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Case    BatchCase
	Content bool
	Result  timeshim.Result
	Err     error
	Valid   bool
	// Mismatch describes an unmet expectation, empty when all were met.
	Mismatch string
}

// Run parses every case.
func (bf *BatchFile) Run(opts ...timeshim.Option) []CaseResult {
	results := make([]CaseResult, 0, len(bf.Cases))
	for _, c := range bf.Cases {
		content := bf.Content
		if c.Content != nil {
			content = *c.Content
		}
		p := timeshim.NewParser(c.Value, append(opts, timeshim.InContent(content))...)
		cr := CaseResult{Case: c, Content: content}
		cr.Result, cr.Err = p.ParseDateOrTimeString()
		if content {
			cr.Valid = p.IsValidDateOrTimeStringInContent()
		} else {
			cr.Valid = p.IsValidDateOrTimeString()
		}

		switch {
		case c.Fail && cr.Err == nil:
			cr.Mismatch = "expected failure, parsed " + cr.Result.String()
		case !c.Fail && c.Expect != "" && cr.Err != nil:
			cr.Mismatch = "expected " + c.Expect + ", " + describeError(cr.Err)
		case c.Expect != "" && cr.Result.String() != c.Expect:
			cr.Mismatch = "expected " + c.Expect + ", parsed " + cr.Result.String()
		case c.Valid != nil && *c.Valid != cr.Valid:
			cr.Mismatch = fmt.Sprintf("expected valid=%v", *c.Valid)
		}
		if cr.Mismatch != "" {
			u.Debugf("timeshim: case %q: %s", c.Value, cr.Mismatch)
		}
		results = append(results, cr)
	}
	return results
}

func newBatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Parse the cases of a yaml batch file",
		Long: `Parse every case of a batch file and check its expectations:

  content: false
  cases:
    - value: "2010-01-01T10:20:30.323"
      expect: "2010-01-01T10:20:30.323"
    - value: "  20:02 "
      content: true
      valid: true
    - value: "3 minutes from last Sunday"
      fail: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := LoadBatch(args[0])
			if err != nil {
				return err
			}

			table := termtables.CreateTable()
			table.AddHeaders("Input", "Content", "Parsed", "Valid", "Check")
			failed := 0
			for _, cr := range bf.Run(timeshim.AllowZeroMonth(opts.allowZeroMonth)) {
				parsed := cr.Result.String()
				if cr.Err != nil {
					parsed = describeError(cr.Err)
				}
				check := "ok"
				if cr.Mismatch != "" {
					check = cr.Mismatch
					failed++
				}
				table.AddRow(fmt.Sprintf("%q", cr.Case.Value), cr.Content, parsed, cr.Valid, check)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table.Render())

			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(bf.Cases))
			}
			return nil
		},
	}
}
