package timeshim

import (
	"regexp"
	"strings"
)

const (
	dateShape = `\d{4}-\d{2}-\d{2}`
	timeShape = `\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?`
)

var (
	dateWithOptionalTime = regexp.MustCompile(`^` + dateShape + `(?:T` + timeShape + `)?$`)
	dateOrTime           = regexp.MustCompile(`^(?:\d{4,}-\d{2}-\d{2}(?:T` + timeShape + `)?|` + timeShape + `)$`)
)

// trimmed drops the surrounding whitespace a content value may carry, using
// the same class the cursor skips.
func (p *Parser) trimmed() string {
	return strings.TrimFunc(p.value, Whitespace)
}

// ensureParsed runs the parse once so the predicates can be asked before
// ParseDateOrTimeString.
func (p *Parser) ensureParsed() {
	if !p.parsed {
		p.ParseDateOrTimeString()
	}
}

// IsValidDateWithOptionalTime reports whether the value is exactly a date,
// optionally followed by "T" and a time.
func (p *Parser) IsValidDateWithOptionalTime() bool {
	p.ensureParsed()
	return p.err == nil && p.datePresent && dateWithOptionalTime.MatchString(p.value)
}

// IsValidDateInContentWithOptionalTime is IsValidDateWithOptionalTime
// allowing surrounding whitespace.
func (p *Parser) IsValidDateInContentWithOptionalTime() bool {
	p.ensureParsed()
	return p.err == nil && p.datePresent && dateWithOptionalTime.MatchString(p.trimmed())
}

// IsValidDateOrTimeString reports whether the value is a date, a time or
// both, with nothing around it.
func (p *Parser) IsValidDateOrTimeString() bool {
	p.ensureParsed()
	return p.err == nil && (p.datePresent || p.timePresent) && dateOrTime.MatchString(p.value)
}

// IsValidDateOrTimeStringInContent is IsValidDateOrTimeString allowing
// surrounding whitespace.
func (p *Parser) IsValidDateOrTimeStringInContent() bool {
	p.ensureParsed()
	return p.err == nil && (p.datePresent || p.timePresent) && dateOrTime.MatchString(p.trimmed())
}
