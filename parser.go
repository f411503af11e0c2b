// Package timeshim parses the date and time strings carried by html5 time
// elements: "2011-03-12", "20:02", "2010-01-01T10:20:30.323".
package timeshim

import (
	"regexp"
	"strconv"

	u "github.com/araddon/gou"
)

var secondsPattern = regexp.MustCompile(`^\d{2}(?:\.\d+)?$`)

// DateComponents holds the parts of a date. Day is zero for a bare month
// component.
type DateComponents struct {
	Year  int
	Month int
	Day   int
}

// TimeComponents holds the parts of a time. Second may be fractional.
type TimeComponents struct {
	Hour   int
	Minute int
	Second float64
}

// Result is a parsed date, time or date and time. Fields of an absent
// component are zero.
type Result struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  float64
	HasDate bool
	HasTime bool
}

// Option configures a Parser.
type Option func(p *Parser)

// InContent marks the value as element text content rather than an
// attribute value. Leading whitespace is skipped and the InContent
// validity predicates tolerate surrounding whitespace.
func InContent(inContent bool) Option {
	return func(p *Parser) {
		p.inContent = inContent
	}
}

// AllowZeroMonth lets the month component accept "00". Such a month has
// no days, so a full date with month zero still fails.
func AllowZeroMonth(allow bool) Option {
	return func(p *Parser) {
		p.allowZeroMonth = allow
	}
}

// Parser parses a single date or time string. A Parser is not safe for
// concurrent use; create one per value.
type Parser struct {
	value          string
	inContent      bool
	allowZeroMonth bool

	datePresent bool
	timePresent bool
	parsed      bool
	result      Result
	err         error
}

// NewParser returns a parser for value, by default in attribute context.
func NewParser(value string, opts ...Option) *Parser {
	p := &Parser{value: value, datePresent: true, timePresent: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses value as a date, a time or a date and time.
func Parse(value string, opts ...Option) (Result, error) {
	return NewParser(value, opts...).ParseDateOrTimeString()
}

// MustParse is Parse but panics when the value cannot be parsed.
func MustParse(value string, opts ...Option) Result {
	r, err := Parse(value, opts...)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// IsLeapYear applies the gregorian leap year rule.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysInMonth returns the number of days in month of year, or 0 when month
// is not in 1..12.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// collectNumber collects a digit run of exactly width digits.
func collectNumber(c *Cursor, width int) (int, bool) {
	s := c.CollectSequence(Digit)
	if len(s) != width {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func expect(c *Cursor, sep string) bool {
	if c.IsFinished() || c.Peek(1) != sep {
		return false
	}
	c.Skip(1)
	return true
}

// ParseMonthComponent parses "YYYY-MM". The year has at least four digits
// and must be positive.
func (p *Parser) ParseMonthComponent(c *Cursor) (DateComponents, error) {
	ys := c.CollectSequence(Digit)
	if len(ys) < 4 {
		return DateComponents{}, mismatch("month", c, "year %q has fewer than 4 digits", ys)
	}
	year, err := strconv.Atoi(ys)
	if err != nil || year <= 0 {
		return DateComponents{}, mismatch("month", c, "year %q out of range", ys)
	}
	if !expect(c, "-") {
		return DateComponents{}, mismatch("month", c, "expected '-' after year")
	}
	month, ok := collectNumber(c, 2)
	if !ok {
		return DateComponents{}, mismatch("month", c, "month must be 2 digits")
	}
	lowest := 1
	if p.allowZeroMonth {
		lowest = 0
	}
	if month < lowest || month > 12 {
		return DateComponents{}, mismatch("month", c, "month %d out of range", month)
	}
	return DateComponents{Year: year, Month: month}, nil
}

// ParseDateComponent parses "YYYY-MM-DD", checking the day against the
// length of the month.
func (p *Parser) ParseDateComponent(c *Cursor) (DateComponents, error) {
	d, err := p.ParseMonthComponent(c)
	if err != nil {
		return d, err
	}
	maxDay := DaysInMonth(d.Year, d.Month)
	if !expect(c, "-") {
		return DateComponents{}, mismatch("date", c, "expected '-' after month")
	}
	day, ok := collectNumber(c, 2)
	if !ok {
		return DateComponents{}, mismatch("date", c, "day must be 2 digits")
	}
	if day < 1 || day > maxDay {
		return DateComponents{}, mismatch("date", c, "day %d out of range for %04d-%02d", day, d.Year, d.Month)
	}
	d.Day = day
	return d, nil
}

// ParseTimeComponent parses "HH:MM" with optional ":SS" or ":SS.fff".
// A malformed seconds field is not consumed and seconds default to 0.
func (p *Parser) ParseTimeComponent(c *Cursor) (TimeComponents, error) {
	hour, ok := collectNumber(c, 2)
	if !ok {
		return TimeComponents{}, mismatch("time", c, "hour must be 2 digits")
	}
	if hour > 23 {
		return TimeComponents{}, mismatch("time", c, "hour %d out of range", hour)
	}
	if !expect(c, ":") {
		return TimeComponents{}, mismatch("time", c, "expected ':' after hour")
	}
	minute, ok := collectNumber(c, 2)
	if !ok {
		return TimeComponents{}, mismatch("time", c, "minute must be 2 digits")
	}
	if minute > 59 {
		return TimeComponents{}, mismatch("time", c, "minute %d out of range", minute)
	}

	var second float64
	c.Try(func(c *Cursor) bool {
		if !expect(c, ":") {
			return false
		}
		// two digits must follow the colon before the field is attempted
		probe := c.Position()
		twoDigits := len(c.CollectSequence(Digit)) == 2
		c.Seek(probe)
		if !twoDigits {
			return false
		}
		s := c.CollectSequence(DigitOrDot)
		if !secondsPattern.MatchString(s) {
			return false
		}
		second, _ = strconv.ParseFloat(s, 64)
		return true
	})
	if second < 0 || second >= 60 {
		return TimeComponents{}, mismatch("time", c, "second %g out of range", second)
	}
	return TimeComponents{Hour: hour, Minute: minute, Second: second}, nil
}

// ParseDateOrTimeString parses the whole value. A date may be followed by
// "T" and a time; without a date the value is parsed as a time. The error
// is ErrNoParse when neither matched, or a *SyntaxError when a time was
// promised by "T" but is invalid.
func (p *Parser) ParseDateOrTimeString() (Result, error) {
	p.datePresent, p.timePresent = true, true
	p.result, p.err = p.parse()
	p.parsed = true
	if p.err != nil {
		u.Debugf("timeshim: %q: %v", p.value, p.err)
	}
	return p.result, p.err
}

func (p *Parser) parse() (Result, error) {
	c := NewCursor(p.value)
	if p.inContent {
		c.SkipWhitespace()
	}
	start := c.Position()

	date, err := p.ParseDateComponent(c)
	if err != nil {
		p.datePresent = false
		date = DateComponents{}
	}

	switch {
	case p.datePresent && !c.IsFinished() && c.Peek(1) == "T":
		c.Skip(1)
	case p.datePresent:
		p.timePresent = false
	default:
		c.Seek(start)
	}

	var tm TimeComponents
	if p.timePresent {
		tm, err = p.ParseTimeComponent(c)
		if err != nil {
			p.timePresent = false
			if p.datePresent {
				return Result{}, err
			}
			return Result{}, ErrNoParse
		}
	}

	if !p.datePresent && !p.timePresent {
		return Result{}, ErrNoParse
	}
	return Result{
		Year:    date.Year,
		Month:   date.Month,
		Day:     date.Day,
		Hour:    tm.Hour,
		Minute:  tm.Minute,
		Second:  tm.Second,
		HasDate: p.datePresent,
		HasTime: p.timePresent,
	}, nil
}

// HasDateComponent reports whether the last parse found a date.
func (p *Parser) HasDateComponent() bool {
	return p.datePresent
}

// HasTimeComponent reports whether the last parse found a time.
func (p *Parser) HasTimeComponent() bool {
	return p.timePresent
}
