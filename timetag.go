package timeshim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	u "github.com/araddon/gou"
)

// Element is the part of a markup element the shim reads and writes.
type Element interface {
	TagName() string
	HasAttribute(name string) bool
	GetAttribute(name string) string
	TextContent() string
	// SetDateTime and SetPubDate reflect the datetime and pubdate
	// attributes onto the element's properties.
	SetDateTime(v string)
	SetPubDate(v bool)
	// SetValueAsDate stores the parsed value; nil clears it.
	SetValueAsDate(t *time.Time)
}

// NeedsDate reports whether el is a time element marked as a publication
// date.
func NeedsDate(el Element) bool {
	return strings.EqualFold(el.TagName(), "time") && el.HasAttribute("pubdate")
}

// HasDatetime reports whether el carries its value in a datetime
// attribute.
func HasDatetime(el Element) bool {
	return el.HasAttribute("datetime")
}

// Shim resolves the value of time elements for hosts that can't.
type Shim struct {
	// Supported reports native support for time element values. When it
	// returns true Apply leaves elements alone. Nil means unsupported.
	Supported func() bool

	// Location for resolved values, time.Local when nil.
	Location *time.Location
}

// Apply processes every time element in els and returns how many of them
// received a value.
func (s *Shim) Apply(els []Element) int {
	if s.Supported != nil && s.Supported() {
		u.Debugf("timeshim: native time element support, skipping %d elements", len(els))
		return 0
	}
	n := 0
	for _, el := range els {
		if !strings.EqualFold(el.TagName(), "time") {
			continue
		}
		if err := s.ProcessElement(el); err != nil {
			u.Warnf("timeshim: %v", err)
			continue
		}
		n++
	}
	return n
}

// ProcessElement parses the datetime attribute of el, or its text content
// when the attribute is missing, and stores the result. The datetime and
// pubdate attributes are reflected when datetime is present. On failure the
// value is cleared and the error returned.
func (s *Shim) ProcessElement(el Element) error {
	var p *Parser
	if HasDatetime(el) {
		v := el.GetAttribute("datetime")
		el.SetDateTime(v)
		el.SetPubDate(el.HasAttribute("pubdate"))
		p = NewParser(v)
	} else {
		p = NewParser(el.TextContent(), InContent(true))
	}
	r, err := p.ParseDateOrTimeString()
	if err != nil {
		el.SetValueAsDate(nil)
		return fmt.Errorf("%s element %q: %w", el.TagName(), p.value, err)
	}
	t := r.Time(s.Location)
	el.SetValueAsDate(&t)
	return nil
}

// Time converts r into a time.Time in loc (time.Local when nil). Fractional
// seconds are rounded to milliseconds. A result without a date lands on
// January 1 of year 1.
func (r Result) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	year, month, day := r.Year, r.Month, r.Day
	if !r.HasDate {
		year, month, day = 1, 1, 1
	}
	whole := math.Floor(r.Second)
	ms := int(math.Round((r.Second - whole) * 1000))
	return time.Date(year, time.Month(month), day, r.Hour, r.Minute, int(whole), ms*int(time.Millisecond), loc)
}

// String formats r in the grammar it was parsed from.
func (r Result) String() string {
	var b strings.Builder
	if r.HasDate {
		fmt.Fprintf(&b, "%04d-%02d-%02d", r.Year, r.Month, r.Day)
	}
	if r.HasTime {
		if r.HasDate {
			b.WriteByte('T')
		}
		fmt.Fprintf(&b, "%02d:%02d", r.Hour, r.Minute)
		if r.Second != 0 {
			b.WriteByte(':')
			if r.Second < 10 {
				b.WriteByte('0')
			}
			b.WriteString(strconv.FormatFloat(r.Second, 'f', -1, 64))
		}
	}
	return b.String()
}
