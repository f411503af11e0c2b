package timeshim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testElement struct {
	tag      string
	attrs    map[string]string
	text     string
	dateTime string
	pubDate  bool
	value    *time.Time
	set      bool
}

func newElement(tag, text string, attrs ...string) *testElement {
	el := &testElement{tag: tag, text: text, attrs: map[string]string{}}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.attrs[attrs[i]] = attrs[i+1]
	}
	return el
}

func (e *testElement) TagName() string { return e.tag }

func (e *testElement) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

func (e *testElement) GetAttribute(name string) string { return e.attrs[name] }
func (e *testElement) TextContent() string             { return e.text }

func (e *testElement) SetDateTime(v string) { e.dateTime = v }
func (e *testElement) SetPubDate(v bool)    { e.pubDate = v }

func (e *testElement) SetValueAsDate(t *time.Time) {
	e.value = t
	e.set = true
}

func TestNeedsDate(t *testing.T) {
	assert.True(t, NeedsDate(newElement("time", "", "pubdate", "")))
	assert.True(t, NeedsDate(newElement("TIME", "", "pubdate", "")))
	assert.False(t, NeedsDate(newElement("time", "")))
	assert.False(t, NeedsDate(newElement("notatime", "", "pubdate", "")))
	assert.False(t, NeedsDate(newElement("notatime", "")))
}

func TestHasDatetime(t *testing.T) {
	assert.True(t, HasDatetime(newElement("time", "", "datetime", "2011-02-11")))
	assert.False(t, HasDatetime(newElement("time", "2011-02-11")))
}

func TestProcessElement(t *testing.T) {
	s := &Shim{Location: time.UTC}

	el := newElement("time", "last week", "datetime", "2010-01-01T10:20:30.323")
	require.NoError(t, s.ProcessElement(el))
	require.NotNil(t, el.value)
	assert.Equal(t, "2010-01-01 10:20:30.323 +0000 UTC", el.value.String())
	assert.Equal(t, "2010-01-01T10:20:30.323", el.dateTime)
	assert.False(t, el.pubDate)

	el = newElement("time", "", "datetime", "2011-02-11", "pubdate", "")
	require.NoError(t, s.ProcessElement(el))
	assert.Equal(t, "2011-02-11", el.dateTime)
	assert.True(t, el.pubDate)

	// text content tolerates whitespace
	el = newElement("time", "\n  2011-03-12  \n", "pubdate", "")
	require.NoError(t, s.ProcessElement(el))
	assert.Equal(t, time.Date(2011, 3, 12, 0, 0, 0, 0, time.UTC), *el.value)
	assert.Equal(t, "", el.dateTime)
	assert.False(t, el.pubDate)

	// the attribute does not
	el = newElement("time", "2011-03-12", "datetime", " 2011-03-12")
	err := s.ProcessElement(el)
	assert.True(t, errors.Is(err, ErrNoParse))
	assert.True(t, el.set)
	assert.Nil(t, el.value)

	el = newElement("time", "", "datetime", "2011-03-12T99:00")
	err = s.ProcessElement(el)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Nil(t, el.value)
}

func TestApply(t *testing.T) {
	els := []Element{
		newElement("time", "2011-03-12"),
		newElement("time", "", "datetime", "20:02"),
		newElement("time", "3 minutes from last Sunday"),
		newElement("span", "2011-03-12"),
	}
	s := &Shim{Location: time.UTC}
	assert.Equal(t, 2, s.Apply(els))
	assert.NotNil(t, els[0].(*testElement).value)
	assert.Equal(t, "0001-01-01 20:02:00 +0000 UTC", els[1].(*testElement).value.String())
	assert.True(t, els[2].(*testElement).set)
	assert.Nil(t, els[2].(*testElement).value)
	assert.False(t, els[3].(*testElement).set)

	native := &Shim{Supported: func() bool { return true }}
	el := newElement("time", "2011-03-12")
	assert.Equal(t, 0, native.Apply([]Element{el}))
	assert.False(t, el.set)
}

func TestResultTime(t *testing.T) {
	r := Result{Year: 2010, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59.9996, HasDate: true, HasTime: true}
	assert.Equal(t, time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), r.Time(time.UTC))

	r = MustParse("2010-06-15T08:00:01.25")
	assert.Equal(t, 250*time.Millisecond, time.Duration(r.Time(time.UTC).Nanosecond()))
	assert.Equal(t, time.June, r.Time(time.UTC).Month())
}

func TestResultString(t *testing.T) {
	for _, in := range []string{
		"2010-01-01T10:20:30.323",
		"2010-01-01",
		"20:02",
		"20:02:05",
		"20:02:05.5",
		"0001-02-03T00:00",
	} {
		assert.Equal(t, in, MustParse(in).String())
	}
	assert.Equal(t, "20:02", MustParse("20:02:00").String())
}
