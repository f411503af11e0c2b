package timeshim

import (
	"fmt"
	"unicode"
)

// CharClass reports whether a character belongs to a class of characters.
type CharClass func(r rune) bool

var (
	// Digit matches ASCII digits only; other unicode digits are not part of
	// the date grammar.
	Digit CharClass = func(r rune) bool { return r >= '0' && r <= '9' }

	// Whitespace matches unicode white space, as unicode.IsSpace.
	Whitespace CharClass = unicode.IsSpace

	// DigitOrDot matches the characters of a seconds field.
	DigitOrDot CharClass = func(r rune) bool { return r == '.' || Digit(r) }

	// Linebreak matches carriage return and line feed.
	Linebreak CharClass = func(r rune) bool { return r == '\r' || r == '\n' }
)

// Cursor is a position tracking view over an input string, following the
// "collect a sequence of characters" algorithm from the html standard.
//
// Positions count characters (runes), not bytes. The position can be read
// with Position and only changed by scanning, Skip or Seek.
type Cursor struct {
	input []rune
	start int // effective view is input[start:end]
	end   int
	pos   int // relative to start
}

// NewCursor returns a cursor positioned at the beginning of input.
func NewCursor(input string) *Cursor {
	r := []rune(input)
	return &Cursor{input: r, end: len(r)}
}

// Len is the length of the effective input.
func (c *Cursor) Len() int {
	return c.end - c.start
}

func (c *Cursor) at(i int) rune {
	return c.input[c.start+i]
}

// CollectSequence collects the longest run of characters matching class,
// starting at the current position, and advances past it.
func (c *Cursor) CollectSequence(class CharClass) string {
	if c.IsFinished() {
		return ""
	}
	begin := c.pos
	for c.pos < c.Len() && class(c.at(c.pos)) {
		c.pos++
	}
	return string(c.input[c.start+begin : c.start+c.pos])
}

// Skip advances the position by n without looking at the input.
func (c *Cursor) Skip(n int) {
	c.pos += n
}

// Peek returns up to n characters from the current position without
// advancing. Fewer are returned when the input is shorter.
func (c *Cursor) Peek(n int) string {
	if n < 0 {
		panic(fmt.Errorf("%w: can't peek into the past (n=%d)", ErrInvalidArgument, n))
	}
	if n == 0 || c.IsFinished() {
		return ""
	}
	stop := c.Len()
	if n < stop-c.pos {
		stop = c.pos + n
	}
	return string(c.input[c.start+c.pos : c.start+stop])
}

// SkipWhitespace consumes whitespace and returns how many characters were
// skipped.
func (c *Cursor) SkipWhitespace() int {
	begin := c.pos
	c.CollectSequence(Whitespace)
	return c.pos - begin
}

// StripLeadingAndTrailingWhitespace narrows the cursor to the input
// without surrounding whitespace and returns the narrowed input. It must be
// called before any scanning.
func (c *Cursor) StripLeadingAndTrailingWhitespace() string {
	c.failIfStarted()
	for c.start < c.end && Whitespace(c.input[c.start]) {
		c.start++
	}
	for c.end > c.start && Whitespace(c.input[c.end-1]) {
		c.end--
	}
	return c.String()
}

// StripLinebreaks drops every carriage return and line feed from the
// cursor's view of the input. It must be called before any scanning.
func (c *Cursor) StripLinebreaks() string {
	c.failIfStarted()
	kept := make([]rune, 0, c.Len())
	for _, r := range c.input[c.start:c.end] {
		if !Linebreak(r) {
			kept = append(kept, r)
		}
	}
	c.input, c.start, c.end = kept, 0, len(kept)
	return c.String()
}

func (c *Cursor) failIfStarted() {
	if c.pos != 0 {
		panic(fmt.Errorf("%w: cannot strip the input once collecting has begun (position %d)", ErrIllegalState, c.pos))
	}
}

// IsFinished reports whether the whole input has been consumed.
func (c *Cursor) IsFinished() bool {
	return c.pos >= c.Len()
}

// Position is the current offset into the input.
func (c *Cursor) Position() int {
	return c.pos
}

// Seek moves to an absolute position within [0, Len()].
func (c *Cursor) Seek(pos int) {
	if pos < 0 || pos > c.Len() {
		panic(fmt.Errorf("%w: cannot seek to %d, input length is %d", ErrIllegalState, pos, c.Len()))
	}
	c.pos = pos
}

// Try runs an optional sub-grammar. When fn reports false the position is
// restored to where it was before the call.
func (c *Cursor) Try(fn func(*Cursor) bool) bool {
	mark := c.pos
	if fn(c) {
		return true
	}
	c.pos = mark
	return false
}

// String returns the effective input.
func (c *Cursor) String() string {
	return string(c.input[c.start:c.end])
}
