package codegen

import (
	"errors"
	"iter"
	"slices"
	"strings"
)

var errNilBuffer = errors.New("nil buffer")

// Buffer collects lines of generated code and renders them into a single
// block of text.
//
// Text lines appended with AppendLine or AppendLinef keep the indent level
// current when they were appended. All other text lines are prefixed with
// the indent for the buffer's level at render time. Renderable lines manage
// their own indentation. A Buffer is itself Renderable, so buffers can be
// nested.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	lines       []Line
	args        map[string]interface{}
	indentLevel int
	indenter    Indenter
}

var _ Renderable = (*Buffer)(nil)

// NewBuffer creates a buffer seeded with the given lines. Each value is
// classified as for AppendLine, but records no indent depth.
func NewBuffer(lines ...interface{}) *Buffer {
	b := &Buffer{
		args:     make(map[string]interface{}),
		indenter: DefaultIndenter,
	}
	b.lines = toLines(lines)
	return b
}

func toLines(values []interface{}) []Line {
	lines := make([]Line, 0, len(values))
	for _, v := range values {
		lines = append(lines, LineOf(v))
	}
	return lines
}

// SetDefaultArguments replaces the argument bag. The buffer stores the
// arguments for downstream consumers and never reads them itself.
func (b *Buffer) SetDefaultArguments(args map[string]interface{}) *Buffer {
	b.args = args
	return b
}

func (b *Buffer) DefaultArguments() map[string]interface{} {
	return b.args
}

// SetLines replaces all lines with the given values, each classified as for
// AppendLine. Only []interface{} is accepted; use SetBody for a []string or
// []Line.
func (b *Buffer) SetLines(lines []interface{}) *Buffer {
	b.lines = toLines(lines)
	return b
}

// SetBody replaces all lines. A string is split on newlines; a []string,
// []interface{} or []Line is used as the new sequence of lines.
func (b *Buffer) SetBody(body interface{}) error {
	switch t := body.(type) {
	case string:
		parts := strings.Split(t, "\n")
		lines := make([]Line, 0, len(parts))
		for _, p := range parts {
			lines = append(lines, Text(p))
		}
		b.lines = lines
	case []string:
		lines := make([]Line, 0, len(t))
		for _, s := range t {
			lines = append(lines, Text(s))
		}
		b.lines = lines
	case []interface{}:
		b.lines = toLines(t)
	case []Line:
		b.lines = slices.Clone(t)
	default:
		return &InvalidArgumentTypeError{
			Value:    body,
			Accepted: []string{"string", "sequence"},
		}
	}
	return nil
}

func (b *Buffer) AppendRenderable(r Renderable) {
	b.lines = append(b.lines, Nested(r))
}

// AppendLine appends any value. Values that are neither text nor renderable
// are accepted here and rejected by Render.
func (b *Buffer) AppendLine(v interface{}) {
	l := LineOf(v)
	if l.kind == TextLine {
		l.depth, l.pinned = b.indentLevel, true
	}
	b.lines = append(b.lines, l)
}

func (b *Buffer) AppendLinef(format string, values ...interface{}) {
	l := Textf(format, values...)
	l.depth, l.pinned = b.indentLevel, true
	b.lines = append(b.lines, l)
}

func (b *Buffer) IncreaseIndentLevel() *Buffer {
	b.indentLevel++
	return b
}

func (b *Buffer) DecreaseIndentLevel() *Buffer {
	b.indentLevel--
	return b
}

func (b *Buffer) Indent() *Buffer {
	return b.IncreaseIndentLevel()
}

// Unindent lowers the indent level. The level may go negative; negative
// effective levels render without a prefix.
func (b *Buffer) Unindent() *Buffer {
	return b.DecreaseIndentLevel()
}

// SetIndentLevel does not return the buffer, unlike the relative indent
// methods.
func (b *Buffer) SetIndentLevel(level int) {
	b.indentLevel = level
}

func (b *Buffer) IndentLevel() int {
	return b.indentLevel
}

func (b *Buffer) SetIndentUnit(unit string) *Buffer {
	b.indenter = Indenter{Unit: unit}
	return b
}

// Splice removes length lines starting at from, inserts the replacement in
// their place and returns the removed lines. A negative from counts from the
// end, and a negative length stops that many lines before the end.
func (b *Buffer) Splice(from int, length int, replacement ...interface{}) []Line {
	n := len(b.lines)

	start := from
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	} else if start > n {
		start = n
	}

	end := n
	if length < 0 {
		end = n + length
	} else if length < n-start {
		end = start + length
	}
	if end < start {
		end = start
	}

	removed := slices.Clone(b.lines[start:end])
	b.lines = slices.Replace(b.lines, start, end, toLines(replacement)...)
	return removed
}

func (b *Buffer) Len() int {
	return len(b.lines)
}

// Exists reports whether there is a line at index i. An entry holding a nil
// value does not exist.
func (b *Buffer) Exists(i int) bool {
	if i < 0 || i >= len(b.lines) {
		return false
	}
	l := b.lines[i]
	return l.kind != UnsupportedLine || l.raw != nil
}

func (b *Buffer) Get(i int) (Line, bool) {
	if i < 0 || i >= len(b.lines) {
		return Line{}, false
	}
	return b.lines[i], true
}

// Set stores v at index i. An index equal to Len appends.
//
// NOTE: index 0 also appends instead of overwriting the first line. Callers
// depend on this, so it is kept; use SetBody or Splice to replace line 0.
func (b *Buffer) Set(i int, v interface{}) error {
	l := LineOf(v)
	if i == 0 || i == len(b.lines) {
		b.lines = append(b.lines, l)
		return nil
	}
	if i < 0 || i > len(b.lines) {
		return ErrIndexOutOfRange
	}
	b.lines[i] = l
	return nil
}

// Delete removes the line at index i. Deleting an index that does not exist
// is a no-op.
//
// NOTE: later lines shift down by one, so an index taken before the delete
// no longer refers to the same line. Nothing is left behind at index i.
func (b *Buffer) Delete(i int) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	b.lines = slices.Delete(b.lines, i, i+1)
}

// Lines returns a copy of the buffer's lines.
func (b *Buffer) Lines() []Line {
	return slices.Clone(b.lines)
}

// All iterates over the lines as they were when iteration started.
func (b *Buffer) All() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		lines := slices.Clone(b.lines)
		for i, l := range lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

func (b *Buffer) Values() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, l := range b.All() {
			if !yield(l) {
				return
			}
		}
	}
}

// Render flattens the buffer into text, one newline-terminated entry per
// line. It stops at the first line that fails and returns no partial output.
func (b *Buffer) Render() (string, error) {
	if b == nil {
		return "", errNilBuffer
	}

	var sb strings.Builder
	for i, l := range b.lines {
		s, err := l.render(i, b.indenter, b.indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// String returns the rendered buffer, or the empty string if rendering
// fails.
func (b *Buffer) String() string {
	s, err := b.Render()
	if err != nil {
		return ""
	}
	return s
}
