package codegen

import (
	"fmt"
)

// Renderable is anything that can produce its own block of text. A buffer
// emits the result as-is, without applying its indentation.
type Renderable interface {
	Render() (string, error)
}

type LineKind int

const (
	UnsupportedLine LineKind = iota
	TextLine
	RenderableLine
)

func (k LineKind) String() string {
	switch k {
	case TextLine:
		return "text"
	case RenderableLine:
		return "renderable"
	default:
		return "unsupported"
	}
}

// Line is a single buffer entry.
type Line struct {
	kind LineKind

	format string
	values []interface{}

	// depth, when pinned, is the indent level recorded at append time and
	// takes the place of the buffer's level at render time.
	depth  int
	pinned bool

	renderable Renderable

	// raw holds the original value of an unsupported entry.
	raw interface{}
}

// Text returns a literal text line. Embedded newlines are kept.
func Text(s string) Line {
	return Line{kind: TextLine, format: s}
}

// Textf returns a text line that is formatted at render time.
func Textf(format string, values ...interface{}) Line {
	return Line{kind: TextLine, format: format, values: values}
}

func Nested(r Renderable) Line {
	return Line{kind: RenderableLine, renderable: r}
}

type stringerRenderable struct {
	fmt.Stringer
}

func (s stringerRenderable) Render() (string, error) {
	return s.String(), nil
}

// LineOf classifies an arbitrary value. Values that are not a string, Line,
// Renderable or fmt.Stringer produce an unsupported line, which fails only
// once the buffer is rendered.
func LineOf(v interface{}) Line {
	switch t := v.(type) {
	case string:
		return Text(t)
	case Line:
		return t
	case Renderable:
		return Nested(t)
	case fmt.Stringer:
		return Nested(stringerRenderable{t})
	default:
		return Line{kind: UnsupportedLine, raw: v}
	}
}

func (l Line) Kind() LineKind {
	return l.kind
}

// Depth returns the indent level recorded when the line was appended, and
// false for lines that follow the buffer's level.
func (l Line) Depth() (int, bool) {
	return l.depth, l.pinned
}

// Value returns the string, Renderable or raw value the line holds. Text
// lines with format values return the format string.
func (l Line) Value() interface{} {
	switch l.kind {
	case TextLine:
		return l.format
	case RenderableLine:
		if sr, ok := l.renderable.(stringerRenderable); ok {
			return sr.Stringer
		}
		return l.renderable
	default:
		return l.raw
	}
}

func (l Line) text() string {
	if len(l.values) == 0 {
		return l.format
	}
	// format at the very end to allow for late binding
	return fmt.Sprintf(l.format, l.values...)
}

func (l Line) render(index int, indenter Indenter, level int) (string, error) {
	switch l.kind {
	case TextLine:
		if l.pinned {
			level = l.depth
		}
		return indenter.Indent(level) + l.text() + "\n", nil
	case RenderableLine:
		if l.renderable == nil {
			return "", &RenderableContractError{Index: index}
		}
		s, err := l.renderable.Render()
		if err != nil {
			return "", &RenderableContractError{Index: index, Err: err}
		}
		return s + "\n", nil
	default:
		return "", &UnsupportedLineTypeError{Index: index, Value: l.raw}
	}
}
