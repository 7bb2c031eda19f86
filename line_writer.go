package codegen

type LineWriter interface {
	PushIndent()
	PopIndent()
	Line(format string, values ...interface{})
	String() string
}

func NewLineWriter(indentStr string) LineWriter {
	return &lineWriter{
		buf: NewBuffer().SetIndentUnit(indentStr),
	}
}

// blankLine renders as an empty line with no indentation.
type blankLine struct{}

func (blankLine) Render() (string, error) {
	return "", nil
}

type lineWriter struct {
	buf *Buffer
}

func (w *lineWriter) PushIndent() {
	w.buf.Indent()
}

func (w *lineWriter) PopIndent() {
	w.buf.Unindent()
}

func (w *lineWriter) Line(format string, values ...interface{}) {
	if format == "" {
		w.buf.AppendRenderable(blankLine{})
		return
	}
	w.buf.AppendLinef(format, values...)
}

// String renders the written lines. A lineWriter only holds text lines, so
// rendering cannot fail.
func (w *lineWriter) String() string {
	return w.buf.String()
}
