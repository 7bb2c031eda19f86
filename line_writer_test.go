package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGen(t *testing.T) {
	lw := NewLineWriter("  ")
	lw.Line("Hello %d!", 55)
	lw.PushIndent()
	lw.Line("Indented!")
	lw.PushIndent()
	lw.Line("More!")
	lw.PopIndent()
	lw.PopIndent()
	lw.Line(".. and back.")
	expected := `Hello 55!
  Indented!
    More!
.. and back.
`
	assert.Equal(t, expected, lw.String())
}

func TestGenBlankLine(t *testing.T) {
	lw := NewLineWriter("\t")
	lw.PushIndent()
	lw.Line("a")
	lw.Line("")
	lw.Line("b")

	assert.Equal(t, "\ta\n\n\tb\n", lw.String())
	// Rendering while still indented does not indent twice.
	assert.Equal(t, "\ta\n\n\tb\n", lw.String())
}
