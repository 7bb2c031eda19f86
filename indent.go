package codegen

import (
	"strings"
)

const DefaultIndentUnit = "    "

var DefaultIndenter = Indenter{Unit: DefaultIndentUnit}

// Indenter produces the prefix for an indent level. Levels at or below zero
// produce no prefix.
type Indenter struct {
	Unit string
}

func (in Indenter) Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(in.Unit, level)
}
