package codegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythonImports(t *testing.T) {
	m := NewPythonImports()
	m.RegisterLocal("Enum")

	m.From("typing", "List")
	enum := m.From("enum", "Enum")
	m.From("os", "")
	msg := m.From("dropbox/proto/foo.proto", "FooMessage")
	m.From("dropbox/util/helpers.py", "helper")

	// Registering twice returns the same entry.
	assert.Same(t, enum, m.From("enum", "Enum"))

	out, err := m.Render()
	require.NoError(t, err)

	expected := `from enum import (
    Enum as Enum1,
)
import os
from typing import (
    List,
)

from dropbox.proto.foo_pb2 import (
    FooMessage,
)
from dropbox.util.helpers import (
    helper,
)

`
	assert.Equal(t, expected, out)
	assert.Equal(t, "Enum1", enum.String())
	assert.Equal(t, "FooMessage.Field", NewNestedImport(msg, "Field").String())
}

func TestPythonImportsInBuffer(t *testing.T) {
	imports := NewPythonImports()
	base := imports.From("dropbox/base", "Base")

	b := NewBuffer()
	b.AppendRenderable(imports)
	b.AppendLinef("class Foo(%s):", base)
	b.Indent()
	b.AppendLine("pass")

	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "from dropbox.base import (\n    Base,\n)\n\n\nclass Foo(Base):\n    pass\n", out)
}

func TestPythonImportsEmpty(t *testing.T) {
	out, err := NewPythonImports().Render()
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestNilImportsInBuffer(t *testing.T) {
	var name *ImportName
	var nested *NestedImport
	var imports *PythonImports

	testCases := []interface{}{
		name,
		nested,
		NewNestedImport(nil, "Field"),
		imports,
	}

	for _, tc := range testCases {
		b := NewBuffer("x")
		b.AppendLine(tc)
		out, err := b.Render()
		assert.Equal(t, "", out)
		assert.True(t, errors.Is(err, ErrRenderableContract), "%T: %v", tc, err)
	}

	b := NewBuffer()
	b.AppendRenderable(imports)
	_, err := b.Render()
	assert.True(t, errors.Is(err, errNilImports))

	assert.Equal(t, "", name.String())
	assert.Equal(t, "", nested.String())
}
