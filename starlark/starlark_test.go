package starlark

import (
	"errors"
	"testing"

	"github.com/bazelbuild/buildtools/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropbox/build_tools/codegen"
)

const formattedBuild = `load("@io_bazel_rules_go//go:def.bzl", "go_library")

go_library(
    name = "codegen",
    srcs = ["buffer.go"],
)
`

func TestParseRender(t *testing.T) {
	f, err := Parse("BUILD", []byte(formattedBuild))
	require.NoError(t, err)

	b := codegen.NewBuffer()
	b.AppendRenderable(f)
	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, formattedBuild, out)
}

func TestParseError(t *testing.T) {
	_, err := Parse("BUILD", []byte("go_library(\n"))
	assert.Error(t, err)
}

func TestAddRule(t *testing.T) {
	f := NewFile("BUILD")
	rule := f.AddRule("go_library", "codegen")
	rule.SetAttr("srcs", Strings("buffer.go", "line.go"))
	f.AddRule("go_test", "codegen_test")

	out, err := f.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `name = "codegen"`)

	parsed, err := build.ParseBuild("BUILD", []byte(out))
	require.NoError(t, err)

	libs := parsed.Rules("go_library")
	require.Len(t, libs, 1)
	assert.Equal(t, "codegen", libs[0].Name())
	assert.Equal(t, []string{"buffer.go", "line.go"}, libs[0].AttrStrings("srcs"))

	tests := parsed.Rules("go_test")
	require.Len(t, tests, 1)
	assert.Equal(t, "codegen_test", tests[0].Name())
}

func TestExpr(t *testing.T) {
	b := codegen.NewBuffer("x = ")
	b.AppendRenderable(Expr{&build.StringExpr{Value: "y"}})
	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "x = \n\"y\"\n", out)

	b = codegen.NewBuffer()
	b.AppendRenderable(Expr{})
	_, err = b.Render()
	assert.True(t, errors.Is(err, codegen.ErrRenderableContract))
	assert.True(t, errors.Is(err, errNilExpr))
}
