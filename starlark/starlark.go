// Package starlark adapts buildtools syntax trees to codegen renderables, so
// generated BUILD files and expressions can be nested in a codegen.Buffer.
package starlark

import (
	"errors"
	"strings"

	"github.com/bazelbuild/buildtools/build"

	"dropbox/build_tools/codegen"
)

var errNilExpr = errors.New("nil starlark expression")

// File is a BUILD file rendered the way buildifier formats it.
type File struct {
	*build.File
}

var _ codegen.Renderable = (*File)(nil)

func NewFile(path string) *File {
	return &File{
		File: &build.File{
			Path: path,
			Type: build.TypeBuild,
		},
	}
}

func Parse(path string, data []byte) (*File, error) {
	file, err := build.ParseBuild(path, data)
	if err != nil {
		return nil, err
	}
	return &File{File: file}, nil
}

// AddRule appends a "kind(name = ...)" call and returns it for further
// attributes.
func (f *File) AddRule(kind string, name string) *build.Rule {
	call := &build.CallExpr{X: &build.Ident{Name: kind}}
	rule := build.NewRule(call)
	rule.SetAttr("name", &build.StringExpr{Value: name})
	f.Stmt = append(f.Stmt, call)
	return rule
}

// Render returns the formatted file without its final newline; the
// enclosing buffer terminates the block.
func (f *File) Render() (string, error) {
	return strings.TrimSuffix(string(build.Format(f.File)), "\n"), nil
}

// Expr renders a single starlark expression.
type Expr struct {
	build.Expr
}

var _ codegen.Renderable = Expr{}

func (e Expr) Render() (string, error) {
	if e.Expr == nil {
		return "", errNilExpr
	}
	return build.FormatString(e.Expr), nil
}

// Strings builds a list expression of string literals.
func Strings(values ...string) *build.ListExpr {
	list := &build.ListExpr{}
	for _, v := range values {
		list.List = append(list.List, &build.StringExpr{Value: v})
	}
	return list
}
