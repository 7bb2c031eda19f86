// Package gomod renders go.mod files built with golang.org/x/mod as
// codegen renderables.
package gomod

import (
	"fmt"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"dropbox/build_tools/codegen"
)

type File struct {
	file *modfile.File
}

var _ codegen.Renderable = (*File)(nil)

// New starts a go.mod for modulePath. GOPATH-style paths without a dot in
// the first element, like dropbox/build_tools/codegen, are accepted.
func New(modulePath string, goVersion string) (*File, error) {
	if err := module.CheckImportPath(modulePath); err != nil {
		return nil, err
	}

	mf := new(modfile.File)
	if err := mf.AddModuleStmt(modulePath); err != nil {
		return nil, err
	}
	if err := mf.AddGoStmt(goVersion); err != nil {
		return nil, fmt.Errorf("invalid go version %q: %v", goVersion, err)
	}
	return &File{file: mf}, nil
}

func Parse(path string, data []byte) (*File, error) {
	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, err
	}
	return &File{file: mf}, nil
}

// Require adds or updates a requirement.
func (f *File) Require(path string, version string) error {
	if err := module.Check(path, version); err != nil {
		return err
	}
	return f.file.AddRequire(path, version)
}

func (f *File) Requirements() []module.Version {
	reqs := make([]module.Version, 0, len(f.file.Require))
	for _, req := range f.file.Require {
		reqs = append(reqs, req.Mod)
	}
	return reqs
}

func (f *File) ModulePath() string {
	if f.file.Module == nil {
		return ""
	}
	return f.file.Module.Mod.Path
}

// Render returns the formatted go.mod without its final newline.
func (f *File) Render() (string, error) {
	f.file.Cleanup()
	data, err := f.file.Format()
	if err != nil {
		return "", fmt.Errorf("failed to format go.mod: %v", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
