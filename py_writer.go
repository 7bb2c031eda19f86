package codegen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	errNilImport  = errors.New("nil python import")
	errNilImports = errors.New("nil python import map")
)

type ImportName struct {
	name  string
	alias string
}

// String returns the alias assigned by AssignAliases, so an ImportName can
// be dropped straight into a generated line.
func (n *ImportName) String() string {
	if n == nil {
		return ""
	}
	return n.alias
}

func (n *ImportName) Render() (string, error) {
	if n == nil {
		return "", errNilImport
	}
	return n.alias, nil
}

type NestedImport struct {
	importName *ImportName
	member     string
}

func (n *NestedImport) String() string {
	s, _ := n.Render()
	return s
}

func (n *NestedImport) Render() (string, error) {
	if n == nil || n.importName == nil {
		return "", errNilImport
	}
	return n.importName.alias + "." + n.member, nil
}

func NewNestedImport(importName *ImportName, member string) *NestedImport {
	return &NestedImport{
		importName: importName,
		member:     member,
	}
}

// PythonImports collects the imports used by a generated Python module and
// renders them as an import block.
type PythonImports struct {
	// module path -> imported name -> entry
	imports map[string]map[string]*ImportName
	locals  []string
}

var _ Renderable = (*PythonImports)(nil)

func NewPythonImports() *PythonImports {
	return &PythonImports{
		imports: make(map[string]map[string]*ImportName),
		locals:  make([]string, 0),
	}
}

// From registers "from <path> import <name>". An empty name registers a
// plain "import <path>". Source paths ending in .py or .proto are mapped to
// their module names.
func (m *PythonImports) From(path string, name string) *ImportName {
	if strings.HasSuffix(path, ".py") {
		path = path[:len(path)-3]
	} else if strings.HasSuffix(path, ".proto") {
		path = path[:len(path)-6] + "_pb2"
	}

	path = strings.Replace(path, "/", ".", -1)

	if _, ok := m.imports[path]; !ok {
		m.imports[path] = make(map[string]*ImportName)
	}

	entry := m.imports[path][name]

	if entry == nil {
		entry = &ImportName{
			name: name,
		}

		m.imports[path][name] = entry
	}

	return entry
}

// RegisterLocal reserves a module-level name so no import alias uses it.
func (m *PythonImports) RegisterLocal(name string) {
	m.locals = append(m.locals, name)
}

func (m *PythonImports) AssignAliases() {
	used := make(map[string]struct{})

	for _, local := range m.locals {
		used[local] = struct{}{}
	}

	// Sort the imports for stability
	keys := make([]string, 0, len(m.imports))
	for key := range m.imports {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		nameEntries := m.imports[key]

		names := make([]string, 0, len(nameEntries))
		for name := range nameEntries {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			entry := nameEntries[name]
			if name == "" {
				name = key
			}
			count := 0
			for {
				alias := name
				if count > 0 {
					alias = fmt.Sprintf("%s%d", name, count)
				}

				if _, ok := used[alias]; !ok {
					entry.alias = alias
					used[alias] = struct{}{}
					break
				}

				count++
			}
		}
	}
}

func (m *PythonImports) Render() (string, error) {
	if m == nil {
		return "", errNilImports
	}
	if len(m.imports) == 0 {
		return "", nil
	}

	m.AssignAliases()

	pylang := []string{}
	dropbox := []string{}

	for path := range m.imports {
		if strings.HasPrefix(path, "dropbox") {
			dropbox = append(dropbox, path)
		} else {
			pylang = append(pylang, path)
		}
	}

	sort.Strings(pylang)
	sort.Strings(dropbox)

	hdr := NewBuffer()

	m.writeImports(hdr, pylang)
	if len(pylang) > 0 {
		hdr.AppendLine("")
	}

	m.writeImports(hdr, dropbox)
	if len(dropbox) > 0 {
		hdr.AppendLine("")
	}

	return hdr.Render()
}

func (m *PythonImports) writeImports(b *Buffer, paths []string) {
	for _, path := range paths {
		names := []string{}
		for name := range m.imports[path] {
			if name == "" {
				b.AppendLinef("import %s", path)
			} else {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		if len(names) == 0 {
			continue
		}

		b.AppendLinef("from %s import (", path)
		b.Indent()

		for _, name := range names {
			entry := m.imports[path][name]
			if entry.alias == entry.name {
				b.AppendLinef("%s,", entry.name)
			} else {
				b.AppendLinef("%s as %s,", entry.name, entry.alias)
			}
		}

		b.Unindent()
		b.AppendLine(")")
	}
}
