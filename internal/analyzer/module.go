package analyzer

import "strings"

// Module is a dotted module name, e.g. "myapp.high.api". It is compared
// by value: two Modules with the same string content are the same module.
type Module string

// String returns the dotted name.
func (m Module) String() string {
	return string(m)
}

// PackageName returns the top-level package segment of the module name,
// i.e. everything before the first dot. For a top-level module it returns
// the module itself.
func (m Module) PackageName() string {
	s := string(m)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// Root returns the top-level module (the first dotted segment) as a Module.
func (m Module) Root() Module {
	return Module(m.PackageName())
}

// Parent returns the immediate parent module and true, or ("", false) if m
// is already a top-level module with no dot.
func (m Module) Parent() (Module, bool) {
	s := string(m)
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return "", false
	}
	return Module(s[:i]), true
}

// IsChildOf reports whether m's immediate parent is other.
func (m Module) IsChildOf(other Module) bool {
	parent, ok := m.Parent()
	return ok && parent == other
}

// IsDescendantOf reports whether m is nested (at any depth) under other,
// i.e. m != other and m starts with "other.".
func (m Module) IsDescendantOf(other Module) bool {
	if m == other || other == "" {
		return false
	}
	prefix := string(other) + "."
	return strings.HasPrefix(string(m), prefix)
}

// IsSelfOrDescendantOf reports whether m equals other or is nested under it.
func (m Module) IsSelfOrDescendantOf(other Module) bool {
	return m == other || m.IsDescendantOf(other)
}

// Join appends a child segment to m, returning a new Module.
func (m Module) Join(child string) Module {
	if m == "" {
		return Module(child)
	}
	return Module(string(m) + "." + child)
}
