package analyzer

import "sort"

// DirectImport records one observed import statement between two modules.
// LineNumber and LineContents are provenance only: they do not affect graph
// identity (Importer, Imported) and several DirectImports with the same
// endpoints but different provenance may coexist.
type DirectImport struct {
	Importer     Module
	Imported     Module
	LineNumber   int
	LineContents string
}

// ImportGraph is a directed graph of modules and the imports between them.
// A zero-value ImportGraph is not usable; construct one with NewImportGraph.
//
// ImportGraph is not safe for concurrent mutation. Concurrent reads (after
// construction has finished) are safe.
type ImportGraph struct {
	modules map[Module]struct{}

	// imports[importer][imported] holds every DirectImport recorded for
	// that edge, keyed by (LineNumber, LineContents) to allow more than
	// one import statement between the same pair of modules.
	imports map[Module]map[Module]map[provenanceKey]DirectImport

	// importedBy is the reverse index of imports, for fast upstream queries.
	importedBy map[Module]map[Module]struct{}
}

type provenanceKey struct {
	lineNumber   int
	lineContents string
}

// NewImportGraph returns an empty graph.
func NewImportGraph() *ImportGraph {
	return &ImportGraph{
		modules:    make(map[Module]struct{}),
		imports:    make(map[Module]map[Module]map[provenanceKey]DirectImport),
		importedBy: make(map[Module]map[Module]struct{}),
	}
}

// AddModule registers a module as present in the graph. Adding an already
// present module is a no-op.
func (g *ImportGraph) AddModule(m Module) {
	g.modules[m] = struct{}{}
}

// RemoveModule removes a module and every import touching it.
func (g *ImportGraph) RemoveModule(m Module) {
	if _, ok := g.modules[m]; !ok {
		return
	}
	delete(g.modules, m)

	for imported := range g.imports[m] {
		delete(g.importedBy[imported], m)
	}
	delete(g.imports, m)

	for importer := range g.importedBy[m] {
		delete(g.imports[importer], m)
	}
	delete(g.importedBy, m)
}

// HasModule reports whether m was registered via AddModule (directly or as
// the endpoint of an AddImport call).
func (g *ImportGraph) HasModule(m Module) bool {
	_, ok := g.modules[m]
	return ok
}

// Modules returns every module in the graph, sorted for determinism.
func (g *ImportGraph) Modules() []Module {
	out := make([]Module, 0, len(g.modules))
	for m := range g.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddImport records a direct import from di.Importer to di.Imported, adding
// both endpoints as modules if they were not already present. Adding the
// same (Importer, Imported, LineNumber, LineContents) twice is idempotent.
// Self-imports (Importer == Imported) are rejected silently, mirroring the
// fact that a module never illegally imports itself.
func (g *ImportGraph) AddImport(di DirectImport) {
	if di.Importer == di.Imported {
		return
	}
	g.AddModule(di.Importer)
	g.AddModule(di.Imported)

	if g.imports[di.Importer] == nil {
		g.imports[di.Importer] = make(map[Module]map[provenanceKey]DirectImport)
	}
	if g.imports[di.Importer][di.Imported] == nil {
		g.imports[di.Importer][di.Imported] = make(map[provenanceKey]DirectImport)
	}
	key := provenanceKey{lineNumber: di.LineNumber, lineContents: di.LineContents}
	g.imports[di.Importer][di.Imported][key] = di

	if g.importedBy[di.Imported] == nil {
		g.importedBy[di.Imported] = make(map[Module]struct{})
	}
	g.importedBy[di.Imported][di.Importer] = struct{}{}
}

// RemoveImport removes every DirectImport recorded between importer and
// imported (their provenance is not distinguished). The modules themselves
// remain in the graph.
func (g *ImportGraph) RemoveImport(importer, imported Module) {
	if g.imports[importer] != nil {
		delete(g.imports[importer], imported)
	}
	if g.importedBy[imported] != nil {
		delete(g.importedBy[imported], importer)
	}
}

// DirectlyImports reports whether there is at least one recorded import
// from importer to imported.
func (g *ImportGraph) DirectlyImports(importer, imported Module) bool {
	edges, ok := g.imports[importer]
	if !ok {
		return false
	}
	_, ok = edges[imported]
	return ok
}

// ModulesDirectlyImportedBy returns every module that importer directly
// imports, sorted for determinism.
func (g *ImportGraph) ModulesDirectlyImportedBy(importer Module) []Module {
	edges := g.imports[importer]
	out := make([]Module, 0, len(edges))
	for m := range edges {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ModulesThatDirectlyImport returns every module that directly imports
// imported, sorted for determinism.
func (g *ImportGraph) ModulesThatDirectlyImport(imported Module) []Module {
	reverse := g.importedBy[imported]
	out := make([]Module, 0, len(reverse))
	for m := range reverse {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DirectImportsBetween returns every DirectImport recorded from importer to
// imported, in no particular order.
func (g *ImportGraph) DirectImportsBetween(importer, imported Module) []DirectImport {
	edges, ok := g.imports[importer][imported]
	if !ok {
		return nil
	}
	out := make([]DirectImport, 0, len(edges))
	for _, di := range edges {
		out = append(out, di)
	}
	return out
}

// AllDirectImports returns every DirectImport in the graph.
func (g *ImportGraph) AllDirectImports() []DirectImport {
	var out []DirectImport
	for _, byImported := range g.imports {
		for _, byProvenance := range byImported {
			for _, di := range byProvenance {
				out = append(out, di)
			}
		}
	}
	return out
}

// Descendants returns m together with every module nested under it
// (at any depth), sorted for determinism. If m is not present in the
// graph, Descendants still returns any registered descendants of m.
func (g *ImportGraph) Descendants(m Module) []Module {
	out := []Module{}
	if g.HasModule(m) {
		out = append(out, m)
	}
	for candidate := range g.modules {
		if candidate.IsDescendantOf(m) {
			out = append(out, candidate)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy of the graph.
func (g *ImportGraph) Clone() *ImportGraph {
	clone := NewImportGraph()
	for m := range g.modules {
		clone.AddModule(m)
	}
	for _, di := range g.AllDirectImports() {
		clone.AddImport(di)
	}
	return clone
}
