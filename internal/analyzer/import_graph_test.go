package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportGraph_AddImportIsIdempotent(t *testing.T) {
	g := NewImportGraph()
	di := DirectImport{Importer: "a", Imported: "b", LineNumber: 1, LineContents: "import b"}
	g.AddImport(di)
	g.AddImport(di)

	assert.Equal(t, []Module{"a", "b"}, g.Modules())
	assert.Len(t, g.DirectImportsBetween("a", "b"), 1)
}

func TestImportGraph_AddImportRejectsSelfImport(t *testing.T) {
	g := NewImportGraph()
	g.AddImport(DirectImport{Importer: "a", Imported: "a"})
	assert.False(t, g.DirectlyImports("a", "a"))
}

func TestImportGraph_DistinctProvenanceCoexists(t *testing.T) {
	g := NewImportGraph()
	g.AddImport(DirectImport{Importer: "a", Imported: "b", LineNumber: 1, LineContents: "import b"})
	g.AddImport(DirectImport{Importer: "a", Imported: "b", LineNumber: 5, LineContents: "from b import x"})
	assert.Len(t, g.DirectImportsBetween("a", "b"), 2)
}

func TestImportGraph_RemoveModuleRemovesImports(t *testing.T) {
	g := NewImportGraph()
	g.AddImport(DirectImport{Importer: "a", Imported: "b"})
	g.AddImport(DirectImport{Importer: "b", Imported: "c"})

	g.RemoveModule("b")

	assert.False(t, g.HasModule("b"))
	assert.Empty(t, g.ModulesDirectlyImportedBy("a"))
	assert.Empty(t, g.ModulesThatDirectlyImport("c"))
}

func TestImportGraph_ModulesThatDirectlyImport(t *testing.T) {
	g := NewImportGraph()
	g.AddImport(DirectImport{Importer: "a", Imported: "c"})
	g.AddImport(DirectImport{Importer: "b", Imported: "c"})

	assert.Equal(t, []Module{"a", "b"}, g.ModulesThatDirectlyImport("c"))
}

func TestImportGraph_Descendants(t *testing.T) {
	g := NewImportGraph()
	g.AddModule("myapp")
	g.AddModule("myapp.high")
	g.AddModule("myapp.high.api")
	g.AddModule("myapp.low")
	g.AddModule("other")

	got := g.Descendants("myapp")
	assert.Equal(t, []Module{"myapp", "myapp.high", "myapp.high.api", "myapp.low"}, got)
}

func TestImportGraph_Clone(t *testing.T) {
	g := NewImportGraph()
	g.AddImport(DirectImport{Importer: "a", Imported: "b"})

	clone := g.Clone()
	clone.AddImport(DirectImport{Importer: "b", Imported: "c"})

	require.False(t, g.HasModule("c"), "mutating the clone must not affect the original")
	assert.True(t, clone.HasModule("c"))
}
