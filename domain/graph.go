package domain

import (
	"context"
	"io"
)

// ModuleImport is one directed import edge, as read from a graph descriptor
// file: Importer directly imports Imported.
type ModuleImport struct {
	Importer     string `json:"importer" yaml:"importer"`
	Imported     string `json:"imported" yaml:"imported"`
	LineNumber   int    `json:"line_number,omitempty" yaml:"line_number,omitempty"`
	LineContents string `json:"line_contents,omitempty" yaml:"line_contents,omitempty"`
}

// LayerContract names one architectural layering rule: an ordered list of
// layers (highest first) that must not be violated by imports running the
// wrong way, optionally scoped to a set of containers (top-level packages
// under which each layer is resolved as container.layer). An empty
// Containers list means the layers themselves are top-level modules.
type LayerContract struct {
	Containers []string `json:"containers,omitempty" yaml:"containers,omitempty" toml:"containers,omitempty"`
	Layers     []string `json:"layers" yaml:"layers" toml:"layers"`
}

// GraphDescriptor is the declarative input to dependency analysis: the full
// set of modules and imports to check, independent of any particular source
// language or parser.
type GraphDescriptor struct {
	Modules []string       `json:"modules,omitempty" yaml:"modules,omitempty"`
	Imports []ModuleImport `json:"imports" yaml:"imports"`
}

// AnalysisRequest represents input for a dependency analysis run.
type AnalysisRequest struct {
	// GraphPath is the path to a graph descriptor file (JSON/YAML/TOML).
	GraphPath string

	// Graph is used instead of GraphPath when the descriptor has already
	// been loaded (e.g. by a caller embedding this package).
	Graph *GraphDescriptor

	// Contracts are the layering rules to check. If empty, only cycle
	// detection is performed.
	Contracts []LayerContract

	// ExcludePatterns are glob patterns (matched against full module names,
	// e.g. "myapp.*.tests") for modules to drop from the graph before
	// analysis, along with any imports touching them.
	ExcludePatterns []string

	// Output configuration (used by use case formatting)
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string
	NoOpen       bool
}

// Route is a compressed family of illegal import chains sharing the same
// interior waypoints.
type Route struct {
	Heads  []string `json:"heads" yaml:"heads"`
	Middle []string `json:"middle" yaml:"middle"`
	Tails  []string `json:"tails" yaml:"tails"`
}

// PackageDependency witnesses an illegal dependency from a downstream
// (lower) layer module onto an upstream (higher) layer module.
type PackageDependency struct {
	Upstream   string  `json:"upstream" yaml:"upstream"`
	Downstream string  `json:"downstream" yaml:"downstream"`
	Routes     []Route `json:"routes" yaml:"routes"`
}

// DependencyCycle represents a cycle as a strongly connected set of modules.
type DependencyCycle struct {
	Modules     []string `json:"modules" yaml:"modules"`
	Severity    string   `json:"severity" yaml:"severity"`
	Description string   `json:"description" yaml:"description"`
}

// AnalysisSummary contains aggregate stats for a dependency analysis run.
type AnalysisSummary struct {
	Modules            int `json:"modules" yaml:"modules"`
	Edges              int `json:"edges" yaml:"edges"`
	Cycles             int `json:"cycles" yaml:"cycles"`
	IllegalDependencies int `json:"illegal_dependencies" yaml:"illegal_dependencies"`
}

// AnalysisResponse is the result of a dependency analysis run.
type AnalysisResponse struct {
	Edges  []ModuleImport `json:"edges" yaml:"edges"`
	Cycles []DependencyCycle `json:"cycles" yaml:"cycles"`

	IllegalDependencies []PackageDependency `json:"illegal_dependencies" yaml:"illegal_dependencies"`

	Summary     AnalysisSummary `json:"summary" yaml:"summary"`
	Warnings    []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors      []string        `json:"errors,omitempty" yaml:"errors,omitempty"`
	GeneratedAt string          `json:"generated_at" yaml:"generated_at"`
	Version     string          `json:"version" yaml:"version"`

	DOT string `json:"dot,omitempty" yaml:"dot,omitempty"`
}

// DependencyService defines the core business logic for dependency analysis.
type DependencyService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResponse, error)
}

// AnalysisOutputFormatter defines the interface for formatting analysis results.
type AnalysisOutputFormatter interface {
	Write(response *AnalysisResponse, format OutputFormat, writer io.Writer) error
}

// GraphLoader loads a declarative graph descriptor from disk.
type GraphLoader interface {
	Load(path string) (*GraphDescriptor, error)
}
