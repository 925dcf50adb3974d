package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/layerlint/layerlint/domain"
	"github.com/layerlint/layerlint/internal/analyzer"
	"github.com/layerlint/layerlint/internal/version"
)

// DependencyServiceImpl implements domain.DependencyService: it builds an
// import graph from a declarative graph descriptor and runs cycle detection
// and layer-contract checking over it.
type DependencyServiceImpl struct {
	loader domain.GraphLoader
	status io.Writer // progress-bar destination, typically stderr
}

// NewDependencyService creates a new dependency analysis service that
// reports progress to stderr.
func NewDependencyService() *DependencyServiceImpl {
	return NewDependencyServiceWithStatus(nil)
}

// NewDependencyServiceWithStatus creates a new dependency analysis service,
// reporting progress to status (os.Stderr if nil).
func NewDependencyServiceWithStatus(status io.Writer) *DependencyServiceImpl {
	if status == nil {
		status = os.Stderr
	}
	return &DependencyServiceImpl{loader: NewGraphLoader(), status: status}
}

// Analyze implements domain.DependencyService.
func (s *DependencyServiceImpl) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	descriptor, err := s.resolveGraph(req)
	if err != nil {
		return nil, err
	}

	graph, warnings := buildImportGraph(descriptor, req.ExcludePatterns)

	response := &domain.AnalysisResponse{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.Short(),
		Warnings:    warnings,
	}
	response.Edges = importsFromGraph(graph)

	cyclesResult := analyzer.DetectCircularDependencies(graph)
	for _, c := range cyclesResult.CircularDependencies {
		response.Cycles = append(response.Cycles, toDomainCycle(c))
	}

	progress := newProgressReporter(s.status, len(req.Contracts), "Checking layer contracts")
	for _, contract := range req.Contracts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		deps, err := analyzer.FindIllegalDependenciesForLayers(graph, contract.Layers, contract.Containers)
		if err != nil {
			response.Errors = append(response.Errors, err.Error())
			progress.Add(1)
			continue
		}
		for _, d := range deps {
			response.IllegalDependencies = append(response.IllegalDependencies, toDomainPackageDependency(d))
		}
		progress.Add(1)
	}
	progress.Finish()

	response.Summary = domain.AnalysisSummary{
		Modules:             len(graph.Modules()),
		Edges:               len(response.Edges),
		Cycles:              len(response.Cycles),
		IllegalDependencies: len(response.IllegalDependencies),
	}
	response.DOT = toDOT(graph)

	return response, nil
}

func (s *DependencyServiceImpl) resolveGraph(req domain.AnalysisRequest) (*domain.GraphDescriptor, error) {
	if req.Graph != nil {
		return req.Graph, nil
	}
	if req.GraphPath == "" {
		return nil, domain.NewInvalidInputError("no graph descriptor provided", nil)
	}
	return s.loader.Load(req.GraphPath)
}

func buildImportGraph(descriptor *domain.GraphDescriptor, excludePatterns []string) (*analyzer.ImportGraph, []string) {
	graph := analyzer.NewImportGraph()
	var warnings []string

	excluded := func(moduleName string) bool {
		for _, pattern := range excludePatterns {
			if matched, _ := doublestar.Match(pattern, moduleName); matched {
				return true
			}
		}
		return false
	}

	for _, m := range descriptor.Modules {
		if excluded(m) {
			continue
		}
		graph.AddModule(analyzer.Module(m))
	}
	for _, imp := range descriptor.Imports {
		if imp.Importer == "" || imp.Imported == "" {
			warnings = append(warnings, fmt.Sprintf("skipping import with empty endpoint: %+v", imp))
			continue
		}
		if excluded(imp.Importer) || excluded(imp.Imported) {
			continue
		}
		graph.AddImport(analyzer.DirectImport{
			Importer:     analyzer.Module(imp.Importer),
			Imported:     analyzer.Module(imp.Imported),
			LineNumber:   imp.LineNumber,
			LineContents: imp.LineContents,
		})
	}
	return graph, warnings
}

func importsFromGraph(graph *analyzer.ImportGraph) []domain.ModuleImport {
	direct := graph.AllDirectImports()
	edges := make([]domain.ModuleImport, len(direct))
	for i, di := range direct {
		edges[i] = domain.ModuleImport{
			Importer:     di.Importer.String(),
			Imported:     di.Imported.String(),
			LineNumber:   di.LineNumber,
			LineContents: di.LineContents,
		}
	}
	return edges
}

func toDomainCycle(c *analyzer.CircularDependency) domain.DependencyCycle {
	modules := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		modules[i] = m.String()
	}
	return domain.DependencyCycle{
		Modules:     modules,
		Severity:    string(c.Severity),
		Description: c.Description,
	}
}

func toDomainPackageDependency(d analyzer.PackageDependency) domain.PackageDependency {
	routes := make([]domain.Route, len(d.Routes))
	for i, r := range d.Routes {
		routes[i] = domain.Route{
			Heads:  modulesToStrings(r.Heads),
			Middle: modulesToStrings(r.Middle),
			Tails:  modulesToStrings(r.Tails),
		}
	}
	return domain.PackageDependency{
		Upstream:   d.Upstream.String(),
		Downstream: d.Downstream.String(),
		Routes:     routes,
	}
}

func modulesToStrings(modules []analyzer.Module) []string {
	out := make([]string, len(modules))
	for i, m := range modules {
		out[i] = m.String()
	}
	return out
}

func toDOT(graph *analyzer.ImportGraph) string {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	for _, di := range graph.AllDirectImports() {
		fmt.Fprintf(&b, "  %q -> %q;\n", di.Importer.String(), di.Imported.String())
	}
	b.WriteString("}\n")
	return b.String()
}
