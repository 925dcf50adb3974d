package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/layerlint/layerlint/domain"
)

func sampleAnalysisResponse() *domain.AnalysisResponse {
	return &domain.AnalysisResponse{
		Edges:  []domain.ModuleImport{{Importer: "pkg.a", Imported: "pkg.b"}},
		Cycles: []domain.DependencyCycle{},
		IllegalDependencies: []domain.PackageDependency{
			{
				Upstream:   "myapp.high",
				Downstream: "myapp.low",
				Routes: []domain.Route{
					{Heads: []string{"myapp.low"}, Middle: []string{}, Tails: []string{"myapp.high"}},
				},
			},
		},
		Summary: domain.AnalysisSummary{Modules: 2, Edges: 1, Cycles: 0, IllegalDependencies: 1},
		DOT:     "digraph dependencies {\n  \"pkg.a\" -> \"pkg.b\";\n}\n",
	}
}

func TestAnalysisFormatter_Text(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	if err := f.Write(sampleAnalysisResponse(), domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("write text: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Dependency Analysis") || !strings.Contains(out, "ILLEGAL LAYER DEPENDENCIES") {
		t.Fatalf("unexpected text output: %s", out)
	}
}

func TestAnalysisFormatter_Text_CycleCoverage(t *testing.T) {
	f := NewAnalysisFormatter()
	resp := sampleAnalysisResponse()
	resp.Cycles = []domain.DependencyCycle{
		{Modules: []string{"pkg.a", "pkg.b"}, Severity: "high", Description: "cycle"},
	}
	resp.Summary.Cycles = 1
	var buf bytes.Buffer
	if err := f.Write(resp, domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("write text: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Module coverage") || !strings.Contains(out, "100.0%") {
		t.Fatalf("expected cycle coverage line, got: %s", out)
	}
}

func TestAnalysisFormatter_JSON(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	if err := f.Write(sampleAnalysisResponse(), domain.OutputFormatJSON, &buf); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected json output, got: %s", buf.String())
	}
}

func TestAnalysisFormatter_YAML(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	if err := f.Write(sampleAnalysisResponse(), domain.OutputFormatYAML, &buf); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "summary:") {
		t.Fatalf("expected yaml output, got: %s", buf.String())
	}
}

func TestAnalysisFormatter_CSV(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	if err := f.Write(sampleAnalysisResponse(), domain.OutputFormatCSV, &buf); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "upstream,downstream,heads,middle,tails") {
		t.Fatalf("unexpected csv header: %s", s)
	}
}

func TestAnalysisFormatter_HTML(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	if err := f.Write(sampleAnalysisResponse(), domain.OutputFormatHTML, &buf); err != nil {
		t.Fatalf("write html: %v", err)
	}
	if !strings.Contains(buf.String(), "<html") {
		t.Fatalf("expected html output, got: %s", buf.String())
	}
}

func TestAnalysisFormatter_DOT(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	resp := sampleAnalysisResponse()
	if err := f.Write(resp, domain.OutputFormatDOT, &buf); err != nil {
		t.Fatalf("write dot: %v", err)
	}
	if buf.String() != resp.DOT {
		t.Fatalf("expected raw DOT passthrough, got: %s", buf.String())
	}
}

func TestAnalysisFormatter_UnsupportedFormat(t *testing.T) {
	f := NewAnalysisFormatter()
	var buf bytes.Buffer
	if err := f.Write(sampleAnalysisResponse(), domain.OutputFormat("bogus"), &buf); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
