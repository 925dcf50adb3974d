package service

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGraphLoader_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	content := `{"modules":["pkg.a","pkg.b"],"imports":[{"importer":"pkg.a","imported":"pkg.b"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewGraphLoader()
	descriptor, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(descriptor.Imports) != 1 || descriptor.Imports[0].Importer != "pkg.a" {
		t.Fatalf("unexpected descriptor: %#v", descriptor)
	}
}

func TestGraphLoader_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	content := "modules:\n  - pkg.a\n  - pkg.b\nimports:\n  - importer: pkg.a\n    imported: pkg.b\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewGraphLoader()
	descriptor, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(descriptor.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(descriptor.Modules))
	}
}

func TestGraphLoader_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.toml")
	content := "modules = [\"pkg.a\", \"pkg.b\"]\n\n[[imports]]\nimporter = \"pkg.a\"\nimported = \"pkg.b\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewGraphLoader()
	descriptor, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(descriptor.Imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(descriptor.Imports))
	}
}

func TestGraphLoader_MissingFile(t *testing.T) {
	loader := NewGraphLoader()
	if _, err := loader.Load("/nonexistent/graph.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestGraphLoader_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	loader := NewGraphLoader()
	if _, err := loader.Load(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
