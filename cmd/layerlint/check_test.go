package main

import (
	"testing"

	"github.com/layerlint/layerlint/internal/config"
)

func TestCheckCommandInterface(t *testing.T) {
	cmd := NewCheckCmd()
	if cmd == nil {
		t.Fatal("NewCheckCmd should return a valid command")
	}
	if cmd.Use != "check <graph-file>" {
		t.Errorf("expected Use to be 'check <graph-file>', got %s", cmd.Use)
	}

	flags := cmd.Flags()
	for _, name := range []string{"json", "yaml", "csv", "dot", "html", "no-open", "config", "quiet"} {
		if flags.Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be defined", name)
		}
	}
}

func TestContractsFromConfig(t *testing.T) {
	cfg := &config.Config{
		Contracts: []config.ContractToml{
			{Containers: []string{"myapp"}, Layers: []string{"high", "low"}},
		},
	}
	contracts := contractsFromConfig(cfg)
	if len(contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d", len(contracts))
	}
	if contracts[0].Layers[0] != "high" || contracts[0].Layers[1] != "low" {
		t.Errorf("unexpected layers: %+v", contracts[0].Layers)
	}
}

func TestContractsFromConfig_Nil(t *testing.T) {
	if got := contractsFromConfig(nil); got != nil {
		t.Errorf("expected nil contracts for nil config, got %+v", got)
	}
}
