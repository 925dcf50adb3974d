package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/layerlint/layerlint/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// GraphLoaderImpl loads a declarative graph descriptor from a JSON, YAML or
// TOML file, selecting the decoder by file extension.
type GraphLoaderImpl struct{}

// NewGraphLoader creates a new graph descriptor loader.
func NewGraphLoader() *GraphLoaderImpl {
	return &GraphLoaderImpl{}
}

// Load reads and parses the graph descriptor at path.
func (l *GraphLoaderImpl) Load(path string) (*domain.GraphDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}

	var descriptor domain.GraphDescriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &descriptor)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &descriptor)
	case ".toml":
		err = toml.Unmarshal(data, &descriptor)
	default:
		return nil, domain.NewUnsupportedFormatError(ext)
	}
	if err != nil {
		return nil, domain.NewParseError(path, err)
	}
	return &descriptor, nil
}
