// Package yamlcfg is the YAML-specific implementation of the config.Loader
// interface. It accepts the same configuration surface as the HCL loader,
// with camelCase keys.
package yamlcfg

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/gengridgo/internal/config"
	"github.com/vk/gengridgo/internal/ctxlog"
)

// Loader parses a single YAML file into the format-agnostic config model.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the document layout: a single top-level querydsl mapping.
type fileRoot struct {
	Querydsl *querydslDoc `yaml:"querydsl"`
}

type querydslDoc struct {
	JPA             bool `yaml:"jpa"`
	JDO             bool `yaml:"jdo"`
	Hibernate       bool `yaml:"hibernate"`
	Morphia         bool `yaml:"morphia"`
	Roo             bool `yaml:"roo"`
	SpringDataMongo bool `yaml:"springDataMongo"`

	OutputDirectory string            `yaml:"outputDirectory"`
	Library         string            `yaml:"library"`
	Generator       string            `yaml:"generator"`
	GeneratorArgs   map[string]string `yaml:"generatorArgs"`
}

// Load reads the YAML file at path and translates it into a config.Model
// with defaults applied. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	if root.Querydsl == nil {
		return nil, fmt.Errorf("config file %s contains no querydsl mapping", path)
	}

	doc := root.Querydsl
	model := config.NewModel()
	model.Backends[config.BackendJPA] = doc.JPA
	model.Backends[config.BackendJDO] = doc.JDO
	model.Backends[config.BackendHibernate] = doc.Hibernate
	model.Backends[config.BackendMorphia] = doc.Morphia
	model.Backends[config.BackendRoo] = doc.Roo
	model.Backends[config.BackendSpringDataMongo] = doc.SpringDataMongo

	if doc.OutputDirectory != "" {
		model.OutputDirectory = doc.OutputDirectory
	}
	model.Library = doc.Library
	model.Generator = doc.Generator
	if len(doc.GeneratorArgs) > 0 {
		model.GeneratorArgs = doc.GeneratorArgs
	}

	logger.Debug("Configuration loaded and translated into unified model.",
		"enabled_backends", len(model.Enabled()))
	return model, nil
}
