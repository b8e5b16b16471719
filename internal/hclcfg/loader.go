// Package hclcfg is the HCL-specific implementation of the config.Loader
// interface.
package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/gengridgo/internal/config"
	"github.com/vk/gengridgo/internal/ctxlog"
)

// Loader parses a single HCL file into the format-agnostic config model.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode the top-level blocks of a config file.
type fileRoot struct {
	Querydsl *querydslBlock `hcl:"querydsl,block"`
}

// querydslBlock mirrors the external configuration surface: one boolean flag
// per supported backend plus the output directory, support library, and
// generator settings.
type querydslBlock struct {
	JPA             bool `hcl:"jpa,optional"`
	JDO             bool `hcl:"jdo,optional"`
	Hibernate       bool `hcl:"hibernate,optional"`
	Morphia         bool `hcl:"morphia,optional"`
	Roo             bool `hcl:"roo,optional"`
	SpringDataMongo bool `hcl:"spring_data_mongo,optional"`

	OutputDirectory string         `hcl:"output_directory,optional"`
	Library         string         `hcl:"library,optional"`
	Generator       string         `hcl:"generator,optional"`
	GeneratorArgs   hcl.Expression `hcl:"generator_args,optional"`
}

// Load reads the HCL file at path and translates it into a config.Model with
// defaults applied. Absent boolean flags decode as false; an absent output
// directory falls back to config.DefaultOutputDirectory.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if root.Querydsl == nil {
		return nil, fmt.Errorf("config file %s contains no querydsl block", path)
	}

	model, err := l.translate(root.Querydsl)
	if err != nil {
		return nil, fmt.Errorf("invalid querydsl block in %s: %w", path, err)
	}

	logger.Debug("Configuration loaded and translated into unified model.",
		"enabled_backends", len(model.Enabled()))
	return model, nil
}

// translate converts the decoded block into the unified model.
func (l *Loader) translate(block *querydslBlock) (*config.Model, error) {
	model := config.NewModel()
	model.Backends[config.BackendJPA] = block.JPA
	model.Backends[config.BackendJDO] = block.JDO
	model.Backends[config.BackendHibernate] = block.Hibernate
	model.Backends[config.BackendMorphia] = block.Morphia
	model.Backends[config.BackendRoo] = block.Roo
	model.Backends[config.BackendSpringDataMongo] = block.SpringDataMongo

	if block.OutputDirectory != "" {
		model.OutputDirectory = block.OutputDirectory
	}
	model.Library = block.Library
	model.Generator = block.Generator

	args, err := evalGeneratorArgs(block.GeneratorArgs)
	if err != nil {
		return nil, err
	}
	model.GeneratorArgs = args

	return model, nil
}

// evalGeneratorArgs evaluates the generator_args expression, if present, into
// a plain string map. Values must be convertible to strings.
func evalGeneratorArgs(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate generator_args: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("generator_args must be a map of strings, got %s", val.Type().FriendlyName())
	}

	args := make(map[string]string)
	for key, elem := range val.AsValueMap() {
		strVal, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("generator_args[%q]: %w", key, err)
		}
		if strVal.IsNull() {
			return nil, fmt.Errorf("generator_args[%q]: value is null", key)
		}
		args[key] = strVal.AsString()
	}
	return args, nil
}
