// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a configuration file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
//
// Fields missing from the file keep their Default values.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = loadJSON(data, cfg)
	case ".yaml", ".yml":
		err = loadYAML(data, cfg)
	case ".hcl":
		err = loadHCL(data, path, cfg)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	cfg.location = path
	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadJSON loads a configuration from JSON data
func loadJSON(data []byte, cfg *Config) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return errors.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// loadYAML loads a configuration from YAML data
func loadYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return errors.Errorf("parsing YAML: %w", err)
	}
	return nil
}

// loadHCL loads a configuration from HCL data.
// Expressions may reference the process environment as env.NAME.
func loadHCL(data []byte, filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, cfg)
	if diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return nil
}

// environment exposes os.Environ as a cty object
func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
