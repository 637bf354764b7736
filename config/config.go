/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokman.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokman/convert"
	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/resolver"
	"bennypowers.dev/tokman/schema"
	"bennypowers.dev/tokman/token"
	"bennypowers.dev/tokman/transform"
)

// ErrUnknownSourceType is returned for a source whose type is not recognized.
var ErrUnknownSourceType = errors.New("unknown source type")

// ErrMixedSeparator reports a custom separator on a config that also reads
// stylesheets, whose names are always dash-joined.
var ErrMixedSeparator = errors.New("custom naming.separator cannot be combined with figma and stylesheet sources")

// SourceType names an input kind.
type SourceType string

const (
	// SourceFigma reads variables, and optionally styles, from a Figma file.
	SourceFigma SourceType = "figma"
	// SourceStylesheet reads custom properties from local stylesheets.
	SourceStylesheet SourceType = "stylesheet"
)

// Config represents the tokman configuration.
type Config struct {
	// Sources are read in order; earlier sources come first in the output.
	Sources []Source `yaml:"sources" json:"sources"`

	// ConflictResolution selects the conflict policy:
	// firstSourceWins, secondSourceWins, sourceOrderWins, throwOnConflict or precedence.
	ConflictResolution string `yaml:"conflictResolution" json:"conflictResolution"`

	// Precedence ranks source kinds, highest first (optional).
	Precedence []string `yaml:"precedence" json:"precedence"`

	// Naming configures name derivation.
	Naming Naming `yaml:"naming" json:"naming"`

	// Outputs lists the artifacts to write.
	Outputs []Output `yaml:"outputs" json:"outputs"`
}

// Naming configures name derivation.
type Naming struct {
	// Separator joins path segments of Figma names. Defaults to "-".
	// Stylesheet names always use "-", so a different separator is only
	// accepted when the config has no stylesheet sources alongside Figma;
	// otherwise the same token would get two names and never conflict.
	Separator string `yaml:"separator" json:"separator"`
}

// Source is one input.
// It can be specified as a simple string, which is a stylesheet glob,
// or as an object.
type Source struct {
	Type SourceType `yaml:"type" json:"type"`

	// FileKey identifies the Figma file.
	FileKey string `yaml:"fileKey" json:"fileKey"`

	// Variables reads local variables. Defaults to true.
	Variables *bool `yaml:"variables" json:"variables"`

	// Styles reads published styles.
	Styles bool `yaml:"styles" json:"styles"`

	// Paths are stylesheet paths or globs, relative to the project root.
	Paths []string `yaml:"paths" json:"paths"`
}

// UnmarshalYAML handles both string and object forms for Source.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Source{Type: SourceStylesheet, Paths: []string{node.Value}}
		return nil
	}

	type rawSource Source
	return node.Decode((*rawSource)(s))
}

// UnmarshalJSON handles both string and object forms for Source.
func (s *Source) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		*s = Source{Type: SourceStylesheet, Paths: []string{path}}
		return nil
	}

	type rawSource Source
	return json.Unmarshal(data, (*rawSource)(s))
}

// ReadsVariables reports whether a figma source reads variables.
func (s Source) ReadsVariables() bool {
	return s.Variables == nil || *s.Variables
}

// Output is one artifact to write.
type Output struct {
	Format       string `yaml:"format" json:"format"`
	Path         string `yaml:"path" json:"path"`
	Prefix       string `yaml:"prefix" json:"prefix"`
	Delimiter    string `yaml:"delimiter" json:"delimiter"`
	Schema       string `yaml:"schema" json:"schema"`
	Selector     string `yaml:"selector" json:"selector"`
	ModeSelector string `yaml:"modeSelector" json:"modeSelector"`
	MapName      string `yaml:"mapName" json:"mapName"`
	Header       string `yaml:"header" json:"header"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		ConflictResolution: "firstSourceWins",
		Naming:             Naming{Separator: "-"},
	}
}

// Validate checks sources, the conflict policy and outputs.
func (c *Config) Validate() error {
	var errs []error
	for i, src := range c.Sources {
		switch src.Type {
		case SourceFigma:
			if src.FileKey == "" {
				errs = append(errs, fmt.Errorf("sources[%d]: figma source needs a fileKey", i))
			}
			if !src.ReadsVariables() && !src.Styles {
				errs = append(errs, fmt.Errorf("sources[%d]: figma source reads neither variables nor styles", i))
			}
		case SourceStylesheet:
			if len(src.Paths) == 0 {
				errs = append(errs, fmt.Errorf("sources[%d]: stylesheet source needs paths", i))
			}
		default:
			errs = append(errs, fmt.Errorf("sources[%d]: %w: %q", i, ErrUnknownSourceType, src.Type))
		}
	}
	if err := c.validateSeparator(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ConvertOutputs(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) validateSeparator() error {
	sep := c.Naming.Separator
	if sep == "" || sep == token.DefaultSeparator || !c.HasFigma() {
		return nil
	}
	for _, src := range c.Sources {
		if src.Type == SourceStylesheet {
			return fmt.Errorf("naming.separator %q: %w", sep, ErrMixedSeparator)
		}
	}
	return nil
}

// Policy returns the configured conflict resolution policy.
func (c *Config) Policy() (resolver.Policy, error) {
	return resolver.ParsePolicy(c.ConflictResolution, c.Precedence)
}

// TransformOptions returns the name derivation options.
func (c *Config) TransformOptions() transform.Options {
	return transform.Options{Separator: c.Naming.Separator}
}

// HasFigma reports whether any source reads from Figma.
func (c *Config) HasFigma() bool {
	for _, src := range c.Sources {
		if src.Type == SourceFigma {
			return true
		}
	}
	return false
}

// ConvertOutputs returns the outputs with formats and schema versions parsed.
func (c *Config) ConvertOutputs() ([]convert.Output, error) {
	outputs := make([]convert.Output, 0, len(c.Outputs))
	for i, out := range c.Outputs {
		format, err := convert.ParseFormat(out.Format)
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		if out.Path == "" {
			return nil, fmt.Errorf("outputs[%d]: missing path", i)
		}
		version, err := schema.FromString(out.Schema)
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		outputs = append(outputs, convert.Output{
			Format: format,
			Path:   out.Path,
			Options: formatter.Options{
				Prefix:       out.Prefix,
				Delimiter:    out.Delimiter,
				Schema:       version,
				Selector:     out.Selector,
				ModeSelector: out.ModeSelector,
				MapName:      out.MapName,
				Header:       out.Header,
			},
		})
	}
	return outputs, nil
}
