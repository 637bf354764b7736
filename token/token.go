/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the normalized design token model.
package token

import (
	"sort"
	"strings"
)

// Source identifies the kind of source a token was extracted from.
type Source string

const (
	// SourceFigma marks tokens produced from Figma variables.
	SourceFigma Source = "figma"
	// SourceFigmaStyle marks tokens produced from published Figma styles.
	SourceFigmaStyle Source = "figma-style"
	// SourceStylesheet marks tokens produced from stylesheet custom properties.
	SourceStylesheet Source = "stylesheet"
)

// Sources returns every known source kind.
func Sources() []Source {
	return []Source{SourceFigma, SourceFigmaStyle, SourceStylesheet}
}

// ParseSource converts a string to a Source.
func ParseSource(s string) (Source, bool) {
	switch strings.ToLower(s) {
	case "figma", "figma-variable", "variables":
		return SourceFigma, true
	case "figma-style", "styles":
		return SourceFigmaStyle, true
	case "stylesheet", "css":
		return SourceStylesheet, true
	default:
		return "", false
	}
}

// Token is one normalized design value.
type Token struct {
	// Name is the flat identifier (e.g., "color-brand-primary").
	Name string `json:"name"`

	// Path holds the hierarchical segments (e.g., ["color", "brand", "primary"]).
	Path []string `json:"path"`

	// Value is the value for the default mode. Nil only when NeedsNodeData is set.
	Value Value `json:"-"`

	// Type is the token category.
	Type Type `json:"$type"`

	// Description is optional documentation for the token.
	Description string `json:"$description,omitempty"`

	// ValuesByMode maps mode names to values. Empty for modeless sources.
	ValuesByMode map[string]Value `json:"-"`

	// DefaultMode names the ValuesByMode entry that Value was taken from.
	DefaultMode string `json:"-"`

	// Metadata records where the token came from.
	Metadata Metadata `json:"-"`

	// NeedsNodeData marks a placeholder for a style whose value could not be resolved.
	NeedsNodeData bool `json:"-"`
}

// Metadata is provenance information for a token.
type Metadata struct {
	// Source is the kind of source the token came from.
	Source Source

	// OriginalName is the untransformed source identifier.
	OriginalName string

	// OriginalValue is the source value before normalization.
	OriginalValue any

	// Variable is set for tokens from Figma variables.
	Variable *VariableMeta

	// Style is set for tokens from Figma styles.
	Style *StyleMeta

	// Stylesheet is set for tokens from stylesheet custom properties.
	Stylesheet *StylesheetMeta
}

// VariableMeta is Figma variable provenance.
type VariableMeta struct {
	ID             string
	CollectionID   string
	CollectionName string
	Scopes         []string
	CodeSyntax     map[string]string
}

// StyleMeta is Figma style provenance.
type StyleMeta struct {
	Key       string
	NodeID    string
	StyleType string
	// EffectIndex is the position in the node's effect list, or -1.
	EffectIndex int
}

// StylesheetMeta is stylesheet provenance.
type StylesheetMeta struct {
	File string
	// Line is the 1-based line of the declaration, or 0 when unknown.
	Line int
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "--color-primary" or "--my-prefix-color-primary"
func (t *Token) CSSVariableName(prefix string) string {
	if prefix != "" {
		return "--" + prefix + "-" + t.Name
	}
	return "--" + t.Name
}

// Modes returns the mode names in a stable order, default mode first.
func (t *Token) Modes() []string {
	if len(t.ValuesByMode) == 0 {
		return nil
	}
	modes := make([]string, 0, len(t.ValuesByMode))
	for mode := range t.ValuesByMode {
		if mode != t.DefaultMode {
			modes = append(modes, mode)
		}
	}
	sort.Strings(modes)
	if _, ok := t.ValuesByMode[t.DefaultMode]; ok {
		modes = append([]string{t.DefaultMode}, modes...)
	}
	return modes
}
