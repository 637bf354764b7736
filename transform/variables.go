/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"maps"
	"slices"

	"bennypowers.dev/tokman/token"
)

// Mode is a named variant of a collection.
type Mode struct {
	ID   string `json:"modeId"`
	Name string `json:"name"`
}

// Collection groups variables that share modes.
type Collection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Modes         []Mode `json:"modes"`
	DefaultModeID string `json:"defaultModeId"`
}

// ModeName returns the name of the mode with the given id, or "".
func (c *Collection) ModeName(id string) string {
	for _, m := range c.Modes {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// VariableRecord is one remote variable with values already normalized per mode name.
type VariableRecord struct {
	ID           string
	Name         string
	Collection   *Collection
	ResolvedType string
	// ValuesByMode maps mode names to normalized values.
	ValuesByMode map[string]token.Value
	// OriginalValues holds the source values by mode name, before normalization.
	OriginalValues map[string]any
	Description    string
	Scopes         []string
	CodeSyntax     map[string]string
}

// Variables transforms variable records into tokens.
// Records without a collection, without a usable name, or without any mode
// value are dropped and reported.
func Variables(records []VariableRecord, opts Options) ([]*token.Token, Diagnostics) {
	var (
		tokens []*token.Token
		diags  Diagnostics
	)
	for _, rec := range records {
		if rec.Collection == nil {
			diags.Warnf(token.SourceFigma, rec.Name, "missing collection reference")
			continue
		}

		name, path := token.NameFromSlashPath(rec.Name, opts.separator())
		if name == "" {
			diags.Warnf(token.SourceFigma, rec.ID, "empty variable name")
			continue
		}

		values := make(map[string]token.Value, len(rec.ValuesByMode))
		for mode, v := range rec.ValuesByMode {
			if v != nil {
				values[mode] = v
			}
		}
		if len(values) == 0 {
			diags.Warnf(token.SourceFigma, rec.Name, "no mode values")
			continue
		}

		defaultMode := selectDefaultMode(rec.Collection, values)
		if defaultMode != rec.Collection.ModeName(rec.Collection.DefaultModeID) {
			diags.Infof(token.SourceFigma, rec.Name, "default mode has no value, using %q", defaultMode)
		}

		tokens = append(tokens, &token.Token{
			Name:         name,
			Path:         path,
			Value:        values[defaultMode],
			Type:         token.TypeFromResolvedType(rec.ResolvedType),
			Description:  rec.Description,
			ValuesByMode: values,
			DefaultMode:  defaultMode,
			Metadata: token.Metadata{
				Source:        token.SourceFigma,
				OriginalName:  rec.Name,
				OriginalValue: rec.OriginalValues[defaultMode],
				Variable: &token.VariableMeta{
					ID:             rec.ID,
					CollectionID:   rec.Collection.ID,
					CollectionName: rec.Collection.Name,
					Scopes:         rec.Scopes,
					CodeSyntax:     rec.CodeSyntax,
				},
			},
		})
	}
	return tokens, diags
}

// selectDefaultMode picks the mode whose value becomes the token's value:
// the collection's default mode if it has a value, then the collection's
// modes in declared order, then any remaining mode names sorted.
// values must be non-empty.
func selectDefaultMode(c *Collection, values map[string]token.Value) string {
	if name := c.ModeName(c.DefaultModeID); name != "" {
		if _, ok := values[name]; ok {
			return name
		}
	}
	for _, m := range c.Modes {
		if _, ok := values[m.Name]; ok {
			return m.Name
		}
	}
	return slices.Sorted(maps.Keys(values))[0]
}
