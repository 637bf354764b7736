/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"maps"
	"slices"

	"bennypowers.dev/tokman/resolver"
	"bennypowers.dev/tokman/token"
	"bennypowers.dev/tokman/transform"
)

// ParseVariables turns a variables response into transform records.
//
// Mode ids become mode names, colors are normalized, and VARIABLE_ALIAS
// values are replaced by the target's value for the same mode name, or
// the target's default value when it has no such mode. Values that cannot
// be normalized or resolved are dropped and reported.
//
// Records are ordered by collection id, then by each collection's
// variableIds, then any remaining variables by id.
func ParseVariables(resp *VariablesResponse) ([]transform.VariableRecord, transform.Diagnostics) {
	if resp == nil {
		return nil, nil
	}
	p := &variableParser{
		variables:   resp.Meta.Variables,
		collections: make(map[string]*transform.Collection, len(resp.Meta.VariableCollections)),
		resolved:    make(map[string]map[string]token.Value),
		originals:   make(map[string]map[string]any),
	}
	for id, vc := range resp.Meta.VariableCollections {
		p.collections[id] = &transform.Collection{
			ID:            vc.ID,
			Name:          vc.Name,
			Modes:         vc.Modes,
			DefaultModeID: vc.DefaultModeID,
		}
	}

	graph := resolver.NewDependencyGraph()
	for id, v := range p.variables {
		graph.AddNode(id)
		for _, raw := range v.ValuesByMode {
			if target, ok := alias(raw); ok {
				graph.AddDependency(id, target)
			}
		}
	}
	ordered, blocked := graph.Partition()
	for _, id := range ordered {
		p.resolve(id, false)
	}
	for _, id := range blocked {
		p.resolve(id, true)
	}

	var records []transform.VariableRecord
	for _, id := range p.order(resp) {
		v := p.variables[id]
		if v.DeletedButReferenced {
			p.diags.Infof(token.SourceFigma, v.Name, "skipping deleted variable")
			continue
		}
		records = append(records, transform.VariableRecord{
			ID:             v.ID,
			Name:           v.Name,
			Collection:     p.collections[v.VariableCollectionID],
			ResolvedType:   v.ResolvedType,
			ValuesByMode:   p.resolved[id],
			OriginalValues: p.originals[id],
			Description:    v.Description,
			Scopes:         v.Scopes,
			CodeSyntax:     v.CodeSyntax,
		})
	}
	return records, p.diags
}

type variableParser struct {
	variables   map[string]Variable
	collections map[string]*transform.Collection
	resolved    map[string]map[string]token.Value
	originals   map[string]map[string]any
	diags       transform.Diagnostics
}

// order lists variable ids deterministically.
func (p *variableParser) order(resp *VariablesResponse) []string {
	seen := make(map[string]bool, len(p.variables))
	var ids []string
	for _, cid := range slices.Sorted(maps.Keys(resp.Meta.VariableCollections)) {
		for _, id := range resp.Meta.VariableCollections[cid].VariableIDs {
			if _, ok := p.variables[id]; ok && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(p.variables)) {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// resolve normalizes every mode value of one variable. Alias targets are
// resolved before their dependents, so their values are already available.
// When cyclic is set, alias values are dropped.
func (p *variableParser) resolve(id string, cyclic bool) {
	v, ok := p.variables[id]
	if !ok {
		return
	}
	collection := p.collections[v.VariableCollectionID]
	values := make(map[string]token.Value, len(v.ValuesByMode))
	originals := make(map[string]any, len(v.ValuesByMode))
	p.resolved[id] = values
	p.originals[id] = originals

	for _, modeID := range slices.Sorted(maps.Keys(v.ValuesByMode)) {
		raw := v.ValuesByMode[modeID]
		mode := modeID
		if collection != nil {
			if name := collection.ModeName(modeID); name != "" {
				mode = name
			} else {
				p.diags.Warnf(token.SourceFigma, v.Name, "value for unknown mode %q", modeID)
				continue
			}
		}
		originals[mode] = raw

		if target, isAlias := alias(raw); isAlias {
			if cyclic {
				p.diags.Warnf(token.SourceFigma, v.Name, "circular alias in mode %q", mode)
				continue
			}
			value, ok := p.aliasValue(target, mode)
			if !ok {
				p.diags.Warnf(token.SourceFigma, v.Name, "unresolved alias %q in mode %q", target, mode)
				continue
			}
			values[mode] = value
			continue
		}

		value, ok := normalize(v.ResolvedType, raw)
		if !ok {
			p.diags.Warnf(token.SourceFigma, v.Name, "malformed %s value in mode %q", v.ResolvedType, mode)
			continue
		}
		values[mode] = value
	}
}

// aliasValue returns the target's value for mode, or its default value.
func (p *variableParser) aliasValue(targetID, mode string) (token.Value, bool) {
	values, ok := p.resolved[targetID]
	if !ok || len(values) == 0 {
		return nil, false
	}
	if v, ok := values[mode]; ok {
		return v, true
	}
	target := p.variables[targetID]
	c := p.collections[target.VariableCollectionID]
	if c == nil {
		return nil, false
	}
	if v, ok := values[c.ModeName(c.DefaultModeID)]; ok {
		return v, true
	}
	for _, m := range c.Modes {
		if v, ok := values[m.Name]; ok {
			return v, true
		}
	}
	return nil, false
}

// normalize converts a raw API value according to the variable's resolved type.
func normalize(resolvedType string, raw any) (token.Value, bool) {
	switch resolvedType {
	case "COLOR":
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, false
		}
		rgba, ok := token.FromFractional(m)
		if !ok {
			return nil, false
		}
		return token.Color{RGBA: &rgba}, true
	case "FLOAT":
		f, ok := raw.(float64)
		return token.Number(f), ok
	case "BOOLEAN":
		b, ok := raw.(bool)
		return token.Boolean(b), ok
	default:
		s, ok := raw.(string)
		return token.String(s), ok
	}
}
