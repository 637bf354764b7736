/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver deduplicates tokens by name and orders references between them.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokman/token"
)

// Strategy selects how name collisions are settled.
type Strategy string

const (
	// StrategyPrecedence keeps the token whose source ranks higher.
	StrategyPrecedence Strategy = "precedence"
	// StrategySourceOrder keeps the token seen last.
	StrategySourceOrder Strategy = "sourceOrderWins"
	// StrategyStrict fails on the first collision.
	StrategyStrict Strategy = "throwOnConflict"
)

// Policy is a conflict resolution policy.
type Policy struct {
	Strategy Strategy
	// Tiers ranks source kinds for StrategyPrecedence, highest first.
	// Kinds in the same tier are equal. Unlisted kinds share the lowest rank.
	Tiers [][]token.Source
}

// Named policies.
var (
	// FirstSourceWins prefers the remote design tool over stylesheets.
	FirstSourceWins = Policy{
		Strategy: StrategyPrecedence,
		Tiers:    [][]token.Source{{token.SourceFigma, token.SourceFigmaStyle}},
	}
	// SecondSourceWins prefers stylesheets over the remote design tool.
	SecondSourceWins = Policy{
		Strategy: StrategyPrecedence,
		Tiers:    [][]token.Source{{token.SourceStylesheet}},
	}
	SourceOrderWins = Policy{Strategy: StrategySourceOrder}
	ThrowOnConflict = Policy{Strategy: StrategyStrict}
)

// ParsePolicy returns the policy for a configured selector.
// A non-empty precedence list overrides the asymmetric selectors with a custom ranking.
func ParsePolicy(selector string, precedence []string) (Policy, error) {
	var p Policy
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "", "firstsourcewins", "figmawins":
		p = FirstSourceWins
	case "secondsourcewins", "csswins", "stylesheetwins":
		p = SecondSourceWins
	case "sourceorderwins":
		return SourceOrderWins, nil
	case "throwonconflict", "throwerror":
		return ThrowOnConflict, nil
	case "precedence":
		if len(precedence) == 0 {
			return Policy{}, fmt.Errorf("%w: precedence strategy without a precedence list", ErrInvalidPolicy)
		}
	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, selector)
	}
	if len(precedence) == 0 {
		return p, nil
	}
	return PrecedencePolicy(precedence...)
}

// PrecedencePolicy builds a policy ranking the named source kinds, highest first.
func PrecedencePolicy(kinds ...string) (Policy, error) {
	p := Policy{Strategy: StrategyPrecedence}
	seen := make(map[token.Source]bool)
	for _, kind := range kinds {
		source, ok := token.ParseSource(kind)
		if !ok {
			return Policy{}, fmt.Errorf("%w: unknown source kind %q", ErrInvalidPolicy, kind)
		}
		if seen[source] {
			return Policy{}, fmt.Errorf("%w: source kind %q listed twice", ErrInvalidPolicy, kind)
		}
		seen[source] = true
		p.Tiers = append(p.Tiers, []token.Source{source})
	}
	return p, nil
}

// Validate reports whether the policy can be applied.
func (p Policy) Validate() error {
	switch p.Strategy {
	case StrategySourceOrder, StrategyStrict:
		return nil
	case StrategyPrecedence:
		if len(p.Tiers) == 0 {
			return fmt.Errorf("%w: empty precedence", ErrInvalidPolicy)
		}
		return nil
	default:
		return fmt.Errorf("%w: strategy %q", ErrInvalidPolicy, p.Strategy)
	}
}

// rank returns the tier index of a source kind; lower wins.
func (p Policy) rank(source token.Source) int {
	for i, tier := range p.Tiers {
		if slices.Contains(tier, source) {
			return i
		}
	}
	return len(p.Tiers)
}

func (p Policy) String() string {
	if p.Strategy != StrategyPrecedence {
		return string(p.Strategy)
	}
	tiers := make([]string, len(p.Tiers))
	for i, tier := range p.Tiers {
		kinds := make([]string, len(tier))
		for j, s := range tier {
			kinds[j] = string(s)
		}
		tiers[i] = strings.Join(kinds, "|")
	}
	return "precedence(" + strings.Join(tiers, " > ") + ")"
}

// Conflict records one settled collision.
type Conflict struct {
	Name    string
	Kept    *token.Token
	Dropped *token.Token
}

// Resolve deduplicates tokens by name.
//
// The output holds one token per name in order of first appearance. Under a
// precedence policy an incoming token replaces the existing one when its
// source ranks at least as high, so ties go to the later token. A token
// with a value always beats a placeholder, whatever the policy ranks say.
// Tokens are never modified, only selected.
func Resolve(tokens []*token.Token, policy Policy) ([]*token.Token, []Conflict, error) {
	if err := policy.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		order     []string
		byName    = make(map[string]*token.Token, len(tokens))
		conflicts []Conflict
	)
	for _, incoming := range tokens {
		existing, ok := byName[incoming.Name]
		if !ok {
			byName[incoming.Name] = incoming
			order = append(order, incoming.Name)
			continue
		}

		var replace bool
		switch policy.Strategy {
		case StrategyStrict:
			return nil, nil, &ConflictError{
				Name:     incoming.Name,
				Existing: existing.Metadata.Source,
				Incoming: incoming.Metadata.Source,
			}
		case StrategySourceOrder:
			replace = true
		case StrategyPrecedence:
			replace = policy.rank(incoming.Metadata.Source) <= policy.rank(existing.Metadata.Source)
		}
		switch {
		case hasValue(existing) && !hasValue(incoming):
			replace = false
		case !hasValue(existing) && hasValue(incoming):
			replace = true
		}

		if replace {
			byName[incoming.Name] = incoming
			conflicts = append(conflicts, Conflict{Name: incoming.Name, Kept: incoming, Dropped: existing})
		} else {
			conflicts = append(conflicts, Conflict{Name: incoming.Name, Kept: existing, Dropped: incoming})
		}
	}

	resolved := make([]*token.Token, len(order))
	for i, name := range order {
		resolved[i] = byName[name]
	}
	return resolved, conflicts, nil
}

// hasValue reports whether tok carries a usable value.
func hasValue(tok *token.Token) bool {
	return tok.Value != nil && !tok.NeedsNodeData
}
