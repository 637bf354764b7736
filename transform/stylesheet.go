/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"

	"bennypowers.dev/tokman/token"
)

// Property is one custom property declaration extracted from a stylesheet.
type Property struct {
	// Name includes the leading "--".
	Name  string `json:"name"`
	Value string `json:"value"`
	File  string `json:"file"`
	// Line is 1-based, or 0 when unknown.
	Line int `json:"line,omitempty"`
}

// Stylesheet transforms custom properties into tokens.
// Names are always joined with token.DefaultSeparator.
func Stylesheet(props []Property) ([]*token.Token, Diagnostics) {
	var (
		tokens []*token.Token
		diags  Diagnostics
	)
	for _, p := range props {
		name, path := token.NameFromCustomProperty(p.Name)
		if name == "" || len(path) == 0 {
			diags.Warnf(token.SourceStylesheet, p.Name, "empty custom property name in %s", p.File)
			continue
		}
		raw := strings.TrimSpace(p.Value)
		if raw == "" {
			diags.Warnf(token.SourceStylesheet, p.Name, "empty value in %s", p.File)
			continue
		}
		typ := token.InferType(raw)
		value, ok := token.ParseStylesheetValue(raw, typ)
		if !ok {
			diags.Warnf(token.SourceStylesheet, p.Name, "unparseable %s value %q", typ, raw)
			continue
		}
		tokens = append(tokens, &token.Token{
			Name:  name,
			Path:  path,
			Value: value,
			Type:  typ,
			Metadata: token.Metadata{
				Source:        token.SourceStylesheet,
				OriginalName:  p.Name,
				OriginalValue: p.Value,
				Stylesheet:    &token.StylesheetMeta{File: p.File, Line: p.Line},
			},
		})
	}
	return tokens, diags
}
