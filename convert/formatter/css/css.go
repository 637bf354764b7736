/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/token"
)

// Formatter outputs CSS custom properties.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format writes default values in a Selector block (":root" by default).
// With a ModeSelector, each non-default mode gets its own block holding the
// tokens that define a value for that mode.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	sorted := formatter.SortTokens(formatter.Printable(tokens))

	selector := opts.Selector
	if selector == "" {
		selector = formatter.DefaultSelector
	}

	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))

	fmt.Fprintf(&sb, "%s {\n", selector)
	for _, tok := range sorted {
		if tok.Description != "" {
			fmt.Fprintf(&sb, "  /* %s */\n", formatter.EscapeComment(tok.Description))
		}
		writeDeclaration(&sb, tok, tok.Value, opts)
	}
	sb.WriteString("}\n")

	if opts.ModeSelector == "" {
		return []byte(sb.String()), nil
	}

	for _, mode := range formatter.Modes(sorted) {
		var block strings.Builder
		for _, tok := range sorted {
			if mode == tok.DefaultMode {
				continue
			}
			if v, ok := tok.ValuesByMode[mode]; ok {
				writeDeclaration(&block, tok, v, opts)
			}
		}
		if block.Len() == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s {\n%s}\n", ModeSelector(opts.ModeSelector, mode), block.String())
	}

	return []byte(sb.String()), nil
}

// ModeSelector fills a selector template with the kebab-cased mode name.
func ModeSelector(template, mode string) string {
	return strings.ReplaceAll(template, "%s", formatter.ToKebabCase(mode))
}

func writeDeclaration(sb *strings.Builder, tok *token.Token, v token.Value, opts formatter.Options) {
	fmt.Fprintf(sb, "  --%s: %s;\n", formatter.Name(tok, opts), v.CSS())
}
