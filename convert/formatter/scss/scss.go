/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss provides SCSS variable formatting for design tokens.
package scss

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/token"
)

// Formatter outputs SCSS variables with kebab-case names.
type Formatter struct{}

// New creates a new SCSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format writes one variable per token with its default value, then an
// optional map named opts.MapName referencing every variable.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	sorted := formatter.SortTokens(formatter.Printable(tokens))

	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.SCSSComments))

	for _, tok := range sorted {
		if tok.Description != "" {
			fmt.Fprintf(&sb, "// %s\n", strings.ReplaceAll(tok.Description, "\n", " "))
		}
		fmt.Fprintf(&sb, "$%s: %s;\n", formatter.Name(tok, opts), tok.Value.CSS())
	}

	if opts.MapName != "" && len(sorted) > 0 {
		fmt.Fprintf(&sb, "\n$%s: (\n", opts.MapName)
		for i, tok := range sorted {
			name := formatter.Name(tok, opts)
			sep := ","
			if i == len(sorted)-1 {
				sep = ""
			}
			fmt.Fprintf(&sb, "  \"%s\": $%s%s\n", name, name, sep)
		}
		sb.WriteString(");\n")
	}

	return []byte(sb.String()), nil
}
