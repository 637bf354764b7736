/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"bennypowers.dev/tokman/schema"
	"bennypowers.dev/tokman/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// DefaultSelector is the CSS rule that holds default values.
const DefaultSelector = ":root"

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Delimiter is the separator for flattened keys.
	// When empty, token names are used as-is.
	Delimiter string

	// Schema is the DTCG schema version for dtcg output.
	Schema schema.Version

	// Selector wraps default values in css output. Defaults to ":root".
	Selector string

	// ModeSelector is a css selector template for per-mode blocks,
	// e.g. `[data-mode="%s"]`. "%s" is replaced by the kebab-cased mode name.
	// When empty, only default values are written.
	ModeSelector string

	// MapName, when set, adds a scss map of all variables under this name.
	MapName string

	// Header is written as a comment at the top of css and scss output.
	Header string
}

// ResolvedValue returns the token's default value in plain JSON form:
// colors, dimensions and shadows as css text, everything else as its raw value.
func ResolvedValue(tok *token.Token) any {
	if tok == nil || tok.Value == nil {
		return nil
	}
	return PlainValue(tok.Value)
}

// PlainValue returns v in plain JSON form.
func PlainValue(v token.Value) any {
	switch v.(type) {
	case token.Color, token.Dimension, token.Shadow:
		return v.CSS()
	default:
		return v.Raw()
	}
}

// Printable returns the tokens that carry a value, dropping placeholders.
func Printable(tokens []*token.Token) []*token.Token {
	out := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok != nil && tok.Value != nil {
			out = append(out, tok)
		}
	}
	return out
}

// SortTokens returns a copy of tokens sorted by name.
func SortTokens(tokens []*token.Token) []*token.Token {
	sorted := slices.Clone(tokens)
	slices.SortStableFunc(sorted, func(a, b *token.Token) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return sorted
}

// GroupByType groups tokens by their type.
func GroupByType(tokens []*token.Token) map[token.Type][]*token.Token {
	groups := make(map[token.Type][]*token.Token)
	for _, tok := range tokens {
		groups[tok.Type] = append(groups[tok.Type], tok)
	}
	return groups
}

// Modes returns every non-default mode used by tokens, in first-seen order.
func Modes(tokens []*token.Token) []string {
	var modes []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		for _, mode := range tok.Modes() {
			if mode == tok.DefaultMode || seen[mode] {
				continue
			}
			seen[mode] = true
			modes = append(modes, mode)
		}
	}
	return modes
}

// Name returns the output name of a token: its path joined by delimiter,
// or its name when delimiter is empty, with prefix applied.
func Name(tok *token.Token, opts Options) string {
	name := tok.Name
	if opts.Delimiter != "" {
		name = strings.Join(tok.Path, opts.Delimiter)
	}
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}
	return ApplyPrefix(name, opts.Prefix, delimiter)
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// SplitIntoWords splits a string on hyphens, underscores, dots, and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	prev := rune(0)
	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(prev):
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// EscapeComment makes s safe to place inside a /* */ comment.
func EscapeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

// CommentStyle describes how a formatter writes comments.
type CommentStyle struct {
	// LinePrefix marks each line of a line-comment style, e.g. "// ".
	LinePrefix string
	// Open and Close delimit a block comment.
	Open, Close string
}

var (
	// CStyleComments are /* */ block comments.
	CStyleComments = CommentStyle{Open: "/*", Close: "*/"}
	// SCSSComments are // line comments.
	SCSSComments = CommentStyle{LinePrefix: "// "}
)

// FormatHeader renders header as a comment followed by a blank line.
// It returns "" for an empty header.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if strings.TrimSpace(header) == "" {
		return ""
	}
	lines := strings.Split(header, "\n")

	var sb strings.Builder
	switch {
	case style.LinePrefix != "":
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(style.LinePrefix+line, " ") + "\n")
		}
	case len(lines) == 1:
		sb.WriteString(style.Open + " " + EscapeComment(lines[0]) + " " + style.Close + "\n")
	default:
		sb.WriteString(style.Open + "\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(" * "+EscapeComment(line), " ") + "\n")
		}
		sb.WriteString(" " + style.Close + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
