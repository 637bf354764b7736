/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks resolved token collections and generated DTCG documents.
package validator

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokman/token"
)

// ValidationError represents a broken invariant.
type ValidationError struct {
	// FilePath is the path to the file containing the error, if any.
	FilePath string
	// Path is the token name or JSON path of the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Options configures collection validation.
type Options struct {
	// Strict reports placeholders that still need node data.
	Strict bool
}

// Validate checks a resolved collection. Returns errors for:
//   - empty or duplicate names
//   - empty paths or path segments
//   - missing values outside placeholders, and placeholders in strict mode
//   - values whose kind disagrees with the token type
//   - per-mode values that do not contain the default value
//   - unknown source kinds
func Validate(tokens []*token.Token, opts Options) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]token.Source, len(tokens))

	for i, tok := range tokens {
		if tok == nil {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("#%d", i),
				Message: "nil token",
			})
			continue
		}
		add := func(message, suggestion string) {
			errors = append(errors, ValidationError{
				FilePath:   sourceFile(tok),
				Path:       tok.Name,
				Message:    message,
				Suggestion: suggestion,
			})
		}

		if tok.Name == "" {
			add(fmt.Sprintf("token #%d has an empty name", i), "")
		} else if prev, dup := seen[tok.Name]; dup {
			add(fmt.Sprintf("duplicate name (also from %s)", prev), "resolve conflicts before output")
		} else {
			seen[tok.Name] = tok.Metadata.Source
		}

		if len(tok.Path) == 0 {
			add("empty path", "")
		} else if slices.Contains(tok.Path, "") {
			add("path contains an empty segment", "")
		}

		if !slices.Contains(token.Sources(), tok.Metadata.Source) {
			add(fmt.Sprintf("unknown source kind %q", tok.Metadata.Source), "")
		}

		if tok.Value == nil {
			switch {
			case !tok.NeedsNodeData:
				add("token has no value", "drop records without a usable value upstream")
			case opts.Strict:
				add("placeholder needs node data", "fetch style nodes or disable strict mode")
			}
			continue
		}

		if kind := tok.Value.Type(); kind != tok.Type {
			add(fmt.Sprintf("value kind %s does not match type %s", kind, tok.Type), "")
		}

		if len(tok.ValuesByMode) > 0 {
			def, ok := tok.ValuesByMode[tok.DefaultMode]
			switch {
			case !ok:
				add(fmt.Sprintf("default mode %q has no value", tok.DefaultMode), "")
			case !token.Equal(def, tok.Value):
				add(fmt.Sprintf("value differs from default mode %q", tok.DefaultMode), "")
			}
		}
	}

	return errors
}

func sourceFile(tok *token.Token) string {
	if tok.Metadata.Stylesheet != nil {
		return tok.Metadata.Stylesheet.File
	}
	return ""
}
