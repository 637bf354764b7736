/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/token"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to flat key-value JSON.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	result := make(map[string]any)
	for _, tok := range formatter.Printable(tokens) {
		result[formatter.Name(tok, opts)] = formatter.ResolvedValue(tok)
	}

	return json.MarshalIndent(result, "", "  ")
}
