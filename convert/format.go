/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/convert/formatter/css"
	"bennypowers.dev/tokman/convert/formatter/dtcg"
	"bennypowers.dev/tokman/convert/formatter/flatjson"
	"bennypowers.dev/tokman/convert/formatter/scss"
	"bennypowers.dev/tokman/token"
)

// Format represents an output format for token serialization.
type Format string

const (
	// FormatDTCG outputs DTCG-compliant JSON (default).
	FormatDTCG Format = "dtcg"

	// FormatFlatJSON outputs flat key-value JSON.
	FormatFlatJSON Format = "json"

	// FormatCSS outputs CSS custom properties.
	FormatCSS Format = "css"

	// FormatSCSS outputs SCSS variables with kebab-case names.
	FormatSCSS Format = "scss"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatDTCG),
		string(FormatFlatJSON),
		string(FormatCSS),
		string(FormatSCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dtcg", "":
		return FormatDTCG, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	case "css":
		return FormatCSS, nil
	case "scss", "sass":
		return FormatSCSS, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// NewFormatter returns the formatter for format.
func NewFormatter(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatDTCG:
		return dtcg.New(), nil
	case FormatFlatJSON:
		return flatjson.New(), nil
	case FormatCSS:
		return css.New(), nil
	case FormatSCSS:
		return scss.New(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatTokens converts tokens to the specified output format.
func FormatTokens(tokens []*token.Token, format Format, opts formatter.Options) ([]byte, error) {
	f, err := NewFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(tokens, opts)
}
