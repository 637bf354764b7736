/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dtcg provides DTCG-compliant JSON formatting for design tokens.
package dtcg

import (
	"encoding/json"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/schema"
	"bennypowers.dev/tokman/token"
)

// ExtensionKey namespaces tokman data under $extensions.
const ExtensionKey = "dev.bennypowers.tokman"

// Formatter outputs DTCG-compliant JSON.
type Formatter struct{}

// New creates a new DTCG formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to DTCG-compliant JSON, nested by path.
// Placeholders are omitted.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	version := opts.Schema
	if version == schema.Unknown {
		version = schema.Draft
	}
	return json.MarshalIndent(Serialize(tokens, version), "", "  ")
}

// Serialize builds the nested DTCG structure for tokens.
func Serialize(tokens []*token.Token, version schema.Version) map[string]any {
	result := make(map[string]any)

	if version == schema.V2025_10 {
		result["$schema"] = version.URL()
	}

	for _, tok := range formatter.Printable(tokens) {
		if len(tok.Path) == 0 {
			continue
		}
		current := result

		// Navigate/create nested structure up to parent
		for _, segment := range tok.Path[:len(tok.Path)-1] {
			next, ok := current[segment].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[segment] = next
			}
			current = next
		}

		leaf := tok.Path[len(tok.Path)-1]
		serialized := serializeToken(tok, version)
		if group, ok := current[leaf].(map[string]any); ok {
			// A group already lives at this path; keep its children.
			for k, v := range serialized {
				group[k] = v
			}
			continue
		}
		current[leaf] = serialized
	}

	return result
}

// serializeToken converts a single token to its DTCG map representation.
func serializeToken(tok *token.Token, version schema.Version) map[string]any {
	result := map[string]any{
		"$value": Value(tok.Value, version),
	}

	if tok.Type != "" {
		result["$type"] = string(tok.Type)
	}

	if tok.Description != "" {
		result["$description"] = tok.Description
	}

	ext := map[string]any{
		"source": string(tok.Metadata.Source),
	}
	if len(tok.ValuesByMode) > 1 {
		modes := make(map[string]any, len(tok.ValuesByMode))
		for mode, v := range tok.ValuesByMode {
			modes[mode] = Value(v, version)
		}
		ext["modes"] = modes
		ext["defaultMode"] = tok.DefaultMode
	}
	if v := tok.Metadata.Variable; v != nil && len(v.CodeSyntax) > 0 {
		ext["codeSyntax"] = v.CodeSyntax
	}
	result["$extensions"] = map[string]any{ExtensionKey: ext}

	return result
}

// Value converts a token value to its DTCG $value for the schema version.
func Value(v token.Value, version schema.Version) any {
	switch val := v.(type) {
	case nil:
		return nil
	case token.Color:
		if version.Structured() {
			return structuredColor(val)
		}
		return val.CSS()
	case token.Dimension:
		if version.Structured() {
			return map[string]any{"value": val.Magnitude, "unit": val.Unit}
		}
		return val.CSS()
	case token.Shadow:
		shadow := map[string]any{
			"color":   Value(token.Color{RGBA: &val.Color}, version),
			"offsetX": Value(px(val.OffsetX), version),
			"offsetY": Value(px(val.OffsetY), version),
			"blur":    Value(px(val.Blur), version),
			"spread":  Value(px(val.Spread), version),
		}
		if val.Kind == token.ShadowInner {
			shadow["inset"] = true
		}
		return shadow
	default:
		return v.Raw()
	}
}

func px(f float64) token.Dimension {
	return token.Dimension{Magnitude: f, Unit: "px"}
}

// structuredColor converts a color to the 2025.10 object form.
// Stylesheet color text that cannot be parsed is kept as a string.
func structuredColor(c token.Color) any {
	if c.RGBA != nil {
		return map[string]any{
			"colorSpace": "srgb",
			"components": []any{
				float64(c.RGBA.R) / 255,
				float64(c.RGBA.G) / 255,
				float64(c.RGBA.B) / 255,
			},
			"alpha": c.RGBA.A,
			"hex":   c.RGBA.Hex(),
		}
	}

	parsed, err := csscolorparser.Parse(c.Text)
	if err != nil {
		return c.Text
	}
	result := map[string]any{
		"colorSpace": "srgb",
		"components": []any{parsed.R, parsed.G, parsed.B},
		"alpha":      parsed.A,
	}
	if strings.HasPrefix(c.Text, "#") && len(c.Text) == 7 {
		result["hex"] = strings.ToLower(c.Text)
	} else {
		result["hex"] = parsed.HexString()[:7]
	}
	return result
}
