/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is a token category.
type Type string

// Token type constants.
const (
	TypeColor      Type = "color"
	TypeDimension  Type = "dimension"
	TypeNumber     Type = "number"
	TypeString     Type = "string"
	TypeBoolean    Type = "boolean"
	TypeFontFamily Type = "fontFamily"
	TypeFontWeight Type = "fontWeight"
	TypeShadow     Type = "shadow"

	// TypeTypography is only carried by placeholders for unresolved text styles.
	TypeTypography Type = "typography"
)

// Value is a token value. Each category has exactly one implementation.
type Value interface {
	// Type returns the category this value belongs to.
	Type() Type
	// CSS renders the value as stylesheet text.
	CSS() string
	// Raw returns a JSON-friendly representation.
	Raw() any

	isValue()
}

// Color is a color value. Remote colors carry RGBA; stylesheet colors carry Text verbatim.
type Color struct {
	RGBA *RGBA
	Text string
}

// Dimension is a magnitude with a unit.
// Literal holds the source text when the value arrived as a unit-suffixed string.
type Dimension struct {
	Magnitude float64
	Unit      string
	Literal   string
}

// Number is a unitless numeric value.
type Number float64

// String is a free-form string value.
type String string

// Boolean is a boolean value.
type Boolean bool

// FontFamily is a font family name.
type FontFamily string

// FontWeight is a numeric font weight.
type FontWeight float64

// Shadow is a drop or inner shadow.
type Shadow struct {
	// Kind is "drop-shadow" or "inner-shadow".
	Kind    string
	Color   RGBA
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64
}

func (Color) isValue()      {}
func (Dimension) isValue()  {}
func (Number) isValue()     {}
func (String) isValue()     {}
func (Boolean) isValue()    {}
func (FontFamily) isValue() {}
func (FontWeight) isValue() {}
func (Shadow) isValue()     {}

func (Color) Type() Type      { return TypeColor }
func (Dimension) Type() Type  { return TypeDimension }
func (Number) Type() Type     { return TypeNumber }
func (String) Type() Type     { return TypeString }
func (Boolean) Type() Type    { return TypeBoolean }
func (FontFamily) Type() Type { return TypeFontFamily }
func (FontWeight) Type() Type { return TypeFontWeight }
func (Shadow) Type() Type     { return TypeShadow }

// CSS renders the color. RGBA colors become hex or rgba(); text colors are unchanged.
func (c Color) CSS() string {
	if c.RGBA != nil {
		return c.RGBA.CSS()
	}
	return c.Text
}

// Raw returns {r,g,b,a} for RGBA colors and the literal for text colors.
func (c Color) Raw() any {
	if c.RGBA != nil {
		return c.RGBA.Map()
	}
	return c.Text
}

// CSS renders the dimension, preferring the source literal.
func (d Dimension) CSS() string {
	if d.Literal != "" {
		return d.Literal
	}
	return FormatNumber(d.Magnitude) + d.Unit
}

// Raw returns the unit-suffixed string form.
func (d Dimension) Raw() any {
	return d.CSS()
}

func (n Number) CSS() string { return FormatNumber(float64(n)) }
func (n Number) Raw() any    { return float64(n) }

func (s String) CSS() string { return string(s) }
func (s String) Raw() any    { return string(s) }

func (b Boolean) CSS() string { return strconv.FormatBool(bool(b)) }
func (b Boolean) Raw() any    { return bool(b) }

// CSS quotes family names that contain whitespace.
func (f FontFamily) CSS() string {
	s := string(f)
	if strings.ContainsAny(s, " \t") && !strings.ContainsAny(s, `"',`) {
		return strconv.Quote(s)
	}
	return s
}
func (f FontFamily) Raw() any { return string(f) }

func (w FontWeight) CSS() string { return FormatNumber(float64(w)) }
func (w FontWeight) Raw() any    { return float64(w) }

// CSS renders a box-shadow value.
func (s Shadow) CSS() string {
	var sb strings.Builder
	if s.Kind == ShadowInner {
		sb.WriteString("inset ")
	}
	fmt.Fprintf(&sb, "%spx %spx %spx %spx %s",
		FormatNumber(s.OffsetX),
		FormatNumber(s.OffsetY),
		FormatNumber(s.Blur),
		FormatNumber(s.Spread),
		s.Color.CSS())
	return sb.String()
}

// Raw returns the structured shadow record.
func (s Shadow) Raw() any {
	return map[string]any{
		"type":    s.Kind,
		"color":   s.Color.Map(),
		"offsetX": s.OffsetX,
		"offsetY": s.OffsetY,
		"blur":    s.Blur,
		"spread":  s.Spread,
	}
}

// Shadow kinds.
const (
	ShadowDrop  = "drop-shadow"
	ShadowInner = "inner-shadow"
)

// FormatNumber renders a float without trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal reports whether two values are the same variant with the same content.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Color:
		bv, ok := b.(Color)
		if !ok {
			return false
		}
		if av.RGBA == nil || bv.RGBA == nil {
			return av.RGBA == nil && bv.RGBA == nil && av.Text == bv.Text
		}
		return *av.RGBA == *bv.RGBA
	default:
		return a == b
	}
}
