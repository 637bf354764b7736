/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/tokman/token"
)

// Style categories.
const (
	StyleFill   = "FILL"
	StyleText   = "TEXT"
	StyleEffect = "EFFECT"
)

// StyleRecord is one published style. It references a node that holds the actual values.
type StyleRecord struct {
	Key         string `json:"key"`
	NodeID      string `json:"node_id"`
	Name        string `json:"name"`
	StyleType   string `json:"style_type"`
	Description string `json:"description"`
}

// ID returns the style key, falling back to the node id.
func (s StyleRecord) ID() string {
	if s.Key != "" {
		return s.Key
	}
	return s.NodeID
}

// Node is the subset of a document node that styles resolve against.
type Node struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Fills   []Paint    `json:"fills,omitempty"`
	Style   *TypeStyle `json:"style,omitempty"`
	Effects []Effect   `json:"effects,omitempty"`
}

// Paint is a node fill.
type Paint struct {
	Type    string         `json:"type"`
	Visible *bool          `json:"visible,omitempty"`
	Color   map[string]any `json:"color,omitempty"`
}

// TypeStyle holds a text node's typography.
type TypeStyle struct {
	FontFamily                string         `json:"fontFamily,omitempty"`
	FontWeight                *float64       `json:"fontWeight,omitempty"`
	FontSize                  *float64       `json:"fontSize,omitempty"`
	LetterSpacing             *LetterSpacing `json:"letterSpacing,omitempty"`
	LineHeightPx              *float64       `json:"lineHeightPx,omitempty"`
	LineHeightPercent         *float64       `json:"lineHeightPercent,omitempty"`
	LineHeightPercentFontSize *float64       `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            string         `json:"lineHeightUnit,omitempty"`
	TextAlignHorizontal       string         `json:"textAlignHorizontal,omitempty"`
	TextCase                  string         `json:"textCase,omitempty"`
	TextDecoration            string         `json:"textDecoration,omitempty"`
}

// LetterSpacing is either a bare pixel number or a {value, unit} record.
type LetterSpacing struct {
	Value float64
	// Unit is "PIXELS" or "PERCENT".
	Unit string
}

// UnmarshalJSON accepts both letter spacing encodings.
func (ls *LetterSpacing) UnmarshalJSON(data []byte) error {
	var px float64
	if err := json.Unmarshal(data, &px); err == nil {
		*ls = LetterSpacing{Value: px, Unit: "PIXELS"}
		return nil
	}
	var rec struct {
		Value *float64 `json:"value"`
		Unit  string   `json:"unit"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("letterSpacing: %w", err)
	}
	if rec.Value == nil {
		return fmt.Errorf("letterSpacing: missing value")
	}
	*ls = LetterSpacing{Value: *rec.Value, Unit: rec.Unit}
	return nil
}

// MarshalJSON writes the {value, unit} form.
func (ls LetterSpacing) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"value": ls.Value, "unit": ls.Unit})
}

// Effect is a node effect.
type Effect struct {
	Type    string         `json:"type"`
	Visible *bool          `json:"visible,omitempty"`
	Color   map[string]any `json:"color,omitempty"`
	Offset  *Vector        `json:"offset,omitempty"`
	Radius  float64        `json:"radius"`
	Spread  float64        `json:"spread,omitempty"`
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func visible(v *bool) bool {
	return v == nil || *v
}

// Styles transforms style records into tokens, resolving values from nodes keyed by node id.
// Styles whose node is missing or carries no usable value become placeholders.
func Styles(records []StyleRecord, nodes map[string]*Node, opts Options) ([]*token.Token, Diagnostics) {
	st := &styleTransformer{sep: opts.separator()}
	for _, rec := range records {
		name, path := token.NameFromSlashPath(rec.Name, st.sep)
		if name == "" {
			st.diags.Warnf(token.SourceFigmaStyle, rec.ID(), "empty style name")
			continue
		}
		base := styleBase{rec: rec, name: name, path: path}
		node := nodes[rec.NodeID]
		switch rec.StyleType {
		case StyleFill:
			st.fill(base, node)
		case StyleText:
			st.text(base, node)
		case StyleEffect:
			st.effect(base, node)
		default:
			st.diags.Warnf(token.SourceFigmaStyle, rec.Name, "unsupported style type %q", rec.StyleType)
		}
	}
	return st.tokens, st.diags
}

type styleTransformer struct {
	sep    string
	tokens []*token.Token
	diags  Diagnostics
}

type styleBase struct {
	rec  StyleRecord
	name string
	path []string
}

// child derives a sub-token name and path by appending segments.
func (b styleBase) child(sep string, segments ...string) (string, []string) {
	path := append(slices.Clone(b.path), segments...)
	return strings.Join(path, sep), path
}

func (b styleBase) description(fallback string) string {
	if b.rec.Description != "" {
		return b.rec.Description
	}
	return fallback
}

func (st *styleTransformer) emit(b styleBase, name string, path []string, typ token.Type, value token.Value, description string, original any, effectIndex int) {
	st.tokens = append(st.tokens, &token.Token{
		Name:        name,
		Path:        path,
		Value:       value,
		Type:        typ,
		Description: description,
		Metadata: token.Metadata{
			Source:        token.SourceFigmaStyle,
			OriginalName:  b.rec.Name,
			OriginalValue: original,
			Style: &token.StyleMeta{
				Key:         b.rec.Key,
				NodeID:      b.rec.NodeID,
				StyleType:   b.rec.StyleType,
				EffectIndex: effectIndex,
			},
		},
	})
}

func (st *styleTransformer) placeholder(b styleBase, typ token.Type, reason string) {
	st.diags.Infof(token.SourceFigmaStyle, b.rec.Name, "needs node data: %s", reason)
	st.tokens = append(st.tokens, &token.Token{
		Name:          b.name,
		Path:          b.path,
		Type:          typ,
		Description:   b.rec.Description,
		NeedsNodeData: true,
		Metadata: token.Metadata{
			Source:       token.SourceFigmaStyle,
			OriginalName: b.rec.Name,
			Style: &token.StyleMeta{
				Key:         b.rec.Key,
				NodeID:      b.rec.NodeID,
				StyleType:   b.rec.StyleType,
				EffectIndex: -1,
			},
		},
	})
}

func (st *styleTransformer) fill(b styleBase, node *Node) {
	if node == nil {
		st.placeholder(b, token.TypeColor, "node "+b.rec.NodeID+" not available")
		return
	}
	for _, paint := range node.Fills {
		if paint.Type != "SOLID" || !visible(paint.Visible) || paint.Color == nil {
			continue
		}
		rgba, ok := token.FromFractional(paint.Color)
		if !ok {
			st.diags.Warnf(token.SourceFigmaStyle, b.rec.Name, "malformed fill color")
			break
		}
		st.emit(b, b.name, b.path, token.TypeColor, token.Color{RGBA: &rgba}, b.rec.Description, paint.Color, -1)
		return
	}
	st.placeholder(b, token.TypeColor, "no visible solid fill")
}

func (st *styleTransformer) text(b styleBase, node *Node) {
	if node == nil || node.Style == nil {
		st.placeholder(b, token.TypeTypography, "no text style data")
		return
	}
	ts := node.Style
	attr := func(attribute, label string, typ token.Type, value token.Value) {
		name, path := b.child(st.sep, attribute)
		st.emit(b, name, path, typ, value, b.description(b.rec.Name+" "+label), ts, -1)
	}

	if ts.FontFamily != "" {
		attr("font-family", "Font Family", token.TypeFontFamily, token.FontFamily(ts.FontFamily))
	}
	if ts.FontWeight != nil {
		attr("font-weight", "Font Weight", token.TypeFontWeight, token.FontWeight(*ts.FontWeight))
	}
	if ts.FontSize != nil {
		attr("font-size", "Font Size", token.TypeDimension, px(*ts.FontSize))
	}
	if ls := ts.LetterSpacing; ls != nil {
		unit := "px"
		if ls.Unit == "PERCENT" {
			unit = "%"
		}
		attr("letter-spacing", "Letter Spacing", token.TypeDimension, token.Dimension{Magnitude: ls.Value, Unit: unit})
	}
	if lh, ok := lineHeight(ts); ok {
		attr("line-height", "Line Height", token.TypeDimension, lh)
	}
	if ts.TextAlignHorizontal != "" {
		attr("text-align", "Text Align", token.TypeString, token.String(strings.ToLower(ts.TextAlignHorizontal)))
	}
	if ts.TextCase != "" {
		attr("text-case", "Text Case", token.TypeString, token.String(enumValue(ts.TextCase)))
	}
	if ts.TextDecoration != "" {
		attr("text-decoration", "Text Decoration", token.TypeString, token.String(enumValue(ts.TextDecoration)))
	}
}

// lineHeight prefers a percent value when the node's unit is relative and
// one is present, and falls back to the pixel value.
func lineHeight(ts *TypeStyle) (token.Dimension, bool) {
	switch ts.LineHeightUnit {
	case "FONT_SIZE_%":
		if ts.LineHeightPercentFontSize != nil {
			return token.Dimension{Magnitude: *ts.LineHeightPercentFontSize, Unit: "%"}, true
		}
	case "INTRINSIC_%", "PERCENT":
		if ts.LineHeightPercent != nil {
			return token.Dimension{Magnitude: *ts.LineHeightPercent, Unit: "%"}, true
		}
	}
	if ts.LineHeightPx != nil {
		return px(*ts.LineHeightPx), true
	}
	return token.Dimension{}, false
}

func (st *styleTransformer) effect(b styleBase, node *Node) {
	if node == nil || len(node.Effects) == 0 {
		st.placeholder(b, token.TypeShadow, "no effect data")
		return
	}
	produced := 0
	for i, e := range node.Effects {
		if !visible(e.Visible) {
			continue
		}
		index := strconv.Itoa(i)
		switch e.Type {
		case "DROP_SHADOW", "INNER_SHADOW":
			if e.Color == nil {
				continue
			}
			rgba, ok := token.FromFractional(e.Color)
			if !ok {
				st.diags.Warnf(token.SourceFigmaStyle, b.rec.Name, "malformed color in effect %d", i)
				continue
			}
			kind := token.ShadowDrop
			if e.Type == "INNER_SHADOW" {
				kind = token.ShadowInner
			}
			shadow := token.Shadow{Kind: kind, Color: rgba, Blur: e.Radius, Spread: e.Spread}
			if e.Offset != nil {
				shadow.OffsetX, shadow.OffsetY = e.Offset.X, e.Offset.Y
			}
			name, path := b.child(st.sep, index, kind)
			st.emit(b, name, path, token.TypeShadow, shadow,
				b.description(fmt.Sprintf("%s %s %d", b.rec.Name, e.Type, i)), e, i)
			produced++
		case "LAYER_BLUR", "BACKGROUND_BLUR":
			suffix, label := "layer-blur", "Layer Blur"
			if e.Type == "BACKGROUND_BLUR" {
				suffix, label = "background-blur", "Background Blur"
			}
			name, path := b.child(st.sep, index, suffix)
			st.emit(b, name, path, token.TypeDimension, px(e.Radius),
				b.description(fmt.Sprintf("%s %s %d", b.rec.Name, label, i)), e, i)
			produced++
		default:
			st.diags.Warnf(token.SourceFigmaStyle, b.rec.Name, "unsupported effect type %q", e.Type)
		}
	}
	if produced == 0 {
		st.placeholder(b, token.TypeShadow, "no visible supported effects")
	}
}

func px(v float64) token.Dimension {
	return token.Dimension{Magnitude: v, Unit: "px"}
}

// enumValue turns an enum such as "SMALL_CAPS" into "small-caps".
func enumValue(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
