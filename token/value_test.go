/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"slices"
	"testing"

	"bennypowers.dev/tokman/token"
)

func TestValue_CSS(t *testing.T) {
	red := token.RGBA{R: 255, A: 1}
	tests := []struct {
		name  string
		value token.Value
		want  string
	}{
		{"rgba color", token.Color{RGBA: &red}, "#ff0000"},
		{"text color", token.Color{Text: "rgb(0 0 0)"}, "rgb(0 0 0)"},
		{"dimension", token.Dimension{Magnitude: 16, Unit: "px"}, "16px"},
		{"dimension literal", token.Dimension{Magnitude: 1.5, Unit: "rem", Literal: "1.50rem"}, "1.50rem"},
		{"number", token.Number(1.25), "1.25"},
		{"boolean", token.Boolean(true), "true"},
		{"font family", token.FontFamily("Open Sans"), `"Open Sans"`},
		{"font stack", token.FontFamily("Inter, sans-serif"), "Inter, sans-serif"},
		{"font weight", token.FontWeight(700), "700"},
		{
			"inner shadow",
			token.Shadow{Kind: token.ShadowInner, Color: token.RGBA{A: 0.25}, OffsetY: 2, Blur: 4},
			"inset 0px 2px 4px 0px rgba(0, 0, 0, 0.25)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := token.RGBA{R: 1, G: 2, B: 3, A: 1}
	b := token.RGBA{R: 1, G: 2, B: 3, A: 1}

	if !token.Equal(token.Color{RGBA: &a}, token.Color{RGBA: &b}) {
		t.Error("expected equal colors behind distinct pointers")
	}
	if token.Equal(token.Color{RGBA: &a}, token.Color{Text: "#010203"}) {
		t.Error("rgba and text colors must differ")
	}
	if token.Equal(token.Number(1), token.FontWeight(1)) {
		t.Error("different variants must differ")
	}
	if !token.Equal(nil, nil) {
		t.Error("nil values are equal")
	}
	if token.Equal(token.String("x"), nil) {
		t.Error("nil and non-nil must differ")
	}
}

func TestToken_Modes(t *testing.T) {
	tok := &token.Token{
		Name:        "color-bg",
		DefaultMode: "Light",
		ValuesByMode: map[string]token.Value{
			"Light":    token.String("a"),
			"Dark":     token.String("b"),
			"Contrast": token.String("c"),
		},
	}
	want := []string{"Light", "Contrast", "Dark"}
	if got := tok.Modes(); !slices.Equal(got, want) {
		t.Errorf("Modes() = %v, want %v", got, want)
	}
}

func TestToken_CSSVariableName(t *testing.T) {
	tok := &token.Token{Name: "color-primary", Path: []string{"color", "primary"}}
	if got := tok.CSSVariableName(""); got != "--color-primary" {
		t.Errorf("got %q", got)
	}
	if got := tok.CSSVariableName("ds"); got != "--ds-color-primary" {
		t.Errorf("got %q", got)
	}
}
