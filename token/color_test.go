/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/tokman/token"
)

func TestFromFractional(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  token.RGBA
	}{
		{
			name:  "pure red",
			input: map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
			want:  token.RGBA{R: 255, G: 0, B: 0, A: 1},
		},
		{
			name:  "translucent blue-ish",
			input: map[string]any{"r": 0.2, "g": 0.4, "b": 0.6, "a": 0.8},
			want:  token.RGBA{R: 51, G: 102, B: 153, A: 0.8},
		},
		{
			name:  "half rounds away from zero",
			input: map[string]any{"r": 0.5, "g": 0.5, "b": 0.5, "a": 0.5},
			want:  token.RGBA{R: 128, G: 128, B: 128, A: 0.5},
		},
		{
			name:  "integer components",
			input: map[string]any{"r": 1, "g": 0, "b": 1, "a": 1},
			want:  token.RGBA{R: 255, G: 0, B: 255, A: 1},
		},
		{
			name:  "out of range clamps",
			input: map[string]any{"r": 1.5, "g": -0.2, "b": 0.0, "a": 1.0},
			want:  token.RGBA{R: 255, G: 0, B: 0, A: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := token.FromFractional(tt.input)
			if !ok {
				t.Fatalf("FromFractional(%v) failed", tt.input)
			}
			if got != tt.want {
				t.Errorf("FromFractional(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromFractional_Bounds(t *testing.T) {
	for i := 0; i <= 100; i++ {
		c := float64(i) / 100
		got, ok := token.FromFractional(map[string]any{"r": c, "g": 1 - c, "b": c / 2, "a": c})
		if !ok {
			t.Fatalf("component %v rejected", c)
		}
		for _, ch := range []int{got.R, got.G, got.B} {
			if ch < 0 || ch > 255 {
				t.Errorf("channel %d out of range for component %v", ch, c)
			}
		}
		if got.A != c {
			t.Errorf("alpha changed: got %v, want %v", got.A, c)
		}
	}
}

func TestFromFractional_MissingComponent(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{"missing r", map[string]any{"g": 0.0, "b": 0.0, "a": 1.0}},
		{"missing g", map[string]any{"r": 0.0, "b": 0.0, "a": 1.0}},
		{"missing b", map[string]any{"r": 0.0, "g": 0.0, "a": 1.0}},
		{"missing a", map[string]any{"r": 0.0, "g": 0.0, "b": 0.0}},
		{"non-numeric", map[string]any{"r": "1", "g": 0.0, "b": 0.0, "a": 1.0}},
		{"nil map", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := token.FromFractional(tt.input)
			if ok {
				t.Errorf("expected failure, got %+v", got)
			}
			if got != (token.RGBA{}) {
				t.Errorf("expected zero value on failure, got %+v", got)
			}
		})
	}
}

func TestRGBA_CSS(t *testing.T) {
	tests := []struct {
		name  string
		color token.RGBA
		want  string
	}{
		{"opaque", token.RGBA{R: 255, G: 107, B: 53, A: 1}, "#ff6b35"},
		{"nearly opaque", token.RGBA{R: 0, G: 0, B: 0, A: 0.9995}, "#000000"},
		{"translucent", token.RGBA{R: 51, G: 102, B: 153, A: 0.8}, "rgba(51, 102, 153, 0.8)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}
