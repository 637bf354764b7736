/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// AlphaThreshold is the value at or above which a color is treated as fully opaque.
const AlphaThreshold = 0.999

// RGBA is a normalized color: 0-255 channels with a 0-1 alpha.
type RGBA struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// FromFractional converts a color with 0-1 components to RGBA.
// Returns false when any of r, g, b or a is missing or not numeric.
func FromFractional(c map[string]any) (RGBA, bool) {
	var channels [4]float64
	for i, key := range [4]string{"r", "g", "b", "a"} {
		v, ok := toFloat(c[key])
		if !ok {
			return RGBA{}, false
		}
		channels[i] = v
	}
	return RGBA{
		R: toByte(channels[0]),
		G: toByte(channels[1]),
		B: toByte(channels[2]),
		A: channels[3],
	}, true
}

// toByte scales a 0-1 component, rounding half away from zero.
func toByte(c float64) int {
	return clamp(int(math.Round(c*255)), 0, 255)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// clamp restricts a value to the given range.
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Colorful returns the color as a go-colorful value, ignoring alpha.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the #rrggbb form.
func (c RGBA) Hex() string {
	return c.Colorful().Hex()
}

// CSS returns hex for opaque colors and rgba() otherwise.
func (c RGBA) CSS() string {
	if c.A >= AlphaThreshold {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatNumber(c.A))
}

// Map returns the {r,g,b,a} record.
func (c RGBA) Map() map[string]any {
	return map[string]any{"r": c.R, "g": c.G, "b": c.B, "a": c.A}
}
