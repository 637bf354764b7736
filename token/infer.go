/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFuncPattern = regexp.MustCompile(`(?i)^(rgb|rgba|hsl|hsla)\(`)
	dimensionPattern = regexp.MustCompile(`^([+-]?(?:\d*\.)?\d+)(px|em|rem|%|vw|vh|s|ms)$`)
	numberPattern    = regexp.MustCompile(`^[+-]?(?:\d*\.)?\d+$`)
)

// TypeFromResolvedType maps a Figma resolvedType tag to a token type.
// Unknown tags map to TypeString.
func TypeFromResolvedType(resolvedType string) Type {
	switch resolvedType {
	case "COLOR":
		return TypeColor
	case "FLOAT":
		return TypeNumber
	case "STRING":
		return TypeString
	case "BOOLEAN":
		return TypeBoolean
	default:
		return TypeString
	}
}

// InferType classifies a stylesheet value.
// Colors are checked first, then unit-suffixed numbers, then bare numbers.
// Everything else, including var() and calc() expressions, is a string.
func InferType(value string) Type {
	value = strings.TrimSpace(value)
	switch {
	case hexColorPattern.MatchString(value), colorFuncPattern.MatchString(value):
		return TypeColor
	case dimensionPattern.MatchString(value):
		return TypeDimension
	case numberPattern.MatchString(value):
		return TypeNumber
	default:
		return TypeString
	}
}

// ParseDimension splits a unit-suffixed literal such as "1.5rem".
func ParseDimension(value string) (Dimension, bool) {
	value = strings.TrimSpace(value)
	m := dimensionPattern.FindStringSubmatch(value)
	if m == nil {
		return Dimension{}, false
	}
	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Dimension{}, false
	}
	return Dimension{Magnitude: magnitude, Unit: m[2], Literal: value}, true
}

// ParseStylesheetValue builds a Value for a stylesheet literal of the given type.
// Numbers are parsed; every other type keeps the trimmed literal.
func ParseStylesheetValue(value string, typ Type) (Value, bool) {
	value = strings.TrimSpace(value)
	switch typ {
	case TypeColor:
		return Color{Text: value}, true
	case TypeDimension:
		d, ok := ParseDimension(value)
		if !ok {
			return nil, false
		}
		return d, true
	case TypeNumber:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, false
		}
		return Number(f), true
	case TypeString:
		return String(value), true
	default:
		return nil, false
	}
}
