/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema selects the DTCG schema version that structured output conforms to.
package schema

import (
	"fmt"
	"strings"
)

// Version is a design tokens schema version.
type Version int

const (
	// Unknown is the zero value; formatters treat it as Draft.
	Unknown Version = iota

	// Draft is the editor's draft schema: colors and dimensions are strings.
	Draft

	// V2025_10 is the stable 2025.10 schema: colors and dimensions are structured.
	V2025_10
)

// String returns the configuration spelling of the version.
func (v Version) String() string {
	switch v {
	case Draft:
		return "draft"
	case V2025_10:
		return "2025.10"
	default:
		return "unknown"
	}
}

// URL returns the JSON Schema URL written to $schema, or "" for Unknown.
func (v Version) URL() string {
	switch v {
	case Draft:
		return "https://www.designtokens.org/schemas/draft.json"
	case V2025_10:
		return "https://www.designtokens.org/schemas/2025.10.json"
	default:
		return ""
	}
}

// Structured reports whether colors and dimensions are written as objects.
func (v Version) Structured() bool {
	return v == V2025_10
}

// FromString parses a configured schema name. The empty string selects Draft.
func FromString(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "draft":
		return Draft, nil
	case "2025.10", "v2025.10", "v2025_10", "2025", "v2025":
		return V2025_10, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
}
