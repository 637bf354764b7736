/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/tokman/token"
)

func TestNameFromSlashPath(t *testing.T) {
	tests := []struct {
		input    string
		sep      string
		wantName string
		wantPath []string
	}{
		{"colors/brand/primary", "-", "colors-brand-primary", []string{"colors", "brand", "primary"}},
		{"Colors/Brand/Primary", "-", "colors-brand-primary", []string{"colors", "brand", "primary"}},
		{"Heading/H1 Bold", "-", "heading-h1-bold", []string{"heading", "h1-bold"}},
		{"Spacing /  Large   Gap", "-", "spacing-large-gap", []string{"spacing", "large-gap"}},
		{"a//b/", "-", "a-b", []string{"a", "b"}},
		{"Brand/Primary", "_", "brand_primary", []string{"brand", "primary"}},
		{"Größe/Klein", "", "größe-klein", []string{"größe", "klein"}},
		{"", "-", "", nil},
		{" / ", "-", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, path := token.NameFromSlashPath(tt.input, tt.sep)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if !slices.Equal(path, tt.wantPath) {
				t.Errorf("path = %v, want %v", path, tt.wantPath)
			}
		})
	}
}

func TestNameFromSlashPath_PathJoinMatchesName(t *testing.T) {
	upper := regexp.MustCompile(`[A-Z]|\s`)
	inputs := []string{
		"Color/Brand/Primary",
		"Typography/Heading  Large/Bold",
		"  spacing/x small ",
		"Effects/Card\tShadow",
	}
	for _, input := range inputs {
		name, path := token.NameFromSlashPath(input, "-")
		if len(path) == 0 {
			t.Fatalf("%q: empty path", input)
		}
		if got := strings.Join(path, "-"); got != name {
			t.Errorf("%q: join(path) = %q, name = %q", input, got, name)
		}
		if upper.MatchString(name) {
			t.Errorf("%q: name %q is not lower-cased and whitespace-collapsed", input, name)
		}
	}
}

func TestNameFromCustomProperty(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantPath []string
	}{
		{"--color-primary", "color-primary", []string{"color", "primary"}},
		{"--Color-Primary", "color-primary", []string{"color", "primary"}},
		{"--space--large", "space-large", []string{"space", "large"}},
		{"--card__title--active", "card__title-active", []string{"card__title", "active"}},
		{"--trailing-", "trailing", []string{"trailing"}},
		{"--x", "x", []string{"x"}},
		{"--", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, path := token.NameFromCustomProperty(tt.input)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if !slices.Equal(path, tt.wantPath) {
				t.Errorf("path = %v, want %v", path, tt.wantPath)
			}
		})
	}
}
