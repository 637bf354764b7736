/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixtures and golden-file helpers for tokman tests.
package testutil

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tokman/internal/mapfs"
	"bennypowers.dev/tokman/token"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()

	// Try multiple possible paths since Go test changes working directory
	possiblePaths := []string{
		filepath.Join("testdata", fixtureDir),
		filepath.Join("..", "testdata", fixtureDir),
		filepath.Join("..", "..", "testdata", fixtureDir),
	}

	var fixturePath string
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			fixturePath = path
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	// Walk fixture directory and load all files
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		virtualPath := filepath.Join(rootPath, relPath)
		mfs.AddFile(virtualPath, string(content), 0644)

		return nil
	})

	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	possiblePaths := []string{
		filepath.Join("testdata", fixturePath),
		filepath.Join("..", "testdata", fixturePath),
		filepath.Join("..", "..", "testdata", fixturePath),
	}

	for _, path := range possiblePaths {
		content, err := os.ReadFile(path)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// UpdateGoldenFile writes actual output to the golden file when -update flag is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	possiblePaths := []string{
		filepath.Join("testdata", goldenPath),
		filepath.Join("..", "testdata", goldenPath),
		filepath.Join("..", "..", "testdata", goldenPath),
	}

	var targetPath string
	for _, path := range possiblePaths {
		parentDir := filepath.Dir(path)
		if _, err := os.Stat(parentDir); err == nil {
			targetPath = path
			break
		}
	}
	if targetPath == "" {
		targetPath = possiblePaths[0]
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}

	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}

	t.Logf("Updated golden file: %s", targetPath)
}

// AssertGolden compares actual with the golden file, rewriting the file
// first when -update is set.
func AssertGolden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	UpdateGoldenFile(t, goldenPath, actual)
	expected := LoadFixtureFile(t, goldenPath)
	if !bytes.Equal(expected, actual) {
		t.Errorf("output does not match %s\n--- expected ---\n%s\n--- actual ---\n%s", goldenPath, expected, actual)
	}
}

// SampleTokens returns a resolved collection covering every value kind,
// two modes, and one placeholder, in resolver order.
func SampleTokens() []*token.Token {
	text := token.RGBA{R: 17, G: 17, B: 17, A: 1}
	white := token.RGBA{R: 255, G: 255, B: 255, A: 1}
	return []*token.Token{
		{
			Name:        "color-text",
			Path:        []string{"color", "text"},
			Type:        token.TypeColor,
			Value:       token.Color{RGBA: &text},
			Description: "Body text",
			DefaultMode: "Light",
			ValuesByMode: map[string]token.Value{
				"Light": token.Color{RGBA: &text},
				"Dark":  token.Color{RGBA: &white},
			},
			Metadata: token.Metadata{
				Source:       token.SourceFigma,
				OriginalName: "Color/Text",
				Variable: &token.VariableMeta{
					ID:         "VariableID:1",
					CodeSyntax: map[string]string{"WEB": "var(--color-text)"},
				},
			},
		},
		{
			Name:  "space-md",
			Path:  []string{"space", "md"},
			Type:  token.TypeDimension,
			Value: token.Dimension{Magnitude: 16, Unit: "px", Literal: "16px"},
			Metadata: token.Metadata{
				Source:     token.SourceStylesheet,
				Stylesheet: &token.StylesheetMeta{File: "tokens.css", Line: 2},
			},
		},
		{
			Name: "shadow-card",
			Path: []string{"shadow", "card"},
			Type: token.TypeShadow,
			Value: token.Shadow{
				Kind:    token.ShadowDrop,
				Color:   token.RGBA{A: 0.25},
				OffsetY: 2,
				Blur:    4,
			},
			Metadata: token.Metadata{Source: token.SourceFigmaStyle, Style: &token.StyleMeta{NodeID: "10:3"}},
		},
		{
			Name:     "font-body",
			Path:     []string{"font", "body"},
			Type:     token.TypeFontFamily,
			Value:    token.FontFamily("Open Sans"),
			Metadata: token.Metadata{Source: token.SourceFigmaStyle, Style: &token.StyleMeta{NodeID: "10:2"}},
		},
		{
			Name:     "color-accent",
			Path:     []string{"color", "accent"},
			Type:     token.TypeColor,
			Value:    token.Color{Text: "#FF6B35"},
			Metadata: token.Metadata{Source: token.SourceStylesheet},
		},
		{
			Name:          "typography-heading",
			Path:          []string{"typography", "heading"},
			Type:          token.TypeTypography,
			NeedsNodeData: true,
			Metadata:      token.Metadata{Source: token.SourceFigmaStyle, Style: &token.StyleMeta{NodeID: "10:9"}},
		},
		{
			Name:        "opacity-disabled",
			Path:        []string{"opacity", "disabled"},
			Type:        token.TypeNumber,
			Value:       token.Number(0.5),
			DefaultMode: "Light",
			ValuesByMode: map[string]token.Value{
				"Light": token.Number(0.5),
				"Dark":  token.Number(0.4),
			},
			Metadata: token.Metadata{Source: token.SourceFigma},
		},
	}
}
