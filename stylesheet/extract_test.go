/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokman/internal/mapfs"
	"bennypowers.dev/tokman/stylesheet"
)

func TestExtract(t *testing.T) {
	src, err := os.ReadFile("testdata/tokens.css")
	require.NoError(t, err)

	props, err := stylesheet.Extract(src, "tokens.css")
	require.NoError(t, err)
	require.Len(t, props, 5)

	expected := []struct {
		name  string
		value string
		line  int
	}{
		{"--color-primary", "#FF6B35", 2},
		{"--space-md", "16px", 3},
		{"--font-body", `"Open Sans", sans-serif`, 5},
		{"--color-surface", "rgb(0 0 0)", 11},
		{"--card-radius", "4px", 15},
	}
	for i, e := range expected {
		assert.Equal(t, e.name, props[i].Name)
		assert.Equal(t, e.value, props[i].Value, e.name)
		assert.Equal(t, e.line, props[i].Line, e.name)
		assert.Equal(t, "tokens.css", props[i].File)
	}
}

func TestExtract_NoCustomProperties(t *testing.T) {
	props, err := stylesheet.Extract([]byte("a { color: red; }"), "plain.css")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestExtractFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/styles/a.css", ":root { --a: 1px; }", 0o644)
	mfs.AddFile("/styles/b.css", ":root { --b: 2px; }", 0o644)

	props, err := stylesheet.ExtractFiles(mfs, []string{"/styles/a.css", "/styles/b.css"})
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "--a", props[0].Name)
	assert.Equal(t, "/styles/b.css", props[1].File)

	_, err = stylesheet.ExtractFiles(mfs, []string{"/styles/missing.css"})
	assert.Error(t, err)
}
