/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokman/cmd/project"
	"bennypowers.dev/tokman/internal/mapfs"
)

func load(t *testing.T, config string) *project.Project {
	t.Helper()
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokman.yaml", config, 0644)
	mfs.AddFile("/project/styles/a.css", ":root { --color-bg: #fff; --space-md: 16px; }", 0644)
	mfs.AddFile("/project/styles/b.css", ":root { --color-bg: #000; }", 0644)
	p, err := project.Load(mfs, "/project", "")
	require.NoError(t, err)
	return p
}

func TestCheck_Valid(t *testing.T) {
	p := load(t, `sources:
  - styles/*.css
outputs:
  - format: dtcg
    path: dist/tokens.json
    schema: v2025.10
  - format: css
    path: dist/tokens.css
`)
	problems, err := Check(context.Background(), p, Options{})
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCheck_NoOutputsChecksDraft(t *testing.T) {
	p := load(t, "sources:\n  - styles/a.css\n")
	problems, err := Check(context.Background(), p, Options{Strict: true})
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCheck_Conflict(t *testing.T) {
	p := load(t, "sources:\n  - styles/*.css\nconflictResolution: throwOnConflict\n")
	_, err := Check(context.Background(), p, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color-bg")
}
