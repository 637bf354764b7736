/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		ldflags    string
		modVersion string
		tag        string
		commit     string
		dirty      bool
		want       string
	}{
		{name: "ldflags wins", ldflags: "v1.2.3", modVersion: "v0.9.0", want: "v1.2.3"},
		{name: "module version", ldflags: "dev", modVersion: "v0.9.0", want: "v0.9.0"},
		{name: "devel module falls through", ldflags: "dev", modVersion: "(devel)", tag: "unknown", commit: "unknown", want: "dev"},
		{name: "tag and commit", ldflags: "dev", tag: "v1.0.0", commit: "abcdef1234", want: "v1.0.0-abcdef1"},
		{name: "tag already carries commit", ldflags: "dev", tag: "v1.0.0-abcdef1", commit: "abcdef1234", want: "v1.0.0-abcdef1"},
		{name: "dirty tree", ldflags: "dev", tag: "v1.0.0", commit: "abc", dirty: true, want: "v1.0.0-abc-dirty"},
		{name: "no git metadata", ldflags: "dev", tag: "unknown", commit: "unknown", want: "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.ldflags, tt.modVersion, tt.tag, tt.commit, tt.dirty))
		})
	}
}

func TestCurrent(t *testing.T) {
	origV, origC := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = origV, origC })

	Version = "v1.2.3"
	GitCommit = "abcdef1234"
	info := Current()

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "tokman/v1.2.3", info.UserAgent)
	assert.Equal(t, UserAgent(), info.UserAgent)
	assert.True(t, strings.HasPrefix(info.String(), "tokman v1.2.3 (commit abcdef1, go"), info.String())
}

func TestInfoString_NoCommit(t *testing.T) {
	info := Info{Version: "dev", Commit: "unknown", GoVersion: "go1.25.5", Platform: "linux/amd64"}
	assert.Equal(t, "tokman dev (go1.25.5, linux/amd64)", info.String())
}
