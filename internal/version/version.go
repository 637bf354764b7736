/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the tokman build: the release version, the
// commit it was built from, and the toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokman/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// Info describes one tokman build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"gitCommit"`
	Tag       string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	UserAgent string `json:"userAgent"`
}

// String is the one-line form printed by `tokman version`.
func (i Info) String() string {
	if i.Commit == "unknown" || i.Commit == "" {
		return fmt.Sprintf("tokman %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("tokman %s (commit %s, %s, %s)", i.Version, shortCommit(i.Commit), i.GoVersion, i.Platform)
}

// Current returns the build information of the running binary.
func Current() Info {
	v := Get()
	return Info{
		Version:   v,
		Commit:    GitCommit,
		Tag:       GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		UserAgent: "tokman/" + v,
	}
}

// Get returns the version string: the ldflags value, then the module
// version from `go install`, then tag-commit from git metadata.
func Get() string {
	var modVersion string
	if info, ok := debug.ReadBuildInfo(); ok {
		modVersion = info.Main.Version
	}
	return resolve(Version, modVersion, GitTag, GitCommit, GitDirty == "dirty")
}

// UserAgent returns the User-Agent header value for Figma API requests.
func UserAgent() string {
	return "tokman/" + Get()
}

func resolve(ldflags, modVersion, tag, commit string, dirty bool) string {
	switch {
	case ldflags != "dev" && ldflags != "":
		return ldflags
	case modVersion != "" && modVersion != "(devel)":
		return modVersion
	case tag == "unknown" || commit == "unknown":
		return "dev"
	}
	v := tag
	if short := shortCommit(commit); short != "" && !strings.HasSuffix(tag, short) {
		v += "-" + short
	}
	if dirty {
		v += "-dirty"
	}
	return v
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
