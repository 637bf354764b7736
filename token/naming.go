/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSeparator joins path segments into a flat name.
const DefaultSeparator = "-"

var whitespaceRun = regexp.MustCompile(`\s+`)

// lower returns a new caser per call; casers are stateful and tokens are
// transformed concurrently.
func lower() cases.Caser {
	return cases.Lower(language.Und)
}

// NameFromSlashPath derives a flat name and path from a slash-delimited name
// such as "Colors/Brand/Primary Dark".
// Each segment is trimmed, lower-cased, and has internal whitespace runs
// replaced by sep. Empty segments are dropped.
// An empty name means the input held no usable segments.
func NameFromSlashPath(name, sep string) (string, []string) {
	if sep == "" {
		sep = DefaultSeparator
	}
	var (
		path  []string
		caser = lower()
	)
	for _, segment := range strings.Split(name, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segment = whitespaceRun.ReplaceAllString(caser.String(segment), sep)
		path = append(path, segment)
	}
	return strings.Join(path, sep), path
}

// NameFromCustomProperty derives a flat name and path from a custom property
// name such as "--color-primary". The path is the dash-split of the name with
// empty segments dropped, and the name is the path joined by single dashes,
// so "--space--lg" and "--space-lg" both become "space-lg".
func NameFromCustomProperty(property string) (string, []string) {
	name := lower().String(strings.TrimPrefix(strings.TrimSpace(property), "--"))
	var path []string
	for _, segment := range strings.Split(name, "-") {
		if segment != "" {
			path = append(path, segment)
		}
	}
	return strings.Join(path, DefaultSeparator), path
}
