/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"strings"
	"testing"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/convert/formatter/css"
	"bennypowers.dev/tokman/testutil"
)

func TestFormat_Plain(t *testing.T) {
	out, err := css.New().Format(testutil.SampleTokens(), formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	testutil.AssertGolden(t, "plain.css", out)
}

func TestFormat_Modes(t *testing.T) {
	out, err := css.New().Format(testutil.SampleTokens(), formatter.Options{
		Prefix:       "ds",
		Selector:     "[data-theme]",
		ModeSelector: `[data-mode="%s"]`,
		Header:       "Generated by tokman",
	})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	testutil.AssertGolden(t, "modes.css", out)
}

func TestFormat_SkipsPlaceholders(t *testing.T) {
	out, err := css.New().Format(testutil.SampleTokens(), formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if strings.Contains(string(out), "typography-heading") {
		t.Error("placeholder tokens must not be written")
	}
}

func TestModeSelector(t *testing.T) {
	got := css.ModeSelector(`.theme-%s`, "High Contrast")
	if got != ".theme-high-contrast" {
		t.Errorf("ModeSelector() = %q", got)
	}
}
