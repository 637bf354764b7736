/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scss_test

import (
	"strings"
	"testing"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/convert/formatter/scss"
	"bennypowers.dev/tokman/testutil"
)

func TestFormat_Map(t *testing.T) {
	out, err := scss.New().Format(testutil.SampleTokens(), formatter.Options{
		MapName: "tokens",
		Header:  "Generated by tokman",
	})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	testutil.AssertGolden(t, "map.scss", out)
}

func TestFormat_Prefix(t *testing.T) {
	out, err := scss.New().Format(testutil.SampleTokens(), formatter.Options{Prefix: "ds"})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "$ds-space-md: 16px;\n") {
		t.Errorf("expected prefixed variable, got:\n%s", s)
	}
	if strings.Contains(s, "$tokens") || strings.Contains(s, "(\n") {
		t.Error("no map expected without MapName")
	}
}
