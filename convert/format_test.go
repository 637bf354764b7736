/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"strings"
	"testing"

	"bennypowers.dev/tokman/convert"
	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/testutil"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected convert.Format
		wantErr  bool
	}{
		{"dtcg", convert.FormatDTCG, false},
		{"", convert.FormatDTCG, false},
		{"json", convert.FormatFlatJSON, false},
		{"flat", convert.FormatFlatJSON, false},
		{"flat-json", convert.FormatFlatJSON, false},
		{"CSS", convert.FormatCSS, false},
		{"scss", convert.FormatSCSS, false},
		{"sass", convert.FormatSCSS, false},
		{"android", "", true},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat_ErrorListsValid(t *testing.T) {
	_, err := convert.ParseFormat("xml")
	if err == nil || !strings.Contains(err.Error(), "dtcg, json, css, scss") {
		t.Errorf("expected error listing valid formats, got %v", err)
	}
}

func TestFormatTokens(t *testing.T) {
	tokens := testutil.SampleTokens()
	for _, f := range convert.ValidFormats() {
		t.Run(f, func(t *testing.T) {
			format, err := convert.ParseFormat(f)
			if err != nil {
				t.Fatal(err)
			}
			out, err := convert.FormatTokens(tokens, format, formatter.Options{})
			if err != nil {
				t.Fatalf("FormatTokens(%s) error: %v", f, err)
			}
			if !strings.Contains(string(out), "space") {
				t.Errorf("FormatTokens(%s) output missing tokens:\n%s", f, out)
			}
		})
	}

	if _, err := convert.FormatTokens(tokens, convert.Format("bogus"), formatter.Options{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
