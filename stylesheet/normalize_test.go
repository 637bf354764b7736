/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"testing"

	"bennypowers.dev/tokman/stylesheet"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" #fff ", "#fff"},
		{"16px /* comment */", "16px"},
		{"1px\n\t  solid   red", "1px solid red"},
		{"red !important", "red"},
		{"red ! IMPORTANT", "red"},
		{"calc(var(--a) * 2)", "calc(var(--a) * 2)"},
		{`"Open Sans", sans-serif`, `"Open Sans", sans-serif`},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := stylesheet.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
