/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/tokman/internal/version"
)

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	t.Cleanup(func() { Cmd.SetOut(nil) })
	if err := Cmd.Flags().Set("format", "text"); err != nil {
		t.Fatal(err)
	}

	if err := run(Cmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "tokman ") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	t.Cleanup(func() {
		Cmd.SetOut(nil)
		_ = Cmd.Flags().Set("format", "text")
	})
	if err := Cmd.Flags().Set("format", "json"); err != nil {
		t.Fatal(err)
	}

	if err := run(Cmd, nil); err != nil {
		t.Fatal(err)
	}
	var info version.Info
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.UserAgent != version.UserAgent() {
		t.Errorf("userAgent = %q, want %q", info.UserAgent, version.UserAgent())
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("missing toolchain fields: %+v", info)
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	t.Cleanup(func() { _ = Cmd.Flags().Set("format", "text") })
	if err := Cmd.Flags().Set("format", "xml"); err != nil {
		t.Fatal(err)
	}
	if err := run(Cmd, nil); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
