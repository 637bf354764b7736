/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"os"
	"testing"

	"bennypowers.dev/tokman/internal/logger"
)

func TestDebug_GatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	logger.Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("expected no debug output, got %q", buf.String())
	}

	logger.SetVerbose(true)
	logger.Debug("shown %d", 2)
	if got := buf.String(); got != "debug: shown 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestWarn_Prefix(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	logger.Warn("skipped %s", "x")
	if got := buf.String(); got != "warning: skipped x\n" {
		t.Errorf("got %q", got)
	}
}
