/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders resolved tokens into output artifacts.
package convert

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/internal/logger"
	"bennypowers.dev/tokman/token"
)

// Output is one artifact to write.
type Output struct {
	Format  Format
	Path    string
	Options formatter.Options
}

// Write formats tokens for each output and writes the results.
// Relative output paths are joined to root. It returns the written paths.
func Write(fsys fs.FileSystem, root string, tokens []*token.Token, outputs []Output) ([]string, error) {
	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if out.Path == "" {
			return written, fmt.Errorf("%s output has no path", out.Format)
		}
		content, err := FormatTokens(tokens, out.Format, out.Options)
		if err != nil {
			return written, fmt.Errorf("formatting %s: %w", out.Path, err)
		}

		path := out.Path
		if !filepath.IsAbs(path) && root != "" {
			path = filepath.Join(root, path)
		}
		if err := fs.WriteFileAll(fsys, path, content); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug("wrote %s (%s, %d bytes)", path, out.Format, len(content))
		written = append(written, path)
	}
	return written, nil
}
