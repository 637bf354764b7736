/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package initcmd provides the init command for tokman.
package initcmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokman/config"
	"bennypowers.dev/tokman/fs"
)

// ErrExists is returned when a config file already exists and force is unset.
var ErrExists = errors.New("config already exists")

// Cmd is the init cobra command.
var Cmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config",
	Long:  `Create .config/tokman.yaml with a Figma source, a stylesheet source and one output per format.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("file-key", "", "Figma file key")
	Cmd.Flags().StringSlice("stylesheets", []string{"src/**/*.css"}, "Stylesheet globs")
	Cmd.Flags().Bool("force", false, "Overwrite an existing config")
}

// Options configures the starter config.
type Options struct {
	FileKey     string
	Stylesheets []string
	Force       bool
}

var starter = template.Must(template.New("tokman.yaml").Parse(`# tokman configuration
sources:
{{- if .FileKey}}
  - type: figma
    fileKey: {{printf "%q" .FileKey}}
    styles: true
{{- end}}
  - type: stylesheet
    paths:
{{- range .Stylesheets}}
      - {{printf "%q" .}}
{{- end}}

# firstSourceWins, secondSourceWins, sourceOrderWins or throwOnConflict
conflictResolution: firstSourceWins

naming:
  separator: "-"

outputs:
  - format: dtcg
    path: dist/tokens.json
    schema: v2025.10
  - format: json
    path: dist/tokens.flat.json
  - format: css
    path: dist/tokens.css
    modeSelector: '[data-mode="%s"]'
  - format: scss
    path: dist/_tokens.scss
    mapName: tokens
`))

func run(cmd *cobra.Command, args []string) error {
	fileKey, _ := cmd.Flags().GetString("file-key")
	stylesheets, _ := cmd.Flags().GetStringSlice("stylesheets")
	force, _ := cmd.Flags().GetBool("force")

	path, err := Write(fs.NewOSFileSystem(), viper.GetString("root"), Options{
		FileKey:     fileKey,
		Stylesheets: stylesheets,
		Force:       force,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

// Write renders the starter config into root and returns its path.
func Write(fsys fs.FileSystem, root string, opts Options) (string, error) {
	if existing := config.Find(fsys, root); existing != "" && !opts.Force {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, existing)
	}

	var buf bytes.Buffer
	if err := starter.Execute(&buf, opts); err != nil {
		return "", err
	}

	path := filepath.Join(root, config.ConfigDir, config.ConfigFileName+".yaml")
	if err := fs.WriteFileAll(fsys, path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
