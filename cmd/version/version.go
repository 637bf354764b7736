/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for tokman.
package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokman/internal/version"
)

// Cmd prints the build of the running binary.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the tokman version, commit, Go toolchain and platform.

The json format also includes the User-Agent sent to the Figma API.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	info := version.Current()
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text", "":
		_, err := fmt.Fprintln(out, info)
		return err
	default:
		return fmt.Errorf("unknown format %q: want text or json", format)
	}
}
