/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokman.
package cmd

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokman/cmd/build"
	"bennypowers.dev/tokman/cmd/initcmd"
	"bennypowers.dev/tokman/cmd/list"
	"bennypowers.dev/tokman/cmd/validate"
	"bennypowers.dev/tokman/cmd/version"
	"bennypowers.dev/tokman/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokman",
	Short: "Sync design tokens from Figma and stylesheets",
	Long: `tokman reads design tokens from Figma variables, Figma styles and stylesheet
custom properties, resolves naming conflicts between them, and writes DTCG,
flat JSON, CSS and SCSS outputs.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: .config/tokman.{yaml,yml,json})")
	rootCmd.PersistentFlags().String("root", ".", "Project root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().String("figma-token", "", "Figma personal access token (env: TOKMAN_FIGMA_TOKEN, FIGMA_API_KEY)")

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(initcmd.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// setup loads .env, binds flags and environment to viper, and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	viper.SetEnvPrefix("TOKMAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.BindEnv("figma-token", "TOKMAN_FIGMA_TOKEN", "FIGMA_API_KEY"); err != nil {
		return err
	}

	logger.SetVerbose(viper.GetBool("verbose"))
	return nil
}
