/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokman.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokman/cmd/project"
	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/internal/logger"
	"bennypowers.dev/tokman/validator"
)

// ErrValidation is returned when resolved tokens fail validation.
var ErrValidation = errors.New("validation failed")

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Sync tokens and write the configured outputs",
	Long: `Read every configured source, resolve naming conflicts, and write the
configured outputs.

Examples:
  # Build once
  tokman build

  # Rebuild when stylesheets or the config change
  tokman build --watch

  # Fail when any style is still a placeholder
  tokman build --strict`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("watch", "w", false, "Rebuild when stylesheets or the config change")
	Cmd.Flags().Bool("strict", false, "Fail when placeholders remain")
	Cmd.Flags().Duration("debounce", DefaultDebounce, "Delay before rebuilding after a change")
}

// Options configures one build.
type Options struct {
	Strict     bool
	FigmaToken string
}

func run(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	debounce, _ := cmd.Flags().GetDuration("debounce")
	opts := Options{
		Strict:     viper.GetBool("strict"),
		FigmaToken: viper.GetString("figma-token"),
	}

	filesystem := fs.NewOSFileSystem()
	root := viper.GetString("root")
	configPath := viper.GetString("config")
	report := project.Report{W: cmd.OutOrStdout(), Colors: project.UseColors()}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := project.Load(filesystem, root, configPath)
	if err != nil {
		return err
	}
	_, err = Build(ctx, p, opts, report)
	if !watch {
		return err
	}
	if err != nil {
		logger.Warn("%v", err)
	}

	current := p
	return watchProject(ctx, p, debounce, func() *project.Project {
		next, err := current.Reload()
		if err != nil {
			logger.Warn("%v", err)
			return nil
		}
		current = next
		if _, err := Build(ctx, next, opts, report); err != nil {
			logger.Warn("%v", err)
		}
		return next
	})
}

// Build runs the pipeline for p, validates the result, and writes the
// outputs. Nothing is written when validation fails.
func Build(ctx context.Context, p *project.Project, opts Options, report project.Report) ([]string, error) {
	start := time.Now()
	res, err := p.Run(ctx, opts.FigmaToken)
	if err != nil {
		return nil, err
	}
	report.Summary(res)

	if problems := validator.Validate(res.Tokens, validator.Options{Strict: opts.Strict}); len(problems) > 0 {
		report.Problems(problems)
		return nil, fmt.Errorf("%w: %d problems", ErrValidation, len(problems))
	}

	written, err := p.Write(res)
	if err != nil {
		return nil, err
	}
	report.Written(written)
	logger.Debug("build finished in %s", time.Since(start).Round(time.Millisecond))
	return written, nil
}

func watchProject(ctx context.Context, p *project.Project, debounce time.Duration, rebuild func() *project.Project) error {
	dirs, err := p.WatchDirs()
	if err != nil {
		return err
	}
	w, err := NewWatcher(dirs, debounce)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	logger.Info("watching %d directories for changes", len(dirs))
	return w.Run(ctx, func() {
		next := rebuild()
		if next == nil {
			return
		}
		// New stylesheet globs may match new directories.
		if dirs, err := next.WatchDirs(); err == nil {
			w.Add(dirs)
		}
	})
}
