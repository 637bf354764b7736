/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads a tokman project and runs its pipeline for the CLI commands.
package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"bennypowers.dev/tokman/config"
	"bennypowers.dev/tokman/figma"
	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/pipeline"
)

// ErrNoConfig is returned when no config file is found under the root.
var ErrNoConfig = errors.New("no config found (run `tokman init` to create one)")

// Project is a loaded, validated configuration.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
	// ConfigPath is the file the config was read from.
	ConfigPath string

	figma pipeline.FigmaSource
}

// Load reads the config at configPath, or searches root for one when
// configPath is empty, and validates it.
func Load(fsys fs.FileSystem, root, configPath string) (*Project, error) {
	if configPath == "" {
		configPath = config.Find(fsys, root)
		if configPath == "" {
			return nil, ErrNoConfig
		}
	} else if !filepath.IsAbs(configPath) && !fsys.Exists(configPath) {
		configPath = filepath.Join(root, configPath)
	}

	cfg, err := config.LoadFile(fsys, configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &Project{FS: fsys, Root: root, Config: cfg, ConfigPath: configPath}, nil
}

// Run runs the pipeline. When the config reads from Figma, a client is
// created from figmaToken on first use and kept for later runs, so node
// details cached by one run are reused by the next.
func (p *Project) Run(ctx context.Context, figmaToken string, opts ...figma.Option) (*pipeline.Result, error) {
	popts := pipeline.Options{
		Config: p.Config,
		FS:     p.FS,
		Root:   p.Root,
	}
	if p.Config.HasFigma() {
		if p.figma == nil {
			client, err := figma.NewClient(figmaToken, opts...)
			if err != nil {
				return nil, err
			}
			p.figma = client
		}
		popts.Figma = p.figma
	}
	return pipeline.Run(ctx, popts)
}

// Reload reads the config file again. The returned project shares p's
// Figma client.
func (p *Project) Reload() (*Project, error) {
	next, err := Load(p.FS, p.Root, p.ConfigPath)
	if err != nil {
		return nil, err
	}
	next.figma = p.figma
	return next, nil
}

// Write writes the configured outputs and returns the written paths.
func (p *Project) Write(res *pipeline.Result) ([]string, error) {
	return pipeline.WriteOutputs(p.FS, p.Root, p.Config, res.Tokens)
}

// WatchDirs lists the directories whose changes affect a build: the config
// file's directory and the directory of every matched stylesheet.
// Output directories are excluded.
func (p *Project) WatchDirs() ([]string, error) {
	dirs := []string{filepath.Dir(p.ConfigPath)}
	for _, src := range p.Config.Sources {
		if src.Type != config.SourceStylesheet {
			continue
		}
		paths, err := src.StylesheetPaths(p.FS, p.Root)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			dirs = append(dirs, filepath.Dir(path))
		}
	}

	var outputs []string
	for _, out := range p.Config.Outputs {
		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.Root, path)
		}
		outputs = append(outputs, filepath.Dir(path))
	}

	slices.Sort(dirs)
	dirs = slices.Compact(dirs)
	return slices.DeleteFunc(dirs, func(d string) bool {
		return slices.Contains(outputs, d)
	}), nil
}
