/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline runs sources through the transformers and the conflict
// resolver, and writes the configured outputs.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/tokman/config"
	"bennypowers.dev/tokman/convert"
	"bennypowers.dev/tokman/figma"
	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/internal/logger"
	"bennypowers.dev/tokman/resolver"
	"bennypowers.dev/tokman/stylesheet"
	"bennypowers.dev/tokman/token"
	"bennypowers.dev/tokman/transform"
)

// ErrNoFigmaSource is returned when the config reads from Figma but no
// client was supplied.
var ErrNoFigmaSource = errors.New("figma source configured but no client available")

// FigmaSource fetches raw records from Figma. *figma.Client implements it.
type FigmaSource interface {
	Variables(ctx context.Context, fileKey string) (*figma.VariablesResponse, error)
	Styles(ctx context.Context, fileKey string) (*figma.StylesResponse, error)
	Nodes(ctx context.Context, fileKey string, ids []string) (map[string]*transform.Node, error)
}

// Options configures a pipeline run.
type Options struct {
	Config *config.Config
	FS     fs.FileSystem
	// Root resolves relative stylesheet and output paths.
	Root  string
	Figma FigmaSource
}

// Result is the outcome of a run.
type Result struct {
	// Tokens is the resolved collection, in first-seen order.
	Tokens []*token.Token
	// Placeholders are the resolved tokens still awaiting node data.
	Placeholders []*token.Token
	Conflicts    []resolver.Conflict
	Diagnostics  transform.Diagnostics
	Policy       resolver.Policy
}

type sourceResult struct {
	tokens []*token.Token
	diags  transform.Diagnostics
}

// Run reads every configured source, transforms and resolves the tokens.
// Sources are read concurrently; tokens are concatenated in configured
// source order, so the result does not depend on completion order.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	if cfg.HasFigma() && opts.Figma == nil {
		return nil, ErrNoFigmaSource
	}
	topts := cfg.TransformOptions()

	results := make([]sourceResult, len(cfg.Sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range cfg.Sources {
		g.Go(func() error {
			var err error
			switch src.Type {
			case config.SourceFigma:
				results[i], err = readFigma(gctx, opts.Figma, src, topts)
			case config.SourceStylesheet:
				results[i], err = readStylesheets(opts.FS, opts.Root, src)
			default:
				err = fmt.Errorf("%w: %q", config.ErrUnknownSourceType, src.Type)
			}
			if err != nil {
				return fmt.Errorf("sources[%d] (%s): %w", i, src.Type, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		all   []*token.Token
		diags transform.Diagnostics
	)
	for _, r := range results {
		all = append(all, r.tokens...)
		diags = append(diags, r.diags...)
	}
	for _, d := range diags {
		logger.Debug("%s", d)
	}

	resolved, conflicts, err := resolver.Resolve(all, policy)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved %d of %d tokens with %s (%d conflicts)", len(resolved), len(all), policy, len(conflicts))

	result := &Result{
		Tokens:      resolved,
		Conflicts:   conflicts,
		Diagnostics: diags,
		Policy:      policy,
	}
	for _, tok := range resolved {
		if tok.NeedsNodeData {
			result.Placeholders = append(result.Placeholders, tok)
		}
	}
	return result, nil
}

// readFigma fetches variables and styles concurrently, then the nodes the
// styles refer to. Variables precede styles in the result.
func readFigma(ctx context.Context, client FigmaSource, src config.Source, opts transform.Options) (sourceResult, error) {
	var (
		vars   *figma.VariablesResponse
		styles *figma.StylesResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	if src.ReadsVariables() {
		g.Go(func() (err error) {
			vars, err = client.Variables(gctx, src.FileKey)
			return err
		})
	}
	if src.Styles {
		g.Go(func() (err error) {
			styles, err = client.Styles(gctx, src.FileKey)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return sourceResult{}, err
	}

	var out sourceResult
	if vars != nil {
		records, diags := figma.ParseVariables(vars)
		tokens, tdiags := transform.Variables(records, opts)
		out.tokens = append(out.tokens, tokens...)
		out.diags = append(append(out.diags, diags...), tdiags...)
	}
	if styles != nil {
		records, ids := figma.ParseStyles(styles)
		var nodes map[string]*transform.Node
		if len(ids) > 0 {
			var err error
			nodes, err = client.Nodes(ctx, src.FileKey, ids)
			if err != nil {
				if ctx.Err() != nil {
					return sourceResult{}, err
				}
				// Without node data every style becomes a placeholder.
				out.diags.Warnf(token.SourceFigmaStyle, src.FileKey, "fetching style nodes: %v", err)
				nodes = nil
			}
		}
		tokens, diags := transform.Styles(records, nodes, opts)
		out.tokens = append(out.tokens, tokens...)
		out.diags = append(out.diags, diags...)
	}
	return out, nil
}

func readStylesheets(fsys fs.FileSystem, root string, src config.Source) (sourceResult, error) {
	paths, err := src.StylesheetPaths(fsys, root)
	if err != nil {
		return sourceResult{}, err
	}
	props, err := stylesheet.ExtractFiles(fsys, paths)
	if err != nil {
		return sourceResult{}, err
	}
	tokens, diags := transform.Stylesheet(props)
	return sourceResult{tokens: tokens, diags: diags}, nil
}

// WriteOutputs writes every configured output for tokens and returns the
// written paths.
func WriteOutputs(fsys fs.FileSystem, root string, cfg *config.Config, tokens []*token.Token) ([]string, error) {
	outputs, err := cfg.ConvertOutputs()
	if err != nil {
		return nil, err
	}
	return convert.Write(fsys, root, tokens, outputs)
}
