/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokman.
package validate

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokman/cmd/project"
	"bennypowers.dev/tokman/convert"
	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/schema"
	"bennypowers.dev/tokman/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the synced tokens without writing outputs",
	Long: `Run the pipeline without writing outputs, check the resolved tokens, and
check that the DTCG documents the configured outputs would produce match
their schema versions.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Report placeholders as problems")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

// Options configures a check.
type Options struct {
	Strict     bool
	FigmaToken string
}

func run(cmd *cobra.Command, args []string) error {
	quiet := viper.GetBool("quiet")
	opts := Options{
		Strict:     viper.GetBool("strict"),
		FigmaToken: viper.GetString("figma-token"),
	}

	p, err := project.Load(fs.NewOSFileSystem(), viper.GetString("root"), viper.GetString("config"))
	if err != nil {
		return err
	}

	report := project.Report{W: cmd.OutOrStdout(), Colors: project.UseColors()}
	if quiet {
		report.W = cmd.ErrOrStderr()
	}
	problems, err := Check(cmd.Context(), p, opts)
	if err != nil {
		return err
	}
	report.Problems(problems)
	if len(problems) > 0 {
		return fmt.Errorf("validation failed: %d problems", len(problems))
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "All tokens valid.")
	}
	return nil
}

// Check runs the pipeline for p and returns every problem found in the
// resolved tokens and in the DTCG documents they render to.
func Check(ctx context.Context, p *project.Project, opts Options) ([]validator.ValidationError, error) {
	res, err := p.Run(ctx, opts.FigmaToken)
	if err != nil {
		return nil, err
	}
	problems := validator.Validate(res.Tokens, validator.Options{Strict: opts.Strict})

	outputs, err := p.Config.ConvertOutputs()
	if err != nil {
		return nil, err
	}
	versions := map[schema.Version]string{}
	for _, out := range outputs {
		if out.Format != convert.FormatDTCG {
			continue
		}
		v := out.Options.Schema
		if v == schema.Unknown {
			v = schema.Draft
		}
		versions[v] = out.Path
	}
	if len(versions) == 0 {
		versions[schema.Draft] = ""
	}

	for _, v := range slices.Sorted(maps.Keys(versions)) {
		path := versions[v]
		content, err := convert.FormatTokens(res.Tokens, convert.FormatDTCG, formatter.Options{Schema: v})
		if err != nil {
			return nil, fmt.Errorf("formatting %s document: %w", v, err)
		}
		problems = append(problems, validator.ValidateDocument(content, v, path)...)
	}
	return problems, nil
}
