/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokman.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xlab/treeprint"

	"bennypowers.dev/tokman/cmd/project"
	"bennypowers.dev/tokman/convert/formatter"
	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved tokens",
	Long:  `List the resolved tokens of the project with optional filtering and formatting.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("group", "", "Filter by top-level group")
	Cmd.Flags().Bool("placeholders", false, "Show only placeholders")
	Cmd.Flags().Bool("hide-placeholders", false, "Hide placeholders")
	Cmd.Flags().String("format", "table", "Output format: table, json, tree")
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	group, _ := cmd.Flags().GetString("group")
	placeholdersOnly, _ := cmd.Flags().GetBool("placeholders")
	hidePlaceholders, _ := cmd.Flags().GetBool("hide-placeholders")
	format, _ := cmd.Flags().GetString("format")

	p, err := project.Load(fs.NewOSFileSystem(), viper.GetString("root"), viper.GetString("config"))
	if err != nil {
		return err
	}
	res, err := p.Run(cmd.Context(), viper.GetString("figma-token"))
	if err != nil {
		return err
	}

	tokens := filterTokens(res.Tokens, typeFilter, group, placeholdersOnly, hidePlaceholders)
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Name < tokens[j].Name
	})

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, tokens)
	case "tree":
		return outputTree(out, tokens)
	case "table", "":
		return outputTable(out, tokens)
	default:
		return fmt.Errorf("unknown list format: %s (valid: table, json, tree)", format)
	}
}

func filterTokens(tokens []*token.Token, typeFilter, group string, placeholdersOnly, hidePlaceholders bool) []*token.Token {
	filtered := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if typeFilter != "" && string(tok.Type) != typeFilter {
			continue
		}
		if group != "" && (len(tok.Path) == 0 || tok.Path[0] != group) {
			continue
		}
		if placeholdersOnly && !tok.NeedsNodeData {
			continue
		}
		if hidePlaceholders && tok.NeedsNodeData {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

func displayValue(tok *token.Token) string {
	if tok.NeedsNodeData {
		return "(needs node data)"
	}
	return tok.Value.CSS()
}

func outputTable(w io.Writer, tokens []*token.Token) error {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-40s %-12s %-12s %s\n", tok.Name, tok.Type, tok.Metadata.Source, displayValue(tok))
	}
	return nil
}

func outputJSON(w io.Writer, tokens []*token.Token) error {
	type tokenOutput struct {
		Name        string         `json:"name"`
		Path        []string       `json:"path"`
		Type        string         `json:"type"`
		Value       any            `json:"value,omitempty"`
		Modes       map[string]any `json:"modes,omitempty"`
		Source      string         `json:"source"`
		Description string         `json:"description,omitempty"`
		Placeholder bool           `json:"placeholder,omitempty"`
	}

	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := tokenOutput{
			Name:        tok.Name,
			Path:        tok.Path,
			Type:        string(tok.Type),
			Source:      string(tok.Metadata.Source),
			Description: tok.Description,
			Placeholder: tok.NeedsNodeData,
		}
		o.Value = formatter.ResolvedValue(tok)
		if len(tok.ValuesByMode) > 1 {
			o.Modes = make(map[string]any, len(tok.ValuesByMode))
			for mode, v := range tok.ValuesByMode {
				o.Modes[mode] = formatter.PlainValue(v)
			}
		}
		output = append(output, o)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputTree prints tokens grouped by path segment.
func outputTree(w io.Writer, tokens []*token.Token) error {
	tree := treeprint.New()
	branches := map[string]treeprint.Tree{}
	for _, tok := range tokens {
		parent := tree
		for i, seg := range tok.Path[:max(len(tok.Path)-1, 0)] {
			key := fmt.Sprint(tok.Path[:i+1])
			b, ok := branches[key]
			if !ok {
				b = parent.AddBranch(seg)
				branches[key] = b
			}
			parent = b
		}
		leaf := tok.Name
		if n := len(tok.Path); n > 0 {
			leaf = tok.Path[n-1]
		}
		parent.AddMetaNode(string(tok.Type), leaf+": "+displayValue(tok))
	}
	_, err := io.WriteString(w, tree.String())
	return err
}
