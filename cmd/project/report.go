/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokman/pipeline"
	"bennypowers.dev/tokman/token"
	"bennypowers.dev/tokman/transform"
	"bennypowers.dev/tokman/validator"
)

// Terminal styles. Lipgloss degrades colors based on terminal capabilities.
var (
	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// UseColors reports whether styled output should be written.
// Colors are disabled by NO_COLOR.
func UseColors() bool {
	return os.Getenv("NO_COLOR") == ""
}

// Report prints pipeline results.
type Report struct {
	W      io.Writer
	Colors bool
}

func (r Report) style(s lipgloss.Style, text string) string {
	if !r.Colors {
		return text
	}
	return s.Render(text)
}

// SourceLabel renders a source kind for humans, e.g. "Figma-Style".
func SourceLabel(s token.Source) string {
	return cases.Title(language.English).String(string(s))
}

// Summary prints token counts per source kind, conflicts, placeholders and
// warnings.
func (r Report) Summary(res *pipeline.Result) {
	counts := make(map[token.Source]int)
	for _, tok := range res.Tokens {
		counts[tok.Metadata.Source]++
	}
	fmt.Fprintln(r.W, r.style(StyleHeader, "Sources"))
	for _, s := range token.Sources() {
		if counts[s] > 0 {
			fmt.Fprintf(r.W, "  %-12s %d tokens\n", SourceLabel(s), counts[s])
		}
	}
	fmt.Fprintf(r.W, "Resolved %d tokens with %s (%d conflicts)\n", len(res.Tokens), res.Policy, len(res.Conflicts))

	if len(res.Conflicts) > 0 {
		fmt.Fprintln(r.W, r.style(StyleWarning, "Conflicts"))
		for _, c := range res.Conflicts {
			fmt.Fprintf(r.W, "  %s: kept %s, dropped %s\n", c.Name, origin(c.Kept), origin(c.Dropped))
		}
	}

	if len(res.Placeholders) > 0 {
		fmt.Fprintln(r.W, r.style(StyleWarning, "Placeholders"))
		for _, tok := range res.Placeholders {
			fmt.Fprintf(r.W, "  %s %s\n", tok.Name, r.style(StyleMuted, "("+string(tok.Type)+", needs node data)"))
		}
	}

	r.Diagnostics(res.Diagnostics.Warnings())
}

// Diagnostics prints transform diagnostics.
func (r Report) Diagnostics(diags transform.Diagnostics) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintln(r.W, r.style(StyleWarning, "Warnings"))
	for _, d := range diags {
		fmt.Fprintf(r.W, "  %s %s: %s\n", SourceLabel(d.Source), d.Record, d.Message)
	}
}

// Problems prints validation errors.
func (r Report) Problems(errs []validator.ValidationError) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(r.W, r.style(StyleError, "Problems"))
	for _, e := range errs {
		fmt.Fprintf(r.W, "  %s\n", e.Error())
	}
}

// Written prints the written output paths.
func (r Report) Written(paths []string) {
	for _, p := range paths {
		fmt.Fprintf(r.W, "%s %s\n", r.style(StyleSuccess, "wrote"), p)
	}
}

// origin describes where a token came from, e.g. "stylesheet (tokens.css:2)".
func origin(tok *token.Token) string {
	s := string(tok.Metadata.Source)
	if m := tok.Metadata.Stylesheet; m != nil {
		if m.Line > 0 {
			return fmt.Sprintf("%s (%s:%d)", s, m.File, m.Line)
		}
		return fmt.Sprintf("%s (%s)", s, m.File)
	}
	return s
}
