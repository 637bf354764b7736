/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"

	"bennypowers.dev/tokman/token"
)

// Severity classifies a diagnostic.
type Severity string

const (
	// SeverityWarning marks a record that was skipped.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks a record that produced a placeholder or partial output.
	SeverityInfo Severity = "info"
)

// Diagnostic describes a record that could not be fully transformed.
type Diagnostic struct {
	Severity Severity     `json:"severity"`
	Source   token.Source `json:"source"`
	// Record is the source identifier of the offending record.
	Record  string `json:"record"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s %q: %s", d.Severity, d.Source, d.Record, d.Message)
}

// Diagnostics collects diagnostics in the order they were raised.
type Diagnostics []Diagnostic

// Warnf appends a warning.
func (ds *Diagnostics) Warnf(source token.Source, record, format string, args ...any) {
	*ds = append(*ds, Diagnostic{
		Severity: SeverityWarning,
		Source:   source,
		Record:   record,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof appends an informational diagnostic.
func (ds *Diagnostics) Infof(source token.Source, record, format string, args ...any) {
	*ds = append(*ds, Diagnostic{
		Severity: SeverityInfo,
		Source:   source,
		Record:   record,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnings returns only the warning-level diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}
