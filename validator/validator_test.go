/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"strings"
	"testing"

	"bennypowers.dev/tokman/testutil"
	"bennypowers.dev/tokman/token"
	"bennypowers.dev/tokman/validator"
)

func hasMessage(errors []validator.ValidationError, substr string) bool {
	for _, err := range errors {
		if strings.Contains(err.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidate_Valid(t *testing.T) {
	errors := validator.Validate(testutil.SampleTokens(), validator.Options{})
	if len(errors) != 0 {
		t.Errorf("expected no errors for sample tokens, got %d: %v", len(errors), errors)
	}
}

func TestValidate_StrictPlaceholders(t *testing.T) {
	errors := validator.Validate(testutil.SampleTokens(), validator.Options{Strict: true})
	if len(errors) != 1 {
		t.Fatalf("expected one placeholder error, got %d: %v", len(errors), errors)
	}
	if errors[0].Path != "typography-heading" || !strings.Contains(errors[0].Message, "placeholder") {
		t.Errorf("unexpected error: %v", errors[0])
	}
}

func TestValidate_Duplicate(t *testing.T) {
	tokens := []*token.Token{
		{Name: "a", Path: []string{"a"}, Type: token.TypeNumber, Value: token.Number(1), Metadata: token.Metadata{Source: token.SourceFigma}},
		{Name: "a", Path: []string{"a"}, Type: token.TypeNumber, Value: token.Number(2), Metadata: token.Metadata{Source: token.SourceStylesheet}},
	}
	errors := validator.Validate(tokens, validator.Options{})
	if !hasMessage(errors, "duplicate name (also from figma)") {
		t.Errorf("expected duplicate error, got %v", errors)
	}
}

func TestValidate_Broken(t *testing.T) {
	one := token.Number(1)
	tests := []struct {
		name    string
		tok     *token.Token
		message string
	}{
		{"empty name", &token.Token{Path: []string{"a"}, Type: token.TypeNumber, Value: one, Metadata: token.Metadata{Source: token.SourceFigma}}, "empty name"},
		{"empty path", &token.Token{Name: "a", Type: token.TypeNumber, Value: one, Metadata: token.Metadata{Source: token.SourceFigma}}, "empty path"},
		{"empty segment", &token.Token{Name: "a", Path: []string{"a", ""}, Type: token.TypeNumber, Value: one, Metadata: token.Metadata{Source: token.SourceFigma}}, "empty segment"},
		{"no value", &token.Token{Name: "a", Path: []string{"a"}, Type: token.TypeNumber, Metadata: token.Metadata{Source: token.SourceFigma}}, "no value"},
		{"kind mismatch", &token.Token{Name: "a", Path: []string{"a"}, Type: token.TypeColor, Value: one, Metadata: token.Metadata{Source: token.SourceFigma}}, "does not match"},
		{"unknown source", &token.Token{Name: "a", Path: []string{"a"}, Type: token.TypeNumber, Value: one, Metadata: token.Metadata{Source: "sketch"}}, "unknown source"},
		{
			"missing default mode",
			&token.Token{
				Name: "a", Path: []string{"a"}, Type: token.TypeNumber, Value: one,
				DefaultMode:  "Light",
				ValuesByMode: map[string]token.Value{"Dark": one},
				Metadata:     token.Metadata{Source: token.SourceFigma},
			},
			`default mode "Light" has no value`,
		},
		{
			"default differs",
			&token.Token{
				Name: "a", Path: []string{"a"}, Type: token.TypeNumber, Value: one,
				DefaultMode:  "Light",
				ValuesByMode: map[string]token.Value{"Light": token.Number(2)},
				Metadata:     token.Metadata{Source: token.SourceFigma},
			},
			"differs from default mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := validator.Validate([]*token.Token{tt.tok}, validator.Options{})
			if !hasMessage(errors, tt.message) {
				t.Errorf("expected error containing %q, got %v", tt.message, errors)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &validator.ValidationError{
		FilePath:   "tokens.css",
		Path:       "color-primary",
		Message:    "token has no value",
		Suggestion: "check the declaration",
	}

	expected := "tokens.css: color-primary: token has no value (check the declaration)"
	if got := err.Error(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	bare := &validator.ValidationError{Message: "nil token"}
	if got := bare.Error(); got != "nil token" {
		t.Errorf("expected %q, got %q", "nil token", got)
	}
}
