/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokman/token"
	"bennypowers.dev/tokman/transform"
)

func themeCollection() *transform.Collection {
	return &transform.Collection{
		ID:            "VariableCollectionId:1:0",
		Name:          "Theme",
		Modes:         []transform.Mode{{ID: "1:0", Name: "Light"}, {ID: "1:1", Name: "Dark"}},
		DefaultModeID: "1:0",
	}
}

func rgba(r, g, b int, a float64) token.Value {
	return token.Color{RGBA: &token.RGBA{R: r, G: g, B: b, A: a}}
}

func TestVariables_DefaultModeSelection(t *testing.T) {
	light := rgba(255, 255, 255, 1)
	dark := rgba(0, 0, 0, 1)
	records := []transform.VariableRecord{{
		ID:           "VariableID:1:2",
		Name:         "Color/Background",
		Collection:   themeCollection(),
		ResolvedType: "COLOR",
		ValuesByMode: map[string]token.Value{"Light": light, "Dark": dark},
		Description:  "Page background",
		Scopes:       []string{"FRAME_FILL"},
	}}

	tokens, diags := transform.Variables(records, transform.Options{})
	require.Len(t, tokens, 1)
	assert.Empty(t, diags)

	tok := tokens[0]
	assert.Equal(t, "color-background", tok.Name)
	assert.Equal(t, []string{"color", "background"}, tok.Path)
	assert.Equal(t, token.TypeColor, tok.Type)
	assert.Equal(t, "Light", tok.DefaultMode)
	assert.True(t, token.Equal(light, tok.Value))
	assert.Len(t, tok.ValuesByMode, 2)
	assert.True(t, token.Equal(dark, tok.ValuesByMode["Dark"]))
	assert.True(t, token.Equal(tok.Value, tok.ValuesByMode[tok.DefaultMode]))
	assert.Equal(t, "Page background", tok.Description)

	require.NotNil(t, tok.Metadata.Variable)
	assert.Equal(t, token.SourceFigma, tok.Metadata.Source)
	assert.Equal(t, "Color/Background", tok.Metadata.OriginalName)
	assert.Equal(t, "VariableID:1:2", tok.Metadata.Variable.ID)
	assert.Equal(t, "Theme", tok.Metadata.Variable.CollectionName)
}

func TestVariables_FallbackFollowsCollectionModeOrder(t *testing.T) {
	c := themeCollection()
	c.Modes = append(c.Modes, transform.Mode{ID: "1:2", Name: "Contrast"})
	c.DefaultModeID = "1:9"

	records := []transform.VariableRecord{{
		Name:         "Spacing/Small",
		Collection:   c,
		ResolvedType: "FLOAT",
		ValuesByMode: map[string]token.Value{
			"Contrast": token.Number(6),
			"Dark":     token.Number(4),
		},
	}}

	for range 20 {
		tokens, diags := transform.Variables(records, transform.Options{})
		require.Len(t, tokens, 1)
		assert.Equal(t, "Dark", tokens[0].DefaultMode)
		assert.Equal(t, token.Number(4), tokens[0].Value)
		assert.Equal(t, token.TypeNumber, tokens[0].Type)
		require.Len(t, diags, 1)
		assert.Equal(t, transform.SeverityInfo, diags[0].Severity)
	}
}

func TestVariables_FallbackToSortedUnknownModes(t *testing.T) {
	c := themeCollection()
	records := []transform.VariableRecord{{
		Name:         "Flag",
		Collection:   c,
		ResolvedType: "BOOLEAN",
		ValuesByMode: map[string]token.Value{
			"Zeta":  token.Boolean(false),
			"Alpha": token.Boolean(true),
		},
	}}

	tokens, _ := transform.Variables(records, transform.Options{})
	require.Len(t, tokens, 1)
	assert.Equal(t, "Alpha", tokens[0].DefaultMode)
	assert.Equal(t, token.Boolean(true), tokens[0].Value)
}

func TestVariables_SkipsMalformedRecords(t *testing.T) {
	records := []transform.VariableRecord{
		{Name: "No/Collection", ResolvedType: "STRING", ValuesByMode: map[string]token.Value{"Light": token.String("x")}},
		{Name: "No/Modes", Collection: themeCollection(), ResolvedType: "STRING"},
		{Name: "Nil/Modes", Collection: themeCollection(), ResolvedType: "STRING", ValuesByMode: map[string]token.Value{"Light": nil}},
		{Name: " / ", Collection: themeCollection(), ResolvedType: "STRING", ValuesByMode: map[string]token.Value{"Light": token.String("x")}},
		{Name: "Kept", Collection: themeCollection(), ResolvedType: "STRING", ValuesByMode: map[string]token.Value{"Light": token.String("x")}},
	}

	tokens, diags := transform.Variables(records, transform.Options{})
	require.Len(t, tokens, 1)
	assert.Equal(t, "kept", tokens[0].Name)
	assert.Len(t, diags.Warnings(), 4)
	for _, d := range diags {
		assert.Equal(t, token.SourceFigma, d.Source)
	}
}

func TestVariables_Separator(t *testing.T) {
	records := []transform.VariableRecord{{
		Name:         "Brand/Primary Color",
		Collection:   themeCollection(),
		ResolvedType: "STRING",
		ValuesByMode: map[string]token.Value{"Light": token.String("x")},
	}}

	tokens, _ := transform.Variables(records, transform.Options{Separator: "_"})
	require.Len(t, tokens, 1)
	assert.Equal(t, "brand_primary_color", tokens[0].Name)
	assert.Equal(t, []string{"brand", "primary_color"}, tokens[0].Path)
}

func TestVariables_UnknownResolvedTypeIsString(t *testing.T) {
	records := []transform.VariableRecord{{
		Name:         "Misc",
		Collection:   themeCollection(),
		ResolvedType: "SOMETHING_NEW",
		ValuesByMode: map[string]token.Value{"Light": token.String("x")},
	}}

	tokens, _ := transform.Variables(records, transform.Options{})
	require.Len(t, tokens, 1)
	assert.Equal(t, token.TypeString, tokens[0].Type)
}
