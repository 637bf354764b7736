/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokman/schema"
)

// ValidateDocument checks that a DTCG document matches the expected schema
// version. Returns errors for:
//   - structured colors or dimensions in a draft document
//   - string colors in a 2025.10 document
//   - a $schema that names another version
func ValidateDocument(content []byte, version schema.Version, filePath string) []ValidationError {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	var errors []ValidationError
	if declared, ok := data["$schema"].(string); ok && declared != version.URL() {
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       "$schema",
			Message:    fmt.Sprintf("document declares %s", declared),
			Suggestion: fmt.Sprintf("expected %s", version),
		})
	}
	return append(errors, validateGroup(data, version, filePath, nil)...)
}

func validateGroup(data map[string]any, version schema.Version, filePath string, path []string) []ValidationError {
	var errors []ValidationError

	for key, value := range data {
		if strings.HasPrefix(key, "$") {
			continue
		}
		valueMap, ok := value.(map[string]any)
		if !ok {
			continue
		}
		currentPath := append(path[:len(path):len(path)], key)
		pathStr := strings.Join(currentPath, ".")

		if raw, isToken := valueMap["$value"]; isToken {
			if err := validateValue(valueMap["$type"], raw, version); err != nil {
				err.FilePath = filePath
				err.Path = pathStr
				errors = append(errors, *err)
			}
		}

		// Recurse into nested objects
		errors = append(errors, validateGroup(valueMap, version, filePath, currentPath)...)
	}

	return errors
}

func validateValue(typ, raw any, version schema.Version) *ValidationError {
	_, isMap := raw.(map[string]any)
	str, isString := raw.(string)

	switch typ {
	case "color":
		if version == schema.Draft && isMap {
			return &ValidationError{
				Message:    "structured color values are not valid in draft schema",
				Suggestion: "use string color format like \"#RRGGBB\" or update $schema to 2025.10",
			}
		}
		if version == schema.V2025_10 && isString {
			return &ValidationError{
				Message:    fmt.Sprintf("string color value %q is not valid in 2025.10 schema", str),
				Suggestion: "use structured color format with colorSpace and components",
			}
		}
	case "dimension":
		if version == schema.Draft && isMap {
			return &ValidationError{
				Message:    "structured dimension values are not valid in draft schema",
				Suggestion: "use string dimensions like \"16px\" or update $schema to 2025.10",
			}
		}
	}
	return nil
}
