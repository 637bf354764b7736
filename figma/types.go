/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import "bennypowers.dev/tokman/transform"

// VariablesResponse is the body of GET /v1/files/:key/variables/local.
type VariablesResponse struct {
	Status int  `json:"status"`
	Error  bool `json:"error"`
	Meta   struct {
		Variables           map[string]Variable           `json:"variables"`
		VariableCollections map[string]VariableCollection `json:"variableCollections"`
	} `json:"meta"`
}

// Variable is a local variable as returned by the API.
type Variable struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Key                  string            `json:"key"`
	VariableCollectionID string            `json:"variableCollectionId"`
	ResolvedType         string            `json:"resolvedType"`
	ValuesByMode         map[string]any    `json:"valuesByMode"`
	Description          string            `json:"description"`
	HiddenFromPublishing bool              `json:"hiddenFromPublishing"`
	Scopes               []string          `json:"scopes"`
	CodeSyntax           map[string]string `json:"codeSyntax"`
	Remote               bool              `json:"remote"`
	DeletedButReferenced bool              `json:"deletedButReferenced"`
}

// VariableCollection is a local variable collection as returned by the API.
type VariableCollection struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Key                  string           `json:"key"`
	Modes                []transform.Mode `json:"modes"`
	DefaultModeID        string           `json:"defaultModeId"`
	Remote               bool             `json:"remote"`
	HiddenFromPublishing bool             `json:"hiddenFromPublishing"`
	VariableIDs          []string         `json:"variableIds"`
}

// StylesResponse is the body of GET /v1/files/:key/styles.
type StylesResponse struct {
	Status int  `json:"status"`
	Error  bool `json:"error"`
	Meta   struct {
		Styles []transform.StyleRecord `json:"styles"`
	} `json:"meta"`
}

// NodesResponse is the body of GET /v1/files/:key/nodes.
// Entries for ids that do not exist are null.
type NodesResponse struct {
	Name  string                `json:"name"`
	Nodes map[string]*NodeEntry `json:"nodes"`
}

// NodeEntry wraps one requested node.
type NodeEntry struct {
	Document transform.Node `json:"document"`
}

// aliasType marks a variable value that refers to another variable.
const aliasType = "VARIABLE_ALIAS"

// alias returns the target id when v is a VARIABLE_ALIAS value.
func alias(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok || m["type"] != aliasType {
		return "", false
	}
	id, ok := m["id"].(string)
	return id, ok && id != ""
}
