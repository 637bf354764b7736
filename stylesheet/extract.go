/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stylesheet extracts custom property declarations from CSS.
package stylesheet

import (
	"fmt"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"

	"bennypowers.dev/tokman/fs"
	"bennypowers.dev/tokman/internal/logger"
	"bennypowers.dev/tokman/transform"
)

// Extract returns every custom property declaration in src, in document
// order, with its value normalized. Declarations inside at-rules and
// nested rules are included.
func Extract(src []byte, file string) ([]transform.Property, error) {
	parser := ts.NewParser()
	if parser == nil {
		return nil, fmt.Errorf("failed to create parser")
	}
	defer parser.Close()

	if err := parser.SetLanguage(ts.NewLanguage(tree_sitter_css.Language())); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parsing %s: parser returned nil tree", file)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		logger.Debug("%s: parse tree contains errors", file)
	}

	var props []transform.Property
	walk(root, func(n *ts.Node) {
		if n.Kind() != "declaration" {
			return
		}
		if p, ok := declaration(n, src); ok {
			p.File = file
			props = append(props, p)
		}
	})
	return props, nil
}

// ExtractFiles reads and extracts each file in order.
func ExtractFiles(fsys fs.FileSystem, paths []string) ([]transform.Property, error) {
	var props []transform.Property
	for _, path := range paths {
		src, err := fsys.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet %s: %w", path, err)
		}
		found, err := Extract(src, path)
		if err != nil {
			return nil, err
		}
		logger.Debug("%s: %d custom properties", path, len(found))
		props = append(props, found...)
	}
	return props, nil
}

func walk(n *ts.Node, visit func(*ts.Node)) {
	visit(n)
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil {
			walk(child, visit)
		}
	}
}

// declaration reads a custom property from a declaration node.
// The value is taken from the source bytes between the colon and the
// terminating semicolon, since the grammar does not model custom property
// values as a single node.
func declaration(n *ts.Node, src []byte) (transform.Property, bool) {
	var (
		name       string
		valueStart uint
		valueEnd   = n.EndByte()
		sawColon   bool
	)
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "property_name":
			name = child.Utf8Text(src)
		case ":":
			if !sawColon {
				sawColon = true
				valueStart = child.EndByte()
			}
		case ";":
			valueEnd = child.StartByte()
		}
	}
	if !strings.HasPrefix(name, "--") || !sawColon || valueEnd < valueStart {
		return transform.Property{}, false
	}
	return transform.Property{
		Name:  name,
		Value: Normalize(string(src[valueStart:valueEnd])),
		Line:  int(n.StartPosition().Row) + 1,
	}, true
}
