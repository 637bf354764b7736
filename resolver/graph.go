/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "slices"

// DependencyGraph is a directed graph of references between identifiers,
// such as variables aliasing other variables.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}
}

// AddNode adds an identifier with no dependencies.
func (g *DependencyGraph) AddNode(id string) {
	g.nodes[id] = true
}

// AddDependency records that from refers to to. Both become nodes.
func (g *DependencyGraph) AddDependency(from, to string) {
	g.nodes[from] = true
	g.nodes[to] = true
	if slices.Contains(g.dependencies[from], to) {
		return
	}
	g.dependencies[from] = append(g.dependencies[from], to)
	g.dependents[to] = append(g.dependents[to], from)
}

// sortedNodes returns every node in lexical order so traversals are stable.
func (g *DependencyGraph) sortedNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for node := range g.nodes {
		nodes = append(nodes, node)
	}
	slices.Sort(nodes)
	return nodes
}

// Partition orders nodes so that every node comes after its dependencies.
// Nodes that sit on a cycle, or depend on one, cannot be ordered and are
// returned in blocked, sorted.
func (g *DependencyGraph) Partition() (ordered, blocked []string) {
	pending := make(map[string]int, len(g.nodes))
	var ready []string
	for _, node := range g.sortedNodes() {
		pending[node] = len(g.dependencies[node])
		if pending[node] == 0 {
			ready = append(ready, node)
		}
	}

	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		ordered = append(ordered, node)

		var unlocked []string
		for _, dependent := range g.dependents[node] {
			pending[dependent]--
			if pending[dependent] == 0 {
				unlocked = append(unlocked, dependent)
			}
		}
		slices.Sort(unlocked)
		ready = append(ready, unlocked...)
	}

	for _, node := range g.sortedNodes() {
		if pending[node] > 0 {
			blocked = append(blocked, node)
		}
	}
	return ordered, blocked
}
