/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"slices"
	"testing"

	"bennypowers.dev/tokman/resolver"
)

func chain(edges ...[2]string) *resolver.DependencyGraph {
	g := resolver.NewDependencyGraph()
	for _, e := range edges {
		g.AddDependency(e[0], e[1])
	}
	return g
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	graph := chain([2]string{"b", "a"}, [2]string{"c", "b"})

	ordered, blocked := graph.Partition()
	if want := []string{"a", "b", "c"}; !slices.Equal(ordered, want) {
		t.Errorf("ordered = %v, want %v", ordered, want)
	}
	if len(blocked) != 0 {
		t.Errorf("blocked = %v, want none", blocked)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	graph := chain([2]string{"a", "c"}, [2]string{"b", "a"}, [2]string{"c", "b"})

	ordered, blocked := graph.Partition()
	if len(ordered) != 0 {
		t.Errorf("ordered = %v, want none", ordered)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(blocked, want) {
		t.Errorf("blocked = %v, want %v", blocked, want)
	}
}

func TestDependencyGraph_Partition(t *testing.T) {
	graph := chain(
		[2]string{"alias", "base"},
		[2]string{"loop-a", "loop-b"},
		[2]string{"loop-b", "loop-a"},
		[2]string{"downstream", "loop-a"},
	)
	graph.AddNode("standalone")

	ordered, blocked := graph.Partition()
	if want := []string{"base", "standalone", "alias"}; !slices.Equal(ordered, want) {
		t.Errorf("ordered = %v, want %v", ordered, want)
	}
	if want := []string{"downstream", "loop-a", "loop-b"}; !slices.Equal(blocked, want) {
		t.Errorf("blocked = %v, want %v", blocked, want)
	}
}

func TestDependencyGraph_DuplicateEdge(t *testing.T) {
	graph := chain([2]string{"b", "a"}, [2]string{"b", "a"}, [2]string{"c", "a"})

	ordered, _ := graph.Partition()
	if want := []string{"a", "b", "c"}; !slices.Equal(ordered, want) {
		t.Errorf("ordered = %v, want %v", ordered, want)
	}
}
