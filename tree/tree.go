package tree

import (
	"fmt"
	"strings"
)

// AnnotatedTree is a decision tree owning a single root node.
type AnnotatedTree[K, V, T, A any] struct {
	Root Node[K, V, T, A]
}

// New takes a root node and returns a tree with it at its root.
func New[K, V, T, A any](root Node[K, V, T, A]) *AnnotatedTree[K, V, T, A] {
	return &AnnotatedTree[K, V, T, A]{Root: root}
}

// Walk takes a function that takes a node and its depth
// and calls it on every node of the tree, parent nodes
// before their children and left subtrees before right
// ones. The root is at depth 0. If the call to the function
// returns an error, the walk is aborted and the error is
// returned.
func (t *AnnotatedTree[K, V, T, A]) Walk(f func(n Node[K, V, T, A], depth int) error) error {
	if t.Root == nil {
		return nil
	}
	return walk(t.Root, 0, f)
}

func walk[K, V, T, A any](n Node[K, V, T, A], depth int, f func(Node[K, V, T, A], int) error) error {
	err := f(n, depth)
	if err != nil {
		return err
	}
	if s, ok := n.(*Split[K, V, T, A]); ok {
		err = walk(s.Left, depth+1, f)
		if err != nil {
			return err
		}
		return walk(s.Right, depth+1, f)
	}
	return nil
}

// Leaves returns the leaves of the tree from left to right.
func (t *AnnotatedTree[K, V, T, A]) Leaves() []*Leaf[K, V, T, A] {
	var leaves []*Leaf[K, V, T, A]
	t.Walk(func(n Node[K, V, T, A], _ int) error {
		if l, ok := n.(*Leaf[K, V, T, A]); ok {
			leaves = append(leaves, l)
		}
		return nil
	})
	return leaves
}

// Depth returns the number of edges on the longest path from the root
// to a leaf, 0 for a tree made of a single leaf.
func (t *AnnotatedTree[K, V, T, A]) Depth() int {
	var deepest int
	t.Walk(func(_ Node[K, V, T, A], depth int) error {
		if depth > deepest {
			deepest = depth
		}
		return nil
	})
	return deepest
}

func (t *AnnotatedTree[K, V, T, A]) String() string {
	if t.Root == nil {
		return ""
	}
	return subtreeString(t.Root)
}

func subtreeString[K, V, T, A any](n Node[K, V, T, A]) string {
	var result string
	var children []Node[K, V, T, A]
	switch n := n.(type) {
	case *Leaf[K, V, T, A]:
		result = fmt.Sprintf("[%d] { %v }\n", n.Index, n.Distribution)
	case *Split[K, V, T, A]:
		result = fmt.Sprintf("{ %v %v }\n|\n", n.Key, n.Predicate)
		children = []Node[K, V, T, A]{n.Left, n.Right}
	}
	for i, child := range children {
		for j, line := range strings.Split(subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
