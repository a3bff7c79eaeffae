package tree

import (
	"github.com/pbanos/arbor/feature"
)

/*
Node is a node of an annotated decision tree: either a *Leaf or a *Split.

It is parameterised by the type K of the feature keys tested on splits, the
type V of the feature values predicates apply to, the type T of the
distributions held by leaves and the type A of the annotations attached to
every node.
*/
type Node[K, V, T, A any] interface {
	// NodeAnnotation returns the annotation attached to the node
	NodeAnnotation() A
	node(K, V, T)
}

/*
Leaf is a terminal node of the tree
*/
type Leaf[K, V, T, A any] struct {
	// Identifies the leaf within its tree
	Index int
	// The distribution of the target for samples reaching the leaf
	Distribution T
	// Auxiliary metadata, not needed for prediction
	Annotation A
}

/*
Split is a node routing samples to one of its two subtrees
*/
type Split[K, V, T, A any] struct {
	// The feature the predicate is tested on
	Key K
	// Samples satisfying the predicate go to the left subtree,
	// the rest to the right one
	Predicate feature.Predicate[V]
	Left      Node[K, V, T, A]
	Right     Node[K, V, T, A]
	// Auxiliary metadata, not needed for prediction
	Annotation A
}

/*
Unit is the annotation type of trees that carry no annotations. Codecs
omit annotations of this type entirely.
*/
type Unit struct{}

func (l *Leaf[K, V, T, A]) NodeAnnotation() A {
	return l.Annotation
}

func (s *Split[K, V, T, A]) NodeAnnotation() A {
	return s.Annotation
}

func (*Leaf[K, V, T, A]) node(K, V, T)  {}
func (*Split[K, V, T, A]) node(K, V, T) {}
