package json

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/arbor/feature"
	fjson "github.com/pbanos/arbor/feature/json"
	"github.com/pbanos/arbor/injection"
	"github.com/pbanos/arbor/tree"
)

// ErrNoAnnotationCodec is returned by node codecs that must encode or
// decode annotations but were given no codec for them.
var ErrNoAnnotationCodec = errors.New("no codec for node annotations")

/*
AnnotationCodec tells a node codec how to handle node annotations.
It is obtained from Annotated or Unannotated. Node codecs built with
its zero value, or with Annotated(nil), fail with ErrNoAnnotationCodec
on every node.
*/
type AnnotationCodec[A any] struct {
	codec fjson.Codec[A]
	elide bool
}

/*
Annotated takes a non-nil Codec for annotations and returns an
AnnotationCodec that makes the node codec always write the
"annotation" field and require it when decoding.
*/
func Annotated[A any](c fjson.Codec[A]) AnnotationCodec[A] {
	return AnnotationCodec[A]{codec: c}
}

/*
Unannotated returns an AnnotationCodec for trees without annotations: the
"annotation" field is never written and never read, decoded nodes get the
tree.Unit annotation.
*/
func Unannotated() AnnotationCodec[tree.Unit] {
	return AnnotationCodec[tree.Unit]{elide: true}
}

// Elided returns whether annotations are left out of the documents.
func (ac AnnotationCodec[A]) Elided() bool {
	return ac.elide
}

type node struct {
	Leaf         *int            `json:"leaf,omitempty"`
	Distribution json.RawMessage `json:"distribution,omitempty"`
	Key          json.RawMessage `json:"key,omitempty"`
	Predicate    json.RawMessage `json:"predicate,omitempty"`
	Left         json.RawMessage `json:"left,omitempty"`
	Right        json.RawMessage `json:"right,omitempty"`
	Annotation   json.RawMessage `json:"annotation,omitempty"`
}

type nodeCodec[K, V, T, A any] struct {
	keys        fjson.Codec[K]
	predicates  fjson.Codec[feature.Predicate[V]]
	targets     fjson.Codec[T]
	annotations AnnotationCodec[A]
}

/*
NodeCodec takes codecs for feature keys, predicates, distributions and
annotations and returns a Codec for tree nodes.

A leaf is encoded as a JSON object with the following fields:
  - "leaf": the index of the leaf
  - "distribution": the encoded distribution
  - "annotation": the encoded annotation, unless annotations are elided

A split is encoded as a JSON object with the following fields:
  - "key": the encoded key of the tested feature
  - "predicate": the encoded predicate
  - "left" and "right": the encoded subtrees
  - "annotation": the encoded annotation, unless annotations are elided

Documents with a "leaf" field are decoded as leaves, any other as splits.
The absence of a required field fails with a *feature/json.MissingFieldError.
*/
func NodeCodec[K, V, T, A any](keys fjson.Codec[K], predicates fjson.Codec[feature.Predicate[V]], targets fjson.Codec[T], annotations AnnotationCodec[A]) fjson.Codec[tree.Node[K, V, T, A]] {
	return &nodeCodec[K, V, T, A]{keys, predicates, targets, annotations}
}

func (nc *nodeCodec[K, V, T, A]) Encode(n tree.Node[K, V, T, A]) (json.RawMessage, error) {
	jn := &node{}
	var err error
	switch n := n.(type) {
	case *tree.Leaf[K, V, T, A]:
		index := n.Index
		jn.Leaf = &index
		jn.Distribution, err = nc.targets.Encode(n.Distribution)
		if err != nil {
			return nil, err
		}
	case *tree.Split[K, V, T, A]:
		jn.Key, err = nc.keys.Encode(n.Key)
		if err != nil {
			return nil, err
		}
		jn.Predicate, err = nc.predicates.Encode(n.Predicate)
		if err != nil {
			return nil, err
		}
		jn.Left, err = nc.Encode(n.Left)
		if err != nil {
			return nil, err
		}
		jn.Right, err = nc.Encode(n.Right)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown type of tree.Node %T", n)
	}
	if !nc.annotations.elide {
		if nc.annotations.codec == nil {
			return nil, errors.WithStack(ErrNoAnnotationCodec)
		}
		jn.Annotation, err = nc.annotations.codec.Encode(n.NodeAnnotation())
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(jn)
}

func (nc *nodeCodec[K, V, T, A]) Decode(data json.RawMessage) (tree.Node[K, V, T, A], error) {
	jn := &node{}
	err := json.Unmarshal(data, jn)
	if err != nil {
		return nil, injection.Malformed("unmarshalling node %s: %v", data, err)
	}
	if jn.Leaf != nil {
		return nc.decodeLeaf(data, jn)
	}
	return nc.decodeSplit(data, jn)
}

func (nc *nodeCodec[K, V, T, A]) decodeLeaf(data json.RawMessage, jn *node) (tree.Node[K, V, T, A], error) {
	if jn.Distribution == nil {
		return nil, &fjson.MissingFieldError{Field: "distribution", Document: string(data)}
	}
	d, err := nc.targets.Decode(jn.Distribution)
	if err != nil {
		return nil, err
	}
	a, err := nc.decodeAnnotation(data, jn)
	if err != nil {
		return nil, err
	}
	return &tree.Leaf[K, V, T, A]{Index: *jn.Leaf, Distribution: d, Annotation: a}, nil
}

func (nc *nodeCodec[K, V, T, A]) decodeSplit(data json.RawMessage, jn *node) (tree.Node[K, V, T, A], error) {
	for _, rf := range []struct {
		name  string
		value json.RawMessage
	}{
		{"key", jn.Key},
		{"predicate", jn.Predicate},
		{"left", jn.Left},
		{"right", jn.Right},
	} {
		if rf.value == nil {
			return nil, &fjson.MissingFieldError{Field: rf.name, Document: string(data)}
		}
	}
	s := &tree.Split[K, V, T, A]{}
	var err error
	s.Key, err = nc.keys.Decode(jn.Key)
	if err != nil {
		return nil, err
	}
	s.Predicate, err = nc.predicates.Decode(jn.Predicate)
	if err != nil {
		return nil, err
	}
	s.Left, err = nc.Decode(jn.Left)
	if err != nil {
		return nil, err
	}
	s.Right, err = nc.Decode(jn.Right)
	if err != nil {
		return nil, err
	}
	s.Annotation, err = nc.decodeAnnotation(data, jn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (nc *nodeCodec[K, V, T, A]) decodeAnnotation(data json.RawMessage, jn *node) (A, error) {
	var a A
	if nc.annotations.elide {
		return a, nil
	}
	if nc.annotations.codec == nil {
		return a, errors.WithStack(ErrNoAnnotationCodec)
	}
	if jn.Annotation == nil {
		return a, &fjson.MissingFieldError{Field: "annotation", Document: string(data)}
	}
	return nc.annotations.codec.Decode(jn.Annotation)
}
