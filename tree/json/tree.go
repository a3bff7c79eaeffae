/*
Package json provides injections of annotated decision trees into JSON
documents and JSON text.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	fjson "github.com/pbanos/arbor/feature/json"
	"github.com/pbanos/arbor/injection"
	"github.com/pbanos/arbor/tree"
)

type treeCodec[K, V, T, A any] struct {
	nodes fjson.Codec[tree.Node[K, V, T, A]]
}

/*
TreeCodec takes a Codec for nodes and returns a Codec for trees. A tree
is encoded as its root node, with nothing around it.
*/
func TreeCodec[K, V, T, A any](nodes fjson.Codec[tree.Node[K, V, T, A]]) fjson.Codec[*tree.AnnotatedTree[K, V, T, A]] {
	return &treeCodec[K, V, T, A]{nodes}
}

func (tc *treeCodec[K, V, T, A]) Encode(t *tree.AnnotatedTree[K, V, T, A]) (json.RawMessage, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree cannot be encoded")
	}
	return tc.nodes.Encode(t.Root)
}

func (tc *treeCodec[K, V, T, A]) Decode(data json.RawMessage) (*tree.AnnotatedTree[K, V, T, A], error) {
	root, err := tc.nodes.Decode(data)
	if err != nil {
		return nil, err
	}
	return tree.New(root), nil
}

/*
Text takes a Codec and returns an Injection of the same values into
compact JSON text.
*/
func Text[X any](c fjson.Codec[X]) injection.Injection[X, string] {
	return injection.Compose[X, json.RawMessage, string](c, injection.New(
		func(doc json.RawMessage) (string, error) {
			buf := &bytes.Buffer{}
			err := json.Compact(buf, doc)
			if err != nil {
				return "", err
			}
			return buf.String(), nil
		},
		func(s string) (json.RawMessage, error) {
			if !json.Valid([]byte(s)) {
				return nil, &injection.InversionFailure{Input: s, Target: "JSON document"}
			}
			return json.RawMessage(s), nil
		},
	))
}

/*
WriteTree takes an io.Writer, a tree and a Codec for trees and writes the
tree as JSON onto the io.Writer, followed by a newline.
An error is returned if the tree cannot be encoded or written
onto the io.Writer.
*/
func WriteTree[K, V, T, A any](w io.Writer, t *tree.AnnotatedTree[K, V, T, A], c fjson.Codec[*tree.AnnotatedTree[K, V, T, A]]) error {
	doc, err := c.Encode(t)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(doc)
}

/*
ReadTree takes an io.Reader and a Codec for trees and decodes a tree from
the first JSON document read from the io.Reader.
An error is returned if the JSON cannot be read from the io.Reader or
decoded into a tree.
*/
func ReadTree[K, V, T, A any](r io.Reader, c fjson.Codec[*tree.AnnotatedTree[K, V, T, A]]) (*tree.AnnotatedTree[K, V, T, A], error) {
	var doc json.RawMessage
	err := json.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "reading JSON tree")
	}
	return c.Decode(doc)
}
