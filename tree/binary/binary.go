/*
Package binary provides injections of annotated decision trees into bytes,
using a structural Format such as MessagePack or CBOR, and into text by
further encoding those bytes in base64.

Feature keys, values, distributions and annotations are encoded by the
Format from their exported fields, so types with unexported state must
implement the Format's marshaling interfaces, as feature.Dispatched does.
*/
package binary

import (
	"fmt"

	"github.com/pbanos/arbor/injection"
	"github.com/pbanos/arbor/tree"
)

type treeBytes[K, V, T, A any] struct {
	format Format
}

/*
Bytes takes a Format and returns an Injection of trees into the bytes
that Format produces. Decoding fails with an error matching
injection.ErrMalformed when the bytes are not a tree encoded with
the same Format and type parameters.
*/
func Bytes[K, V, T, A any](format Format) injection.Injection[*tree.AnnotatedTree[K, V, T, A], []byte] {
	return &treeBytes[K, V, T, A]{format}
}

func (tb *treeBytes[K, V, T, A]) Encode(t *tree.AnnotatedTree[K, V, T, A]) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree cannot be encoded")
	}
	wn, err := toWireNode(t.Root)
	if err != nil {
		return nil, err
	}
	data, err := tb.format.Encode(wn)
	if err != nil {
		return nil, fmt.Errorf("encoding tree as %s: %w", tb.format.Name(), err)
	}
	return data, nil
}

func (tb *treeBytes[K, V, T, A]) Decode(data []byte) (*tree.AnnotatedTree[K, V, T, A], error) {
	wn := &wireNode[K, V, T, A]{}
	err := tb.format.Decode(data, wn)
	if err != nil {
		return nil, injection.Malformed("decoding %s tree: %v", tb.format.Name(), err)
	}
	root, err := wn.node()
	if err != nil {
		return nil, err
	}
	return tree.New(root), nil
}

// Text takes an Injection of values into bytes and returns an Injection
// of the same values into base64 text.
func Text[X any](bytes injection.Injection[X, []byte]) injection.Injection[X, string] {
	return injection.Compose(bytes, injection.Base64())
}
