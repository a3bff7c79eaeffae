package tree

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/arbor/injection"
)

// ErrTreeNotFound is returned when loading a name with no tree stored under it.
var ErrTreeNotFound = errors.New("tree not found")

/*
Archive saves trees to and loads them from a Store, using an injection
into bytes to encode and decode them.
*/
type Archive[K, V, T, A any] struct {
	Store
	Codec injection.Injection[*AnnotatedTree[K, V, T, A], []byte]
}

// NewArchive takes a Store and an injection of trees into bytes and
// returns an Archive that uses them.
func NewArchive[K, V, T, A any](s Store, codec injection.Injection[*AnnotatedTree[K, V, T, A], []byte]) *Archive[K, V, T, A] {
	return &Archive[K, V, T, A]{s, codec}
}

// Save takes a context, a name and a tree and stores the encoded tree
// under the name. It returns an error if the tree cannot be encoded or
// stored.
func (a *Archive[K, V, T, A]) Save(ctx context.Context, name string, t *AnnotatedTree[K, V, T, A]) error {
	data, err := a.Codec.Encode(t)
	if err != nil {
		return errors.Wrapf(err, "saving tree %q: encoding tree", name)
	}
	err = a.Store.Put(ctx, name, data)
	if err != nil {
		return errors.Wrapf(err, "saving tree %q", name)
	}
	return nil
}

// Load takes a context and a name and returns the tree stored under
// the name. It returns an error matching ErrTreeNotFound if there is
// no such tree, or any error from the store or the decoding.
func (a *Archive[K, V, T, A]) Load(ctx context.Context, name string) (*AnnotatedTree[K, V, T, A], error) {
	data, err := a.Store.Get(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading tree %q", name)
	}
	if data == nil {
		return nil, errors.Wrapf(ErrTreeNotFound, "loading tree %q", name)
	}
	t, err := a.Codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading tree %q: decoding tree", name)
	}
	return t, nil
}
