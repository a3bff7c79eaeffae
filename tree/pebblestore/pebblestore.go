/*
Package pebblestore provides an implementation of tree.Store
on a pebble key-value database.
*/
package pebblestore

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/pbanos/arbor/tree"
)

// keyPrefix keeps tree keys apart from anything else sharing the database
var keyPrefix = []byte("tree/")

type pebbleStore struct {
	db *pebble.DB
}

/*
Open takes the path to a directory and returns a tree.Store on the
pebble database in it, which is created if it does not exist.
*/
func Open(path string, opts *pebble.Options) (tree.Store, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening pebble database at %s", path)
	}
	return New(db), nil
}

// New takes an open pebble database and returns a tree.Store on it.
// Closing the store closes the database.
func New(db *pebble.DB) tree.Store {
	return &pebbleStore{db}
}

func (ps *pebbleStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := ps.db.Set(key(name), data, pebble.Sync)
	if err != nil {
		return errors.Wrapf(err, "storing tree %q", name)
	}
	return nil
}

func (ps *pebbleStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value, closer, err := ps.db.Get(key(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "retrieving tree %q", name)
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	err = closer.Close()
	if err != nil {
		return nil, err
	}
	return cp, nil
}

func (ps *pebbleStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := ps.db.Delete(key(name), pebble.Sync)
	if err != nil {
		return errors.Wrapf(err, "deleting tree %q", name)
	}
	return nil
}

func (ps *pebbleStore) Close(ctx context.Context) error {
	return ps.db.Close()
}

func key(name string) []byte {
	k := make([]byte, 0, len(keyPrefix)+len(name))
	k = append(k, keyPrefix...)
	return append(k, name...)
}
