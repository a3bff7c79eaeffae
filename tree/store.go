package tree

import (
	"context"
	"sync"
)

/*
Store is an interface to manage a store where encoded
trees can be saved, retrieved and deleted by name.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Put takes a name and the encoded tree and stores
	// it under that name, replacing whatever was stored
	// under it before. It returns an error if the tree
	// cannot be stored.
	Put(ctx context.Context, name string, data []byte) error
	// Get takes a name and returns the encoded tree
	// stored under it (or nil if there is none) or an
	// error if the store cannot be queried
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete takes a name and deletes the tree stored
	// under it. Deleting a name with nothing stored
	// under it is not an error. It returns an error
	// if the deletion cannot be performed.
	Delete(ctx context.Context, name string) error
	// Close closes the store, implementations should
	// freeing any resources in use as well as ensure
	// any pending changes are applied before returning
	// (unless the context expires). It returns an error
	// if the Close cannot be completed (because of the
	// context or another error)
	Close(ctx context.Context) error
}

type memoryStore struct {
	trees map[string][]byte
	lock  *sync.RWMutex
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		trees: make(map[string][]byte),
		lock:  &sync.RWMutex{},
	}
}

func (ms *memoryStore) Put(ctx context.Context, name string, data []byte) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		stored := make([]byte, len(data))
		copy(stored, data)
		ms.trees[name] = stored
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		if stored, ok := ms.trees[name]; ok {
			data = make([]byte, len(stored))
			copy(data, stored)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.trees, name)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
