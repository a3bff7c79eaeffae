/*
Package redisstore provides an implementation of tree.Store
that keeps encoded trees as redis string values.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pbanos/arbor/tree"
	"gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
}

// New builds a tree.Store backed by a redis DB, keeping every
// tree under the key "<prefix>:<name>"
func New(rc *redis.Client, prefix string) tree.Store {
	return &redisStore{rc, prefix}
}

func (rs *redisStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(name)
	_, err := rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	redisID := rs.keyFor(name)
	data, err := rs.rc.Get(redisID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q from redis: %v", redisID, err)
	}
	return data, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(name)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
