package redisstore_test

import (
	"os"
	"testing"

	"github.com/pbanos/arbor/tree/redisstore"
	"github.com/pbanos/arbor/tree/storetest"
	"gopkg.in/redis.v5"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	storetest.Run(t, redisstore.New(rc, "arbor-test"))
}
