package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/arbor/config"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	c, err := config.Read([]byte(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, config.Msgpack, c.Binary)
	require.False(t, c.Compress)
	require.True(t, c.Ordered)
	require.Equal(t, config.MemoryStore, c.Store.Kind)
	require.Equal(t, "trees", c.Store.Name)
}

func TestRead(t *testing.T) {
	c, err := config.Read([]byte(`
binary: cbor
compress: true
ordered: false
store:
  kind: sqlite3
  address: /tmp/trees.db
`))
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		Binary:   config.CBOR,
		Compress: true,
		Ordered:  false,
		Store: config.Store{
			Kind:    config.SQLite3Store,
			Address: "/tmp/trees.db",
			Name:    "trees",
		},
	}, c)
}

func TestReadInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"UnknownBinary":  "binary: protobuf",
		"UnknownStore":   "store: {kind: etcd, address: x}",
		"MissingAddress": "store: {kind: redis}",
		"EmptyName":      "store: {kind: memory, name: ''}",
		"UnknownField":   "compression: zstd",
		"NotYAML":        "binary: [",
	} {
		_, err := config.Read([]byte(doc))
		require.Error(t, err, name)
	}
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  kind: pebble\n  address: ./data\n"), 0600))
	c, err := config.ReadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, config.PebbleStore, c.Store.Kind)
	require.Equal(t, "./data", c.Store.Address)

	_, err = config.ReadFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
