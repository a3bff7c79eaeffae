/*
Package config provides methods to parse the configuration of the
tree codecs and stores from YAML documents.
*/
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Binary formats
const (
	Msgpack = "msgpack"
	CBOR    = "cbor"
)

// Store kinds
const (
	MemoryStore   = "memory"
	RedisStore    = "redis"
	MongoStore    = "mongo"
	SQLite3Store  = "sqlite3"
	PostgresStore = "postgres"
	PebbleStore   = "pebble"
)

/*
Config holds the choices made on how trees are encoded into bytes
and where encoded trees are stored.
*/
type Config struct {
	// Binary is the structural format of the byte encoding:
	// "msgpack" (default) or "cbor"
	Binary string `yaml:"binary"`
	// Compress makes the byte encoding compressed with zstd
	Compress bool `yaml:"compress"`
	// Ordered makes the codecs able to decode "lt" predicates,
	// true unless set otherwise
	Ordered bool  `yaml:"ordered"`
	Store   Store `yaml:"store"`
}

/*
Store holds the configuration of a tree store
*/
type Store struct {
	// Kind is one of "memory" (default), "redis", "mongo",
	// "sqlite3", "postgres" or "pebble"
	Kind string `yaml:"kind"`
	// Address is the redis address, the mongo or postgres URL, the
	// sqlite3 database file or the pebble directory
	Address string `yaml:"address"`
	// Name is the key prefix, collection or table that
	// holds the trees, "trees" by default
	Name string `yaml:"name"`
}

// Default returns the Config used when nothing is configured
func Default() *Config {
	return &Config{
		Binary:  Msgpack,
		Ordered: true,
		Store: Store{
			Kind: MemoryStore,
			Name: "trees",
		},
	}
}

/*
Read takes a slice of bytes with a configuration in YAML and returns the
Config parsed from it or an error. Settings absent from the YAML keep their
default values.
*/
func Read(data []byte) (*Config, error) {
	c := Default()
	err := yaml.UnmarshalStrict(data, c)
	if err != nil {
		return nil, fmt.Errorf("parsing yml config: %v", err)
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

/*
ReadFromFile takes a filepath string, reads its contents and uses
Read to parse it and return a Config or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFromFile(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading config yml file %s: %v", filepath, err)
	}
	c, err := Read(data)
	if err != nil {
		err = fmt.Errorf("parsing config yml file %s: %v", filepath, err)
	}
	return c, err
}

// Validate returns an error if the Config holds an unknown or
// incomplete setting
func (c *Config) Validate() error {
	switch c.Binary {
	case Msgpack, CBOR:
	default:
		return fmt.Errorf("invalid binary format %q: expected %q or %q", c.Binary, Msgpack, CBOR)
	}
	return c.Store.Validate()
}

// Validate returns an error if the Store holds an unknown or
// incomplete setting
func (s *Store) Validate() error {
	switch s.Kind {
	case MemoryStore:
	case RedisStore, MongoStore, SQLite3Store, PostgresStore, PebbleStore:
		if s.Address == "" {
			return fmt.Errorf("%s store requires an address", s.Kind)
		}
	default:
		return fmt.Errorf("invalid store kind %q", s.Kind)
	}
	if s.Name == "" {
		return fmt.Errorf("store name cannot be empty")
	}
	return nil
}
