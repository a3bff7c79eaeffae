/*
Package arbor puts together the codecs and stores for the standard kind of
annotated decision tree: one that tests string-keyed features holding
feature.Value values and predicts tree.Distribution values, without
annotations.
*/
package arbor

import (
	"context"
	"fmt"

	"github.com/pbanos/arbor/config"
	"github.com/pbanos/arbor/feature"
	fjson "github.com/pbanos/arbor/feature/json"
	"github.com/pbanos/arbor/injection"
	"github.com/pbanos/arbor/tree"
	"github.com/pbanos/arbor/tree/binary"
	tjson "github.com/pbanos/arbor/tree/json"
	"github.com/pbanos/arbor/tree/mongostore"
	"github.com/pbanos/arbor/tree/pebblestore"
	"github.com/pbanos/arbor/tree/redisstore"
	"github.com/pbanos/arbor/tree/sqlstore"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

// Standard tree types
type (
	Tree  = tree.AnnotatedTree[string, feature.Value, tree.Distribution, tree.Unit]
	Node  = tree.Node[string, feature.Value, tree.Distribution, tree.Unit]
	Leaf  = tree.Leaf[string, feature.Value, tree.Distribution, tree.Unit]
	Split = tree.Split[string, feature.Value, tree.Distribution, tree.Unit]

	Archive = tree.Archive[string, feature.Value, tree.Distribution, tree.Unit]
)

// Forms a tree can be read from or written as
const (
	JSONForm   = "json"
	BinaryForm = "binary"
	Base64Form = "base64"
)

/*
Codecs holds every injection of standard trees configured
through a config.Config
*/
type Codecs struct {
	// JSON encodes trees into JSON documents
	JSON fjson.Codec[*Tree]
	// Text encodes trees into compact JSON text
	Text injection.Injection[*Tree, string]
	// Bytes encodes trees with the configured binary format
	Bytes injection.Injection[*Tree, []byte]
	// Base64 encodes trees with the configured binary format
	// and then into base64 text
	Base64 injection.Injection[*Tree, string]
}

/*
NewCodecs takes a Config and returns the Codecs it describes or
an error if the Config is not valid.
*/
func NewCodecs(c *config.Config) (*Codecs, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}
	var opts []fjson.PredicateOption[feature.Value]
	if c.Ordered {
		opts = append(opts, fjson.WithOrdering(feature.CompareValues))
	}
	nodes := tjson.NodeCodec(
		fjson.String(),
		fjson.PredicateCodec(fjson.ValueCodec(), opts...),
		fjson.MapCodec[tree.Distribution](injection.StringText(), fjson.Float64()),
		tjson.Unannotated(),
	)
	var format binary.Format
	switch c.Binary {
	case config.CBOR:
		format = binary.CBOR()
	default:
		format = binary.Msgpack()
	}
	if c.Compress {
		format, err = binary.Compressed(format)
		if err != nil {
			return nil, err
		}
	}
	jc := tjson.TreeCodec(nodes)
	bc := binary.Bytes[string, feature.Value, tree.Distribution, tree.Unit](format)
	return &Codecs{
		JSON:   jc,
		Text:   tjson.Text(jc),
		Bytes:  bc,
		Base64: binary.Text(bc),
	}, nil
}

/*
Form takes the name of a form and returns the Injection of trees into the
bytes of that form: JSON text, the configured binary format or its base64
text.
*/
func (cs *Codecs) Form(name string) (injection.Injection[*Tree, []byte], error) {
	switch name {
	case JSONForm:
		return injection.Compose(cs.Text, injection.StringBytes()), nil
	case BinaryForm:
		return cs.Bytes, nil
	case Base64Form:
		return injection.Compose(cs.Base64, injection.StringBytes()), nil
	default:
		return nil, fmt.Errorf("unknown form %q: expected %q, %q or %q", name, JSONForm, BinaryForm, Base64Form)
	}
}

/*
OpenStore takes a context and a store configuration and returns the
tree.Store it describes, connected to its backend, or an error.
*/
func OpenStore(ctx context.Context, s config.Store) (tree.Store, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}
	switch s.Kind {
	case config.RedisStore:
		rc := redis.NewClient(&redis.Options{Addr: s.Address})
		err = rc.Ping().Err()
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %v", s.Address, err)
		}
		return redisstore.New(rc, s.Name), nil
	case config.MongoStore:
		session, err := mgo.Dial(s.Address)
		if err != nil {
			return nil, fmt.Errorf("connecting to mongo at %s: %v", s.Address, err)
		}
		return mongostore.New(session, s.Name), nil
	case config.SQLite3Store:
		return sqlstore.Open(ctx, sqlstore.SQLite3, s.Address, s.Name)
	case config.PostgresStore:
		return sqlstore.Open(ctx, sqlstore.Postgres, s.Address, s.Name)
	case config.PebbleStore:
		return pebblestore.Open(s.Address, nil)
	default:
		return tree.NewMemoryStore(), nil
	}
}

// NewArchive takes a Store and Codecs and returns an Archive
// saving trees into the store with the configured binary format.
func NewArchive(s tree.Store, cs *Codecs) *Archive {
	return tree.NewArchive(s, cs.Bytes)
}
