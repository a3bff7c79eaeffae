package arbor_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/config"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/injection"
	"github.com/pbanos/arbor/tree"
	"github.com/stretchr/testify/require"
)

func sample() *arbor.Tree {
	return tree.New[string, feature.Value, tree.Distribution, tree.Unit](&arbor.Split{
		Key:       "petal length",
		Predicate: feature.LessThan[feature.Value]{Value: feature.ContinuousValue(2.45)},
		Left:      &arbor.Leaf{Index: 0, Distribution: tree.Distribution{"setosa": 50}},
		Right: &arbor.Split{
			Key: "color",
			Predicate: feature.AnyOf[feature.Value]{Predicates: []feature.Predicate[feature.Value]{
				feature.EqualTo[feature.Value]{Value: feature.NominalValue("blue")},
				feature.IsPresent[feature.Value]{},
			}},
			Left:  &arbor.Leaf{Index: 1, Distribution: tree.Distribution{"versicolor": 49, "virginica": 5}},
			Right: &arbor.Leaf{Index: 2, Distribution: tree.Distribution{"versicolor": 1, "virginica": 45}},
		},
	})
}

func configs() map[string]*config.Config {
	cs := make(map[string]*config.Config)
	for _, b := range []string{config.Msgpack, config.CBOR} {
		for _, compress := range []bool{false, true} {
			c := config.Default()
			c.Binary = b
			c.Compress = compress
			name := b
			if compress {
				name += "+zstd"
			}
			cs[name] = c
		}
	}
	return cs
}

func TestForms(t *testing.T) {
	for name, c := range configs() {
		t.Run(name, func(t *testing.T) {
			codecs, err := arbor.NewCodecs(c)
			require.NoError(t, err)
			for _, form := range []string{arbor.JSONForm, arbor.BinaryForm, arbor.Base64Form} {
				inj, err := codecs.Form(form)
				require.NoError(t, err)
				data, err := inj.Encode(sample())
				require.NoError(t, err, form)
				out, err := inj.Decode(data)
				require.NoError(t, err, form)
				require.Equal(t, sample(), out, form)
			}
		})
	}
}

func TestConvertBetweenForms(t *testing.T) {
	codecs, err := arbor.NewCodecs(config.Default())
	require.NoError(t, err)
	text, err := codecs.Text.Encode(sample())
	require.NoError(t, err)
	require.Contains(t, text, `"predicate":{"lt":{"continuous":2.45}}`)

	t1, err := codecs.Text.Decode(text)
	require.NoError(t, err)
	b64, err := codecs.Base64.Encode(t1)
	require.NoError(t, err)
	t2, err := codecs.Base64.Decode(b64)
	require.NoError(t, err)
	back, err := codecs.Text.Encode(t2)
	require.NoError(t, err)
	require.Equal(t, text, back)
}

func TestUnorderedCodecs(t *testing.T) {
	c := config.Default()
	c.Ordered = false
	codecs, err := arbor.NewCodecs(c)
	require.NoError(t, err)

	text, err := codecs.Text.Encode(sample())
	require.NoError(t, err)
	_, err = codecs.Text.Decode(text)
	require.ErrorIs(t, err, injection.ErrMissingOrdering)
	require.NotErrorIs(t, err, injection.ErrMalformed)
}

func TestInvalidSettings(t *testing.T) {
	c := config.Default()
	c.Binary = "xml"
	_, err := arbor.NewCodecs(c)
	require.Error(t, err)

	codecs, err := arbor.NewCodecs(config.Default())
	require.NoError(t, err)
	_, err = codecs.Form("yaml")
	require.Error(t, err)

	_, err = arbor.OpenStore(context.Background(), config.Store{Kind: config.RedisStore, Name: "trees"})
	require.Error(t, err)
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, s := range []config.Store{
		{Kind: config.MemoryStore, Name: "trees"},
		{Kind: config.SQLite3Store, Address: filepath.Join(dir, "trees.db"), Name: "trees"},
		{Kind: config.PebbleStore, Address: filepath.Join(dir, "pebble"), Name: "trees"},
	} {
		t.Run(s.Kind, func(t *testing.T) {
			store, err := arbor.OpenStore(ctx, s)
			require.NoError(t, err)
			defer store.Close(ctx)
			codecs, err := arbor.NewCodecs(config.Default())
			require.NoError(t, err)
			archive := arbor.NewArchive(store, codecs)

			require.NoError(t, archive.Save(ctx, "iris", sample()))
			out, err := archive.Load(ctx, "iris")
			require.NoError(t, err)
			require.Equal(t, sample(), out)

			_, err = archive.Load(ctx, "missing")
			require.ErrorIs(t, err, tree.ErrTreeNotFound)
		})
	}
}
