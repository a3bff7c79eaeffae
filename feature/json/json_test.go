package json_test

import (
	"cmp"
	"encoding/json"
	"testing"

	"github.com/pbanos/arbor/feature"
	fjson "github.com/pbanos/arbor/feature/json"
	"github.com/pbanos/arbor/injection"
	"github.com/stretchr/testify/require"
)

func intPredicates(ordered bool) fjson.Codec[feature.Predicate[int]] {
	if ordered {
		return fjson.PredicateCodec(fjson.Int(), fjson.WithOrdering(cmp.Compare[int]))
	}
	return fjson.PredicateCodec(fjson.Int())
}

func eq(v int) feature.Predicate[int] {
	return feature.EqualTo[int]{Value: v}
}

func not(p feature.Predicate[int]) feature.Predicate[int] {
	return feature.Not[int]{Predicate: p}
}

func TestPredicateCodec(t *testing.T) {
	pc := intPredicates(true)

	t.Run("EqualTo", func(t *testing.T) {
		doc, err := pc.Encode(eq(5))
		require.NoError(t, err)
		require.JSONEq(t, `{"eq": 5}`, string(doc))
		p, err := pc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, eq(5), p)
	})

	t.Run("AnyOf", func(t *testing.T) {
		in := feature.AnyOf[int]{Predicates: []feature.Predicate[int]{eq(1), not(eq(2))}}
		doc, err := pc.Encode(in)
		require.NoError(t, err)
		require.JSONEq(t, `{"or": [{"eq": 1}, {"not": {"eq": 2}}]}`, string(doc))
		p, err := pc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, in, p)
	})

	t.Run("IsPresent", func(t *testing.T) {
		bare := feature.IsPresent[int]{}
		doc, err := pc.Encode(bare)
		require.NoError(t, err)
		require.JSONEq(t, `{"exists": null}`, string(doc))
		p, err := pc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, bare, p)

		inner := feature.IsPresent[int]{Inner: feature.Some(feature.Predicate[int](feature.LessThan[int]{Value: 3}))}
		doc, err = pc.Encode(inner)
		require.NoError(t, err)
		require.JSONEq(t, `{"exists": {"lt": 3}}`, string(doc))
		p, err = pc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, inner, p)
	})

	t.Run("Nested", func(t *testing.T) {
		in := not(not(not(eq(5))))
		doc, err := pc.Encode(in)
		require.NoError(t, err)
		require.JSONEq(t, `{"not": {"not": {"not": {"eq": 5}}}}`, string(doc))
		p, err := pc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, in, p)

		deep := eq(0)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				deep = not(deep)
			} else {
				deep = feature.AnyOf[int]{Predicates: []feature.Predicate[int]{eq(i), deep}}
			}
		}
		doc, err = pc.Encode(deep)
		require.NoError(t, err)
		p, err = pc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, deep, p)
	})

	t.Run("UnrecognizedTag", func(t *testing.T) {
		for _, doc := range []string{`{"xyz": 5}`, `{}`, `{"eq": 1, "lt": 2}`, `[{"eq": 1}]`, `5`, `null`} {
			p, err := pc.Decode(json.RawMessage(doc))
			require.Nil(t, p, doc)
			var une *fjson.UnrecognizedNodeError
			require.ErrorAs(t, err, &une, doc)
			require.Equal(t, doc, une.Document)
			require.ErrorIs(t, err, injection.ErrMalformed)
		}
	})

	t.Run("NestedFailureShortCircuits", func(t *testing.T) {
		p, err := pc.Decode(json.RawMessage(`{"or": [{"eq": 1}, {"not": {"xyz": 2}}]}`))
		require.Nil(t, p)
		var une *fjson.UnrecognizedNodeError
		require.ErrorAs(t, err, &une)
		require.Equal(t, `{"xyz": 2}`, une.Document)

		_, err = pc.Decode(json.RawMessage(`{"eq": "five"}`))
		require.ErrorIs(t, err, injection.ErrMalformed)

		_, err = pc.Decode(json.RawMessage(`{"or": {"eq": 1}}`))
		require.ErrorIs(t, err, injection.ErrMalformed)
	})
}

func TestPredicateCodecOrdering(t *testing.T) {
	lt := feature.LessThan[int]{Value: 7}

	doc, err := intPredicates(false).Encode(lt)
	require.NoError(t, err)
	require.JSONEq(t, `{"lt": 7}`, string(doc))

	_, err = intPredicates(false).Decode(doc)
	require.ErrorIs(t, err, injection.ErrMissingOrdering)
	require.NotErrorIs(t, err, injection.ErrMalformed)

	_, err = intPredicates(false).Decode(json.RawMessage(`{"not": {"lt": 7}}`))
	require.ErrorIs(t, err, injection.ErrMissingOrdering)

	p, err := intPredicates(true).Decode(doc)
	require.NoError(t, err)
	require.Equal(t, feature.Predicate[int](lt), p)

	p, err = intPredicates(false).Decode(json.RawMessage(`{"eq": 7}`))
	require.NoError(t, err)
	require.Equal(t, eq(7), p)
}

func TestDispatchedCodec(t *testing.T) {
	vc := fjson.ValueCodec()

	cases := []struct {
		value feature.Value
		doc   string
	}{
		{feature.OrdinalValue(3), `{"ordinal": 3}`},
		{feature.NominalValue("red"), `{"nominal": "red"}`},
		{feature.NominalValue(`quo"ted \ label`), `{"nominal": "quo\"ted \\ label"}`},
		{feature.ContinuousValue(-1.25), `{"continuous": -1.25}`},
		{feature.SparseValue(map[string]float64{"x": 1, "y": 0.5}), `{"sparse": {"x": 1, "y": 0.5}}`},
	}
	for _, c := range cases {
		doc, err := vc.Encode(c.value)
		require.NoError(t, err)
		require.JSONEq(t, c.doc, string(doc))
		v, err := vc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, c.value, v)
	}

	t.Run("Undefined", func(t *testing.T) {
		_, err := vc.Encode(feature.Value{})
		require.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, doc := range []string{`{"discrete": 1}`, `{}`, `{"ordinal": 1, "nominal": "a"}`, `"ordinal"`} {
			_, err := vc.Decode(json.RawMessage(doc))
			var une *fjson.UnrecognizedNodeError
			require.ErrorAs(t, err, &une, doc)
		}
		_, err := vc.Decode(json.RawMessage(`{"ordinal": "3"}`))
		require.ErrorIs(t, err, injection.ErrMalformed)
		_, err = vc.Decode(json.RawMessage(`{"continuous": null}`))
		require.ErrorIs(t, err, injection.ErrMalformed)
	})
}

func TestPredicatesOnDispatchedValues(t *testing.T) {
	pc := fjson.PredicateCodec(fjson.ValueCodec(), fjson.WithOrdering(feature.CompareValues))
	in := feature.AnyOf[feature.Value]{Predicates: []feature.Predicate[feature.Value]{
		feature.EqualTo[feature.Value]{Value: feature.NominalValue("red")},
		feature.LessThan[feature.Value]{Value: feature.ContinuousValue(2.5)},
		feature.IsPresent[feature.Value]{},
	}}
	doc, err := pc.Encode(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"or": [{"eq": {"nominal": "red"}}, {"lt": {"continuous": 2.5}}, {"exists": null}]}`, string(doc))
	p, err := pc.Decode(doc)
	require.NoError(t, err)
	require.Equal(t, feature.Predicate[feature.Value](in), p)
}

func TestOptionCodec(t *testing.T) {
	oc := fjson.OptionCodec(fjson.String())

	doc, err := oc.Encode(feature.None[string]())
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(doc))
	o, err := oc.Decode(doc)
	require.NoError(t, err)
	require.Equal(t, feature.None[string](), o)

	doc, err = oc.Encode(feature.Some("a"))
	require.NoError(t, err)
	require.JSONEq(t, `["a"]`, string(doc))
	o, err = oc.Decode(doc)
	require.NoError(t, err)
	require.Equal(t, feature.Some("a"), o)

	t.Run("Nested", func(t *testing.T) {
		ooc := fjson.OptionCodec(fjson.OptionCodec(fjson.Int()))
		for _, in := range []feature.Option[feature.Option[int]]{
			feature.None[feature.Option[int]](),
			feature.Some(feature.None[int]()),
			feature.Some(feature.Some(4)),
		} {
			doc, err := ooc.Encode(in)
			require.NoError(t, err)
			o, err := ooc.Decode(doc)
			require.NoError(t, err)
			require.Equal(t, in, o)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, doc := range []string{`["a", "b"]`, `"a"`, `{}`, `[1]`} {
			_, err := oc.Decode(json.RawMessage(doc))
			require.ErrorIs(t, err, injection.ErrMalformed, doc)
		}
	})
}

func TestMapCodec(t *testing.T) {
	mc := fjson.MapCodec[map[int64]bool](injection.IntText(), fjson.Bool())
	in := map[int64]bool{-1: true, 0: false, 12: true}
	doc, err := mc.Encode(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"-1": true, "0": false, "12": true}`, string(doc))
	m, err := mc.Decode(doc)
	require.NoError(t, err)
	require.Equal(t, in, m)

	t.Run("Empty", func(t *testing.T) {
		doc, err := mc.Encode(map[int64]bool{})
		require.NoError(t, err)
		require.JSONEq(t, `{}`, string(doc))
		m, err := mc.Decode(doc)
		require.NoError(t, err)
		require.Empty(t, m)
	})

	t.Run("BadKey", func(t *testing.T) {
		m, err := mc.Decode(json.RawMessage(`{"1": true, "one": false}`))
		require.Nil(t, m)
		var inv *injection.InversionFailure
		require.ErrorAs(t, err, &inv)
		require.Equal(t, "one", inv.Input)
	})

	t.Run("BadValue", func(t *testing.T) {
		_, err := mc.Decode(json.RawMessage(`{"1": "true"}`))
		require.ErrorIs(t, err, injection.ErrMalformed)
	})

	t.Run("DuplicateLabel", func(t *testing.T) {
		_, err := mc.Decode(json.RawMessage(`{"1": true, "1": false}`))
		require.ErrorIs(t, err, injection.ErrMalformed)
	})

	t.Run("NotAnObject", func(t *testing.T) {
		_, err := mc.Decode(json.RawMessage(`[]`))
		require.ErrorIs(t, err, injection.ErrMalformed)
	})

	t.Run("InvalidUTF8Label", func(t *testing.T) {
		sc := fjson.MapCodec[map[string]float64](injection.StringText(), fjson.Float64())
		_, err := sc.Encode(map[string]float64{"ok": 1, "a\xffb": 2})
		require.Error(t, err)

		doc, err := sc.Encode(map[string]float64{"ok": 1, "\u00e9t\u00e9": 2})
		require.NoError(t, err)
		m, err := sc.Decode(doc)
		require.NoError(t, err)
		require.Equal(t, map[string]float64{"ok": 1, "été": 2}, m)
	})
}

func TestPrimitiveCodecs(t *testing.T) {
	for _, doc := range []string{`null`, `"1"`, `true`, `{}`} {
		_, err := fjson.Int().Decode(json.RawMessage(doc))
		require.ErrorIs(t, err, injection.ErrMalformed, doc)
	}
	_, err := fjson.Int().Decode(json.RawMessage(`1.5`))
	require.ErrorIs(t, err, injection.ErrMalformed)

	_, err = fjson.Bool().Decode(json.RawMessage(`"true"`))
	require.ErrorIs(t, err, injection.ErrMalformed)

	s, err := fjson.String().Decode(json.RawMessage(`"café"`))
	require.NoError(t, err)
	require.Equal(t, "café", s)

	t.Run("InvalidUTF8String", func(t *testing.T) {
		doc, err := fjson.String().Encode("a\xffb")
		require.Error(t, err)
		require.Nil(t, doc)

		_, err = fjson.ValueCodec().Encode(feature.NominalValue("a\xffb"))
		require.Error(t, err)

		_, err = fjson.ValueCodec().Encode(feature.SparseValue(map[string]float64{"a\xffb": 1}))
		require.Error(t, err)
	})
}
