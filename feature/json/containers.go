package json

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/injection"
)

type optionCodec[T any] struct {
	values Codec[T]
}

/*
OptionCodec takes a Codec for values of type T and returns a Codec
for options of T. An empty option is encoded as an empty array and
an option holding v as an array with the encoding of v as its only
element. Arrays with more than one element are rejected.
*/
func OptionCodec[T any](values Codec[T]) Codec[feature.Option[T]] {
	return &optionCodec[T]{values}
}

func (oc *optionCodec[T]) Encode(o feature.Option[T]) (json.RawMessage, error) {
	elems := make([]json.RawMessage, 0, 1)
	if v, ok := o.Get(); ok {
		ev, err := oc.values.Encode(v)
		if err != nil {
			return nil, err
		}
		elems = append(elems, ev)
	}
	return json.Marshal(elems)
}

func (oc *optionCodec[T]) Decode(data json.RawMessage) (feature.Option[T], error) {
	elems, err := Elements(data)
	if err != nil {
		return feature.None[T](), err
	}
	switch len(elems) {
	case 0:
		return feature.None[T](), nil
	case 1:
		v, err := oc.values.Decode(elems[0])
		if err != nil {
			return feature.None[T](), err
		}
		return feature.Some(v), nil
	}
	return feature.None[T](), injection.Malformed("expected at most one element for option but found %d in %s", len(elems), data)
}

type mapCodec[M ~map[L]W, L comparable, W any] struct {
	keys   injection.Injection[L, string]
	values Codec[W]
}

/*
MapCodec takes an Injection of labels into text and a Codec for weights and
returns a Codec for label-keyed mappings. A mapping is encoded as a JSON
object with a field per label, named after the label's text, which must
be valid UTF-8.

Decoding fails if any field name cannot be inverted into a label, if any
value fails to decode or if two field names invert into the same label.
*/
func MapCodec[M ~map[L]W, L comparable, W any](keys injection.Injection[L, string], values Codec[W]) Codec[M] {
	return &mapCodec[M, L, W]{keys, values}
}

func (mc *mapCodec[M, L, W]) Encode(m M) (json.RawMessage, error) {
	obj := make(map[string]json.RawMessage, len(m))
	for l, w := range m {
		k, err := mc.keys.Encode(l)
		if err != nil {
			return nil, err
		}
		if !utf8.ValidString(k) {
			return nil, fmt.Errorf("label %q is not valid UTF-8 and cannot name a JSON field", k)
		}
		ew, err := mc.values.Encode(w)
		if err != nil {
			return nil, err
		}
		obj[k] = ew
	}
	return json.Marshal(obj)
}

func (mc *mapCodec[M, L, W]) Decode(data json.RawMessage) (M, error) {
	fields, err := Fields(data)
	if err != nil {
		return nil, err
	}
	m := make(M, len(fields))
	for _, f := range fields {
		l, err := mc.keys.Decode(f.Name)
		if err != nil {
			return nil, err
		}
		if _, taken := m[l]; taken {
			return nil, injection.Malformed("duplicate label %q in %s", f.Name, data)
		}
		w, err := mc.values.Decode(f.Value)
		if err != nil {
			return nil, err
		}
		m[l] = w
	}
	return m, nil
}
