package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/injection"
)

type dispatchedCodec[A, B, C, D any] struct {
	ordinal    Codec[A]
	nominal    Codec[B]
	continuous Codec[C]
	sparse     Codec[D]
}

/*
DispatchedCodec takes a Codec for each kind of value and returns a Codec
for dispatched values. A dispatched value is encoded as a JSON object with
a single field named after its kind ("ordinal", "nominal", "continuous"
or "sparse") holding the value encoded by the codec for that kind.
*/
func DispatchedCodec[A, B, C, D any](ordinal Codec[A], nominal Codec[B], continuous Codec[C], sparse Codec[D]) Codec[feature.Dispatched[A, B, C, D]] {
	return &dispatchedCodec[A, B, C, D]{ordinal, nominal, continuous, sparse}
}

/*
ValueCodec returns a Codec for standard feature values, with sparse
vectors encoded as objects keyed by label.
*/
func ValueCodec() Codec[feature.Value] {
	return DispatchedCodec(Int64(), String(), Float64(), SparseCodec())
}

// SparseCodec returns a Codec for sparse vectors keyed by label.
func SparseCodec() Codec[map[string]float64] {
	return MapCodec[map[string]float64](injection.StringText(), Float64())
}

func (dc *dispatchedCodec[A, B, C, D]) Encode(d feature.Dispatched[A, B, C, D]) (json.RawMessage, error) {
	var payload json.RawMessage
	var err error
	switch d.Kind() {
	case feature.OrdinalKind:
		v, _ := d.Ordinal()
		payload, err = dc.ordinal.Encode(v)
	case feature.NominalKind:
		v, _ := d.Nominal()
		payload, err = dc.nominal.Encode(v)
	case feature.ContinuousKind:
		v, _ := d.Continuous()
		payload, err = dc.continuous.Encode(v)
	case feature.SparseKind:
		v, _ := d.Sparse()
		payload, err = dc.sparse.Encode(v)
	default:
		return nil, fmt.Errorf("cannot encode dispatched value of kind %v", d.Kind())
	}
	if err != nil {
		return nil, err
	}
	return Tagged(d.Kind().String(), payload)
}

func (dc *dispatchedCodec[A, B, C, D]) Decode(data json.RawMessage) (feature.Dispatched[A, B, C, D], error) {
	var zero feature.Dispatched[A, B, C, D]
	tag, payload, err := Tag(data)
	if err != nil {
		return zero, err
	}
	switch tag {
	case feature.OrdinalKind.String():
		v, err := dc.ordinal.Decode(payload)
		if err != nil {
			return zero, err
		}
		return feature.Ordinal[A, B, C, D](v), nil
	case feature.NominalKind.String():
		v, err := dc.nominal.Decode(payload)
		if err != nil {
			return zero, err
		}
		return feature.Nominal[A, B, C, D](v), nil
	case feature.ContinuousKind.String():
		v, err := dc.continuous.Decode(payload)
		if err != nil {
			return zero, err
		}
		return feature.Continuous[A, B, C, D](v), nil
	case feature.SparseKind.String():
		v, err := dc.sparse.Decode(payload)
		if err != nil {
			return zero, err
		}
		return feature.Sparse[A, B, C, D](v), nil
	}
	return zero, &UnrecognizedNodeError{Document: string(data)}
}
