package json

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/injection"
)

// Field names selecting the predicate variant
const (
	equalToTag   = "eq"
	lessThanTag  = "lt"
	notTag       = "not"
	anyOfTag     = "or"
	isPresentTag = "exists"
)

type predicateCodec[V any] struct {
	values  Codec[V]
	compare func(a, b V) int
}

/*
PredicateOption configures a Codec returned by PredicateCodec.
*/
type PredicateOption[V any] func(*predicateCodec[V])

/*
WithOrdering takes a comparison function defining a total order on V and
returns a PredicateOption that allows the codec to decode LessThan
predicates. The function returns a negative number when a < b, a positive
one when a > b and 0 otherwise.
*/
func WithOrdering[V any](compare func(a, b V) int) PredicateOption[V] {
	return func(pc *predicateCodec[V]) {
		pc.compare = compare
	}
}

/*
PredicateCodec takes a Codec for values of type V and returns a Codec for
predicates on V. A predicate is encoded as a JSON object with a single
field selecting its variant:
  - "eq" and "lt" hold the encoded value
  - "not" holds the encoded negated predicate
  - "or" holds an array with the encoded alternatives in order
  - "exists" holds null or the encoded inner predicate

LessThan predicates are always encoded, but decoding them fails with
injection.ErrMissingOrdering unless WithOrdering is given.
*/
func PredicateCodec[V any](values Codec[V], opts ...PredicateOption[V]) Codec[feature.Predicate[V]] {
	pc := &predicateCodec[V]{values: values}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

func (pc *predicateCodec[V]) Encode(p feature.Predicate[V]) (json.RawMessage, error) {
	switch p := p.(type) {
	case feature.EqualTo[V]:
		return pc.encodeValue(equalToTag, p.Value)
	case feature.LessThan[V]:
		return pc.encodeValue(lessThanTag, p.Value)
	case feature.Not[V]:
		np, err := pc.Encode(p.Predicate)
		if err != nil {
			return nil, err
		}
		return Tagged(notTag, np)
	case feature.AnyOf[V]:
		eps := make([]json.RawMessage, 0, len(p.Predicates))
		for _, sp := range p.Predicates {
			ep, err := pc.Encode(sp)
			if err != nil {
				return nil, err
			}
			eps = append(eps, ep)
		}
		payload, err := json.Marshal(eps)
		if err != nil {
			return nil, err
		}
		return Tagged(anyOfTag, payload)
	case feature.IsPresent[V]:
		inner, ok := p.Inner.Get()
		if !ok {
			return Tagged(isPresentTag, json.RawMessage("null"))
		}
		ep, err := pc.Encode(inner)
		if err != nil {
			return nil, err
		}
		return Tagged(isPresentTag, ep)
	}
	return nil, fmt.Errorf("unknown type of feature.Predicate %T", p)
}

func (pc *predicateCodec[V]) encodeValue(tag string, v V) (json.RawMessage, error) {
	ev, err := pc.values.Encode(v)
	if err != nil {
		return nil, err
	}
	return Tagged(tag, ev)
}

func (pc *predicateCodec[V]) Decode(data json.RawMessage) (feature.Predicate[V], error) {
	tag, payload, err := Tag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case equalToTag:
		v, err := pc.values.Decode(payload)
		if err != nil {
			return nil, err
		}
		return feature.EqualTo[V]{Value: v}, nil
	case lessThanTag:
		if pc.compare == nil {
			return nil, errors.WithStack(injection.ErrMissingOrdering)
		}
		v, err := pc.values.Decode(payload)
		if err != nil {
			return nil, err
		}
		return feature.LessThan[V]{Value: v}, nil
	case notTag:
		np, err := pc.Decode(payload)
		if err != nil {
			return nil, err
		}
		return feature.Not[V]{Predicate: np}, nil
	case anyOfTag:
		eps, err := Elements(payload)
		if err != nil {
			return nil, err
		}
		var ps []feature.Predicate[V]
		for _, ep := range eps {
			sp, err := pc.Decode(ep)
			if err != nil {
				return nil, err
			}
			ps = append(ps, sp)
		}
		return feature.AnyOf[V]{Predicates: ps}, nil
	case isPresentTag:
		if IsNull(payload) {
			return feature.IsPresent[V]{}, nil
		}
		inner, err := pc.Decode(payload)
		if err != nil {
			return nil, err
		}
		return feature.IsPresent[V]{Inner: feature.Some(inner)}, nil
	}
	return nil, &UnrecognizedNodeError{Document: string(data)}
}
