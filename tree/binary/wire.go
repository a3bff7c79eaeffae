package binary

import (
	"fmt"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/injection"
	"github.com/pbanos/arbor/tree"
)

const (
	equalToTag uint8 = iota + 1
	lessThanTag
	notTag
	anyOfTag
	isPresentTag
)

const (
	leafTag uint8 = iota + 1
	splitTag
)

// wirePredicate holds values and operands in slices so a nil or zero
// value is told apart from an absent one
type wirePredicate[V any] struct {
	Tag      uint8              `msgpack:"t" cbor:"t"`
	Value    []V                `msgpack:"v,omitempty" cbor:"v,omitempty"`
	Operands []wirePredicate[V] `msgpack:"p,omitempty" cbor:"p,omitempty"`
}

type wireNode[K, V, T, A any] struct {
	Tag          uint8                 `msgpack:"t" cbor:"t"`
	Index        int                   `msgpack:"i,omitempty" cbor:"i,omitempty"`
	Distribution []T                   `msgpack:"d,omitempty" cbor:"d,omitempty"`
	Key          []K                   `msgpack:"k,omitempty" cbor:"k,omitempty"`
	Predicate    *wirePredicate[V]     `msgpack:"p,omitempty" cbor:"p,omitempty"`
	Left         *wireNode[K, V, T, A] `msgpack:"l,omitempty" cbor:"l,omitempty"`
	Right        *wireNode[K, V, T, A] `msgpack:"r,omitempty" cbor:"r,omitempty"`
	Annotation   A                     `msgpack:"a" cbor:"a"`
}

func toWirePredicate[V any](p feature.Predicate[V]) (*wirePredicate[V], error) {
	switch p := p.(type) {
	case feature.EqualTo[V]:
		return &wirePredicate[V]{Tag: equalToTag, Value: []V{p.Value}}, nil
	case feature.LessThan[V]:
		return &wirePredicate[V]{Tag: lessThanTag, Value: []V{p.Value}}, nil
	case feature.Not[V]:
		operand, err := toWirePredicate(p.Predicate)
		if err != nil {
			return nil, err
		}
		return &wirePredicate[V]{Tag: notTag, Operands: []wirePredicate[V]{*operand}}, nil
	case feature.AnyOf[V]:
		wp := &wirePredicate[V]{Tag: anyOfTag, Operands: make([]wirePredicate[V], 0, len(p.Predicates))}
		for _, sp := range p.Predicates {
			operand, err := toWirePredicate(sp)
			if err != nil {
				return nil, err
			}
			wp.Operands = append(wp.Operands, *operand)
		}
		return wp, nil
	case feature.IsPresent[V]:
		wp := &wirePredicate[V]{Tag: isPresentTag}
		if inner, ok := p.Inner.Get(); ok {
			operand, err := toWirePredicate(inner)
			if err != nil {
				return nil, err
			}
			wp.Operands = []wirePredicate[V]{*operand}
		}
		return wp, nil
	default:
		return nil, fmt.Errorf("unknown type of feature.Predicate %T", p)
	}
}

func (wp *wirePredicate[V]) predicate() (feature.Predicate[V], error) {
	switch wp.Tag {
	case equalToTag, lessThanTag:
		if len(wp.Value) != 1 || len(wp.Operands) != 0 {
			return nil, injection.Malformed("predicate with tag %d must hold exactly one value", wp.Tag)
		}
		if wp.Tag == equalToTag {
			return feature.EqualTo[V]{Value: wp.Value[0]}, nil
		}
		return feature.LessThan[V]{Value: wp.Value[0]}, nil
	case notTag:
		if len(wp.Operands) != 1 || len(wp.Value) != 0 {
			return nil, injection.Malformed("negation must hold exactly one operand")
		}
		operand, err := wp.Operands[0].predicate()
		if err != nil {
			return nil, err
		}
		return feature.Not[V]{Predicate: operand}, nil
	case anyOfTag:
		if len(wp.Value) != 0 {
			return nil, injection.Malformed("disjunction cannot hold a value")
		}
		var predicates []feature.Predicate[V]
		for i := range wp.Operands {
			operand, err := wp.Operands[i].predicate()
			if err != nil {
				return nil, err
			}
			predicates = append(predicates, operand)
		}
		return feature.AnyOf[V]{Predicates: predicates}, nil
	case isPresentTag:
		if len(wp.Operands) > 1 || len(wp.Value) != 0 {
			return nil, injection.Malformed("presence test holds at most one operand")
		}
		if len(wp.Operands) == 0 {
			return feature.IsPresent[V]{}, nil
		}
		operand, err := wp.Operands[0].predicate()
		if err != nil {
			return nil, err
		}
		return feature.IsPresent[V]{Inner: feature.Some(operand)}, nil
	default:
		return nil, injection.Malformed("unknown predicate tag %d", wp.Tag)
	}
}

func toWireNode[K, V, T, A any](n tree.Node[K, V, T, A]) (*wireNode[K, V, T, A], error) {
	switch n := n.(type) {
	case *tree.Leaf[K, V, T, A]:
		return &wireNode[K, V, T, A]{
			Tag:          leafTag,
			Index:        n.Index,
			Distribution: []T{n.Distribution},
			Annotation:   n.Annotation,
		}, nil
	case *tree.Split[K, V, T, A]:
		wp, err := toWirePredicate(n.Predicate)
		if err != nil {
			return nil, err
		}
		left, err := toWireNode(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := toWireNode(n.Right)
		if err != nil {
			return nil, err
		}
		return &wireNode[K, V, T, A]{
			Tag:        splitTag,
			Key:        []K{n.Key},
			Predicate:  wp,
			Left:       left,
			Right:      right,
			Annotation: n.Annotation,
		}, nil
	default:
		return nil, fmt.Errorf("unknown type of tree.Node %T", n)
	}
}

func (wn *wireNode[K, V, T, A]) node() (tree.Node[K, V, T, A], error) {
	switch wn.Tag {
	case leafTag:
		if len(wn.Distribution) != 1 {
			return nil, injection.Malformed("leaf %d must hold exactly one distribution", wn.Index)
		}
		if len(wn.Key) != 0 || wn.Predicate != nil || wn.Left != nil || wn.Right != nil {
			return nil, injection.Malformed("leaf %d holds split fields", wn.Index)
		}
		return &tree.Leaf[K, V, T, A]{Index: wn.Index, Distribution: wn.Distribution[0], Annotation: wn.Annotation}, nil
	case splitTag:
		if len(wn.Key) != 1 {
			return nil, injection.Malformed("split must hold exactly one key")
		}
		if wn.Predicate == nil || wn.Left == nil || wn.Right == nil {
			return nil, injection.Malformed("split must hold a predicate and two subtrees")
		}
		if len(wn.Distribution) != 0 {
			return nil, injection.Malformed("split holds a distribution")
		}
		p, err := wn.Predicate.predicate()
		if err != nil {
			return nil, err
		}
		left, err := wn.Left.node()
		if err != nil {
			return nil, err
		}
		right, err := wn.Right.node()
		if err != nil {
			return nil, err
		}
		return &tree.Split[K, V, T, A]{Key: wn.Key[0], Predicate: p, Left: left, Right: right, Annotation: wn.Annotation}, nil
	default:
		return nil, injection.Malformed("unknown node tag %d", wn.Tag)
	}
}
