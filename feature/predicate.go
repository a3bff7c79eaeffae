package feature

import (
	"fmt"
	"strings"
)

/*
Predicate represents a test on the value of a feature, used on a split
node to route a sample to one of its subtrees.

It is one of EqualTo, LessThan, Not, AnyOf or IsPresent. The set is closed:
other packages cannot add variants, so a type switch over these five is
exhaustive.
*/
type Predicate[V any] interface {
	fmt.Stringer
	predicate(V)
}

/*
EqualTo is satisfied by values equal to Value.
*/
type EqualTo[V any] struct {
	Value V
}

/*
LessThan is satisfied by values strictly lower than Value. It is only
meaningful for types with a total order.
*/
type LessThan[V any] struct {
	Value V
}

/*
Not is satisfied when its predicate is not.
*/
type Not[V any] struct {
	Predicate Predicate[V]
}

/*
AnyOf is satisfied when at least one of its predicates is. The order
of the predicates is part of the value.
*/
type AnyOf[V any] struct {
	Predicates []Predicate[V]
}

/*
IsPresent is satisfied by samples that define a value for the feature
and, when Inner holds a predicate, whose value also satisfies it.
*/
type IsPresent[V any] struct {
	Inner Option[Predicate[V]]
}

func (EqualTo[V]) predicate(V)   {}
func (LessThan[V]) predicate(V)  {}
func (Not[V]) predicate(V)       {}
func (AnyOf[V]) predicate(V)     {}
func (IsPresent[V]) predicate(V) {}

func (p EqualTo[V]) String() string {
	return fmt.Sprintf("= %v", p.Value)
}

func (p LessThan[V]) String() string {
	return fmt.Sprintf("< %v", p.Value)
}

func (p Not[V]) String() string {
	return fmt.Sprintf("not (%v)", p.Predicate)
}

func (p AnyOf[V]) String() string {
	parts := make([]string, 0, len(p.Predicates))
	for _, sp := range p.Predicates {
		parts = append(parts, fmt.Sprintf("(%v)", sp))
	}
	return strings.Join(parts, " or ")
}

func (p IsPresent[V]) String() string {
	if inner, ok := p.Inner.Get(); ok {
		return fmt.Sprintf("present and (%v)", inner)
	}
	return "present"
}
