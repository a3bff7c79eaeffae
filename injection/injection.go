/*
Package injection provides reversible conversions between a domain type and
a representation of it, and the means to chain them.

An Injection encodes every value of its domain and decodes back exactly the
values it can produce. Decoding anything else fails with an error that
satisfies errors.Is(err, ErrMalformed).
*/
package injection

/*
Injection is an interface for objects that encode values of type A into
values of type B and decode them back.

Implementations are expected to be safe for concurrent use.
*/
type Injection[A, B any] interface {

	//Encode receives a value of the domain type and returns its
	//representation or an error if a collaborator failed
	//to encode part of it.
	Encode(A) (B, error)

	//Decode receives a representation and returns the value it
	//was encoded from or an error if the representation could
	//not have been produced by Encode.
	Decode(B) (A, error)
}

type funcInjection[A, B any] struct {
	encode func(A) (B, error)
	decode func(B) (A, error)
}

/*
New takes an encoding function and its partial inverse and returns
an Injection that uses them.
*/
func New[A, B any](encode func(A) (B, error), decode func(B) (A, error)) Injection[A, B] {
	return &funcInjection[A, B]{encode, decode}
}

func (fi *funcInjection[A, B]) Encode(a A) (B, error) {
	return fi.encode(a)
}

func (fi *funcInjection[A, B]) Decode(b B) (A, error) {
	return fi.decode(b)
}

type composed[A, B, C any] struct {
	first  Injection[A, B]
	second Injection[B, C]
}

/*
Compose takes an Injection from A to B and one from B to C and returns
an Injection from A to C. Encoding applies first and then second, decoding
applies them in reverse. The error of the failing stage is returned as is.
*/
func Compose[A, B, C any](first Injection[A, B], second Injection[B, C]) Injection[A, C] {
	return &composed[A, B, C]{first, second}
}

func (c *composed[A, B, C]) Encode(a A) (C, error) {
	var zero C
	b, err := c.first.Encode(a)
	if err != nil {
		return zero, err
	}
	return c.second.Encode(b)
}

func (c *composed[A, B, C]) Decode(v C) (A, error) {
	var zero A
	b, err := c.second.Decode(v)
	if err != nil {
		return zero, err
	}
	return c.first.Decode(b)
}
