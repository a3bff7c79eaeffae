package feature

import "fmt"

/*
Option holds zero or one value of type T.
The zero Option is empty.
*/
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

/*
Get returns the value held by the option and true, or the zero
value of T and false if the option is empty.
*/
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome returns whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("some(%v)", o.value)
}
