package feature

import "fmt"

/*
Kind is the measurement kind of a dispatched feature value.
*/
type Kind int

const (
	// OrdinalKind tags values taken from an ordered discrete scale
	OrdinalKind Kind = iota + 1
	// NominalKind tags values taken from an unordered discrete set
	NominalKind
	// ContinuousKind tags numeric measurements
	ContinuousKind
	// SparseKind tags sparse vectors of measurements
	SparseKind
)

func (k Kind) String() string {
	switch k {
	case OrdinalKind:
		return "ordinal"
	case NominalKind:
		return "nominal"
	case ContinuousKind:
		return "continuous"
	case SparseKind:
		return "sparse"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
Dispatched is a feature observation tagged by its measurement kind. It holds
exactly one of an ordinal A, a nominal B, a continuous C or a sparse D.

Values are built with Ordinal, Nominal, Continuous and Sparse; the zero
Dispatched has no kind and is never produced by a decoder.
*/
type Dispatched[A, B, C, D any] struct {
	kind       Kind
	ordinal    A
	nominal    B
	continuous C
	sparse     D
}

// Ordinal returns a Dispatched holding the ordinal value a.
func Ordinal[A, B, C, D any](a A) Dispatched[A, B, C, D] {
	return Dispatched[A, B, C, D]{kind: OrdinalKind, ordinal: a}
}

// Nominal returns a Dispatched holding the nominal value b.
func Nominal[A, B, C, D any](b B) Dispatched[A, B, C, D] {
	return Dispatched[A, B, C, D]{kind: NominalKind, nominal: b}
}

// Continuous returns a Dispatched holding the continuous value c.
func Continuous[A, B, C, D any](c C) Dispatched[A, B, C, D] {
	return Dispatched[A, B, C, D]{kind: ContinuousKind, continuous: c}
}

// Sparse returns a Dispatched holding the sparse value d.
func Sparse[A, B, C, D any](d D) Dispatched[A, B, C, D] {
	return Dispatched[A, B, C, D]{kind: SparseKind, sparse: d}
}

// Kind returns which of the four values the Dispatched holds.
func (d Dispatched[A, B, C, D]) Kind() Kind {
	return d.kind
}

// Ordinal returns the ordinal value and whether d holds one.
func (d Dispatched[A, B, C, D]) Ordinal() (A, bool) {
	return d.ordinal, d.kind == OrdinalKind
}

// Nominal returns the nominal value and whether d holds one.
func (d Dispatched[A, B, C, D]) Nominal() (B, bool) {
	return d.nominal, d.kind == NominalKind
}

// Continuous returns the continuous value and whether d holds one.
func (d Dispatched[A, B, C, D]) Continuous() (C, bool) {
	return d.continuous, d.kind == ContinuousKind
}

// Sparse returns the sparse value and whether d holds one.
func (d Dispatched[A, B, C, D]) Sparse() (D, bool) {
	return d.sparse, d.kind == SparseKind
}

func (d Dispatched[A, B, C, D]) String() string {
	switch d.kind {
	case OrdinalKind:
		return fmt.Sprintf("ordinal(%v)", d.ordinal)
	case NominalKind:
		return fmt.Sprintf("nominal(%v)", d.nominal)
	case ContinuousKind:
		return fmt.Sprintf("continuous(%v)", d.continuous)
	case SparseKind:
		return fmt.Sprintf("sparse(%v)", d.sparse)
	}
	return "undefined"
}
