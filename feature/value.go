package feature

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

/*
Value is the feature value used by standard trees: ordinal ranks as
int64, nominal labels as strings, continuous measurements as float64
and sparse vectors as label-keyed weights.
*/
type Value = Dispatched[int64, string, float64, map[string]float64]

// OrdinalValue returns an ordinal Value.
func OrdinalValue(rank int64) Value {
	return Ordinal[int64, string, float64, map[string]float64](rank)
}

// NominalValue returns a nominal Value.
func NominalValue(label string) Value {
	return Nominal[int64, string, float64, map[string]float64](label)
}

// ContinuousValue returns a continuous Value.
func ContinuousValue(x float64) Value {
	return Continuous[int64, string, float64, map[string]float64](x)
}

// SparseValue returns a sparse Value.
func SparseValue(weights map[string]float64) Value {
	return Sparse[int64, string, float64, map[string]float64](weights)
}

/*
CompareValues is a total order on Value. Values of different kinds are
ordered by kind; values of the same kind are ordered naturally, sparse
vectors being compared entry by entry in label order.

It returns a negative number when a < b, a positive one when a > b and 0
otherwise.
*/
func CompareValues(a, b Value) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch a.kind {
	case OrdinalKind:
		return cmp.Compare(a.ordinal, b.ordinal)
	case NominalKind:
		return cmp.Compare(a.nominal, b.nominal)
	case ContinuousKind:
		return cmp.Compare(a.continuous, b.continuous)
	case SparseKind:
		return compareSparse(a.sparse, b.sparse)
	}
	return 0
}

func compareSparse(a, b map[string]float64) int {
	ak := maps.Keys(a)
	bk := maps.Keys(b)
	slices.Sort(ak)
	slices.Sort(bk)
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if c := cmp.Compare(ak[i], bk[i]); c != 0 {
			return c
		}
		if c := cmp.Compare(a[ak[i]], b[bk[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ak), len(bk))
}
