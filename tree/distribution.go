package tree

import (
	"fmt"
	"strings"
)

/*
Distribution is the target distribution held by the leaves of standard
trees: a weight for each label value.
*/
type Distribution map[string]float64

/*
Combine takes two distributions and returns a new one with the weights of
both added label by label. It is associative and has the empty distribution
as identity.
*/
func Combine(d1, d2 Distribution) Distribution {
	merged := make(Distribution, len(d1)+len(d2))
	for c, w := range d1 {
		merged[c] = w
	}
	for c, w := range d2 {
		merged[c] += w
	}
	return merged
}

// Total returns the sum of the weights in the distribution.
func (d Distribution) Total() float64 {
	var total float64
	for _, w := range d {
		total += w
	}
	return total
}

/*
PredictedValue returns a string with the label with the highest weight
and its share of the total weight.
*/
func (d Distribution) PredictedValue() (value string, prob float64) {
	var weight float64
	var found bool
	for k, w := range d {
		if !found || w > weight || (w == weight && k < value) {
			value, weight, found = k, w, true
		}
	}
	if total := d.Total(); total > 0 {
		prob = weight / total
	}
	return
}

func (d Distribution) String() string {
	return strings.Replace(fmt.Sprintf("%v", map[string]float64(d)), "map", "", 1)
}
