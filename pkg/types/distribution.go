package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ClassProbability is one labelled probability.
type ClassProbability struct {
	Crop        string
	Probability float64
}

// Distribution maps crop labels to probabilities. It encodes as a JSON object
// whose key order is the insertion order.
type Distribution = orderedmap.OrderedMap[string, float64]

// NewDistribution builds a Distribution holding ps in order.
func NewDistribution(ps []ClassProbability) *Distribution {
	d := orderedmap.New[string, float64]()
	for _, p := range ps {
		d.Set(p.Crop, p.Probability)
	}
	return d
}

// Entries lists d in order. A nil d has no entries.
func Entries(d *Distribution) []ClassProbability {
	if d == nil {
		return nil
	}
	out := make([]ClassProbability, 0, d.Len())
	for pair := d.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, ClassProbability{Crop: pair.Key, Probability: pair.Value})
	}
	return out
}

// Sum is the total probability mass of d.
func Sum(d *Distribution) float64 {
	var s float64
	for _, cp := range Entries(d) {
		s += cp.Probability
	}
	return s
}
