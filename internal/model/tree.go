package model

import (
	"errors"
	"fmt"
	"math"
)

// Node is one entry of a flattened binary decision tree. Internal nodes route
// a sample left when features[Feature] <= Threshold. Leaves have Feature < 0
// and carry per-class counts (or fractions) in Value.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

func (n Node) leaf() bool { return n.Feature < 0 }

// tree is a validated node table; node 0 is the root.
type tree struct {
	nodes []Node
}

// newTree checks the node table so that traversal always terminates on a
// leaf with a well-formed class distribution.
func newTree(nodes []Node, nFeat, nClass int) (tree, error) {
	if len(nodes) == 0 {
		return tree{}, errors.New("tree has no nodes")
	}
	for i, n := range nodes {
		if n.leaf() {
			if len(n.Value) != nClass {
				return tree{}, fmt.Errorf("leaf %d has %d class values, want %d", i, len(n.Value), nClass)
			}
			var sum float64
			for _, v := range n.Value {
				if v < 0 {
					return tree{}, fmt.Errorf("leaf %d has a negative class value", i)
				}
				sum += v
			}
			if sum == 0 {
				return tree{}, fmt.Errorf("leaf %d has an empty class distribution", i)
			}
			if math.IsInf(sum, 0) || math.IsNaN(sum) {
				return tree{}, fmt.Errorf("leaf %d has a non-finite class total", i)
			}
			continue
		}
		if n.Feature >= nFeat {
			return tree{}, fmt.Errorf("node %d splits on feature %d, model has %d", i, n.Feature, nFeat)
		}
		// Children must come after their parent, which rules out cycles.
		if n.Left <= i || n.Left >= len(nodes) || n.Right <= i || n.Right >= len(nodes) {
			return tree{}, fmt.Errorf("node %d has invalid children (%d, %d)", i, n.Left, n.Right)
		}
	}
	return tree{nodes: nodes}, nil
}

// leafFor walks the tree for one sample.
func (t tree) leafFor(features []float64) Node {
	n := t.nodes[0]
	for !n.leaf() {
		if features[n.Feature] <= n.Threshold {
			n = t.nodes[n.Left]
		} else {
			n = t.nodes[n.Right]
		}
	}
	return n
}

// proba returns the normalized class distribution of the sample's leaf.
func (t tree) proba(features []float64) []float64 {
	leaf := t.leafFor(features)
	var sum float64
	for _, v := range leaf.Value {
		sum += v
	}
	out := make([]float64, len(leaf.Value))
	for i, v := range leaf.Value {
		out[i] = v / sum
	}
	return out
}

// DecisionTree is a single CART classifier.
type DecisionTree struct {
	meta
	t        tree
	maxDepth *int
}

func (d *DecisionTree) Predict(features []float64) (int, error) {
	p, err := d.PredictProba(features)
	if err != nil {
		return 0, err
	}
	return argmax(p), nil
}

func (d *DecisionTree) PredictProba(features []float64) ([]float64, error) {
	if err := d.checkWidth(features); err != nil {
		return nil, err
	}
	return d.t.proba(features), nil
}

func (d *DecisionTree) MaxDepth() *int { return d.maxDepth }
