// Package model implements the classifier families a croprecd artifact can
// declare. Classifiers are immutable once decoded and safe for concurrent use.
package model

import "fmt"

// Classifier predicts an encoded class id from a feature vector.
type Classifier interface {
	Predict(features []float64) (int, error)
	// TypeName is the model family as written in the artifact, e.g. RandomForestClassifier.
	TypeName() string
	NumFeatures() int
	NumClasses() int
	// FeatureNames returns the training column order if the artifact recorded it.
	FeatureNames() []string
}

// ProbabilityEstimator is implemented by classifiers that can estimate a
// per-class probability vector. Index i is the probability of class id i.
type ProbabilityEstimator interface {
	PredictProba(features []float64) ([]float64, error)
}

// Estimators is implemented by ensembles.
type Estimators interface {
	NEstimators() int
}

// DepthLimited is implemented by tree models. A nil depth means unlimited.
type DepthLimited interface {
	MaxDepth() *int
}

// meta carries the fields common to every classifier family.
type meta struct {
	typeName string
	nFeat    int
	nClass   int
	names    []string
}

func (m meta) TypeName() string { return m.typeName }
func (m meta) NumFeatures() int { return m.nFeat }
func (m meta) NumClasses() int  { return m.nClass }

func (m meta) FeatureNames() []string {
	if len(m.names) == 0 {
		return nil
	}
	return append([]string(nil), m.names...)
}

func (m meta) checkWidth(features []float64) error {
	if len(features) != m.nFeat {
		return fmt.Errorf("%s expects %d features, got %d", m.typeName, m.nFeat, len(features))
	}
	return nil
}

// argmax returns the first index holding the largest value.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
