package model

// RandomForest averages the leaf distributions of its trees. The predicted
// class is the argmax of the averaged distribution, first index on ties.
type RandomForest struct {
	meta
	trees    []tree
	maxDepth *int
}

func (f *RandomForest) Predict(features []float64) (int, error) {
	p, err := f.PredictProba(features)
	if err != nil {
		return 0, err
	}
	return argmax(p), nil
}

func (f *RandomForest) PredictProba(features []float64) ([]float64, error) {
	if err := f.checkWidth(features); err != nil {
		return nil, err
	}
	out := make([]float64, f.nClass)
	for _, t := range f.trees {
		for i, p := range t.proba(features) {
			out[i] += p
		}
	}
	n := float64(len(f.trees))
	for i := range out {
		out[i] /= n
	}
	return out, nil
}

func (f *RandomForest) NEstimators() int { return len(f.trees) }
func (f *RandomForest) MaxDepth() *int   { return f.maxDepth }
