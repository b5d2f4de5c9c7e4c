package predict

import (
	"errors"
	"sync/atomic"

	"croprecd/pkg/types"
)

func f64(v float64) *float64 { return &v }

// exampleInput is the documented revision 1 sample.
func exampleInput() *types.SoilParameters {
	return &types.SoilParameters{
		N: f64(90), P: f64(42), K: f64(43),
		Temperature: f64(20.8), Humidity: f64(82), PH: f64(6.5), Rainfall: f64(202.9),
	}
}

func soilInput(soil string, rainfall float64) *types.SoilTypeParameters {
	return &types.SoilTypeParameters{
		SoilType: soil,
		SoilPH:   f64(6.5), Temperature: f64(24), Humidity: f64(70), WindSpeed: f64(12),
		N: f64(90), P: f64(42), K: f64(43), AnnualRainfall: f64(rainfall),
	}
}

// stubClassifier always predicts class, counting calls. It has no
// probability estimate.
type stubClassifier struct {
	nFeat, nClass int
	class         int
	err           error
	calls         atomic.Int32
}

func (s *stubClassifier) Predict(features []float64) (int, error) {
	s.calls.Add(1)
	if s.err != nil {
		return 0, s.err
	}
	if len(features) != s.nFeat {
		return 0, errors.New("wrong width")
	}
	return s.class, nil
}
func (s *stubClassifier) TypeName() string       { return "Stub" }
func (s *stubClassifier) NumFeatures() int       { return s.nFeat }
func (s *stubClassifier) NumClasses() int        { return s.nClass }
func (s *stubClassifier) FeatureNames() []string { return nil }

// probaStub adds a fixed probability vector.
type probaStub struct {
	stubClassifier
	proba []float64
}

func (p *probaStub) PredictProba(features []float64) ([]float64, error) {
	return append([]float64(nil), p.proba...), nil
}
