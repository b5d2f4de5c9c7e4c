package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_KeepsOrder(t *testing.T) {
	ps := []ClassProbability{{"rice", 0.7}, {"apple", 0.2}, {"banana", 0.1}}
	b, err := json.Marshal(NewDistribution(ps))
	require.NoError(t, err)
	assert.Equal(t, `{"rice":0.7,"apple":0.2,"banana":0.1}`, string(b))

	back := NewDistribution(nil)
	require.NoError(t, json.Unmarshal(b, back))
	assert.Equal(t, ps, Entries(back))
	assert.InDelta(t, 1.0, Sum(back), 1e-9)
}

func TestDistribution_InResult(t *testing.T) {
	res := PredictionResult{
		PredictedCrop:    "rice",
		Confidence:       0.6,
		AllProbabilities: NewDistribution([]ClassProbability{{"rice", 0.6}, {"maize", 0.4}}),
	}
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"all_probabilities":{"rice":0.6,"maize":0.4}`)

	var back PredictionResult
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.AllProbabilities)
	assert.Equal(t, []ClassProbability{{"rice", 0.6}, {"maize", 0.4}}, Entries(back.AllProbabilities))
}

func TestDistribution_OmittedWhenNil(t *testing.T) {
	b, err := json.Marshal(PredictionResult{PredictedCrop: "rice", Confidence: 1})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "all_probabilities")
	assert.Nil(t, Entries(nil))
	assert.Zero(t, Sum(nil))
}

func TestDistribution_RejectsNonObject(t *testing.T) {
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), NewDistribution(nil)))
	assert.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), NewDistribution(nil)))
}

func TestParameters_Echo(t *testing.T) {
	v := 90.0
	p := &SoilTypeParameters{SoilType: "Clay", N: &v}
	got := p.Parameters()
	assert.Equal(t, "Clay", got["soil_type"])
	assert.Equal(t, 90.0, got["N"])
	assert.Equal(t, 0.0, got["annual_rainfall"])
	assert.Len(t, got, 9)
	assert.Len(t, (&SoilParameters{}).Parameters(), 7)
}
