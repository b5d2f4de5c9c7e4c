package predict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croprecd/pkg/types"
)

func TestValidateInput_Messages(t *testing.T) {
	in := &types.SoilParameters{N: f64(250), P: f64(0), K: f64(43), Temperature: f64(-1), Humidity: f64(82), PH: f64(6.5)}
	err := ValidateInput(in)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.False(t, ve.Strict)
	assert.Equal(t, []string{
		"N must be less than or equal to 200",
		"temperature must be greater than or equal to 0",
		"rainfall is required",
	}, ve.Messages)
}

func TestValidateInput_ZeroIsPresent(t *testing.T) {
	in := &types.SoilParameters{N: f64(0), P: f64(0), K: f64(0), Temperature: f64(0), Humidity: f64(0), PH: f64(0), Rainfall: f64(0)}
	assert.NoError(t, ValidateInput(in))
}

func TestValidateInput_SoilSchema(t *testing.T) {
	in := soilInput("", 5001)
	in.Temperature = f64(-20)
	in.N = f64(500)
	err := ValidateInput(in)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{
		"soil_type is required",
		"annual_rainfall must be less than or equal to 5000",
	}, ve.Messages)
}

func TestValidateInput_Nil(t *testing.T) {
	assert.True(t, IsValidation(ValidateInput(nil)))
	var p *types.SoilParameters
	assert.True(t, IsValidation(ValidateInput(p)))
}

func TestCheckBounds(t *testing.T) {
	params := map[string]any{"N": 200.0, "P": 200.5, "soil_type": "Clay"}
	msgs := checkBounds(params, []Bound{{Field: "N", Max: 200}, {Field: "P", Max: 200}, {Field: "missing", Max: 1}})
	assert.Equal(t, []string{"P must be between 0 and 200"}, msgs)
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, "not_loaded", errorKind(notLoadedError{msg: "x"}))
	assert.Equal(t, "validation", errorKind(&ValidationError{}))
	assert.Equal(t, "unknown_category", errorKind(unknownCategoryError{}))
	assert.Equal(t, "batch_too_large", errorKind(batchTooLargeError{size: 101}))
	assert.Equal(t, "inference", errorKind(predictionError{cause: errors.New("x")}))
	assert.Equal(t, "other", errorKind(errors.New("x")))
}
