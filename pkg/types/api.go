package types

// Input is a validated prediction request body of either API revision.
type Input interface {
	// Parameters echoes the request fields keyed by their JSON names.
	Parameters() map[string]any
}

// SoilParameters is the revision 1 request body. All fields are required;
// pointers distinguish an omitted field from an explicit zero.
type SoilParameters struct {
	// Nitrogen content in soil.
	// example: 90
	N *float64 `json:"N" validate:"required,gte=0,lte=200" example:"90"`
	// Phosphorus content in soil.
	// example: 42
	P *float64 `json:"P" validate:"required,gte=0,lte=200" example:"42"`
	// Potassium content in soil.
	// example: 43
	K *float64 `json:"K" validate:"required,gte=0,lte=200" example:"43"`
	// Temperature in Celsius.
	// example: 20.8
	Temperature *float64 `json:"temperature" validate:"required,gte=0,lte=50" example:"20.8"`
	// Relative humidity percentage.
	// example: 82
	Humidity *float64 `json:"humidity" validate:"required,gte=0,lte=100" example:"82"`
	// pH value of soil.
	// example: 6.5
	PH *float64 `json:"ph" validate:"required,gte=0,lte=14" example:"6.5"`
	// Rainfall in mm.
	// example: 202.9
	Rainfall *float64 `json:"rainfall" validate:"required,gte=0,lte=500" example:"202.9"`
}

func (s *SoilParameters) Parameters() map[string]any {
	return map[string]any{
		"N":           deref(s.N),
		"P":           deref(s.P),
		"K":           deref(s.K),
		"temperature": deref(s.Temperature),
		"humidity":    deref(s.Humidity),
		"ph":          deref(s.PH),
		"rainfall":    deref(s.Rainfall),
	}
}

// SoilTypeParameters is the revision 2 request body. SoilType is checked
// against the soil encoder at prediction time, not here.
type SoilTypeParameters struct {
	// Soil type as seen during training.
	// example: Loamy
	SoilType string `json:"soil_type" validate:"required" example:"Loamy"`
	// pH value of soil.
	// example: 6.5
	SoilPH *float64 `json:"soil_ph" validate:"required,gte=0,lte=14" example:"6.5"`
	// Temperature in Celsius.
	// example: 24
	Temperature *float64 `json:"temperature" validate:"required,gte=-20,lte=60" example:"24"`
	// Relative humidity percentage.
	// example: 70
	Humidity *float64 `json:"humidity" validate:"required,gte=0,lte=100" example:"70"`
	// Wind speed in km/h.
	// example: 12
	WindSpeed *float64 `json:"wind_speed" validate:"required,gte=0,lte=150" example:"12"`
	// Nitrogen content in soil.
	// example: 90
	N *float64 `json:"N" validate:"required,gte=0,lte=500" example:"90"`
	// Phosphorus content in soil.
	// example: 42
	P *float64 `json:"P" validate:"required,gte=0,lte=500" example:"42"`
	// Potassium content in soil.
	// example: 43
	K *float64 `json:"K" validate:"required,gte=0,lte=500" example:"43"`
	// Annual rainfall in mm.
	// example: 1200
	AnnualRainfall *float64 `json:"annual_rainfall" validate:"required,gte=0,lte=5000" example:"1200"`
}

func (s *SoilTypeParameters) Parameters() map[string]any {
	return map[string]any{
		"soil_type":       s.SoilType,
		"soil_ph":         deref(s.SoilPH),
		"temperature":     deref(s.Temperature),
		"humidity":        deref(s.Humidity),
		"wind_speed":      deref(s.WindSpeed),
		"N":               deref(s.N),
		"P":               deref(s.P),
		"K":               deref(s.K),
		"annual_rainfall": deref(s.AnnualRainfall),
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// PredictionResult is returned by POST /predict and, without AllProbabilities,
// per item by POST /predict/batch.
type PredictionResult struct {
	// Predicted crop label.
	// example: rice
	PredictedCrop string `json:"predicted_crop" example:"rice"`
	// Highest class probability, or 1.0 when the model has no probability estimate.
	// example: 0.79
	Confidence float64 `json:"confidence" example:"0.79"`
	// Echo of the request parameters.
	InputParameters map[string]any `json:"input_parameters"`
	// Probability of every crop, highest first.
	AllProbabilities *Distribution `json:"all_probabilities,omitempty" swaggertype:"object,number"`
}

// HealthCheck is returned by GET / and GET /health.
type HealthCheck struct {
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// example: All models are loaded and ready
	Message string `json:"message" example:"All models are loaded and ready"`
	// example: 1.0.0
	Version string `json:"version" example:"1.0.0"`
}

// CropsResponse is returned by GET /crops.
type CropsResponse struct {
	// Crop labels in lexical order.
	AvailableCrops []string `json:"available_crops"`
	// example: 22
	TotalCrops int `json:"total_crops" example:"22"`
}

// SoilTypesResponse is returned by GET /soil-types.
type SoilTypesResponse struct {
	// Soil type labels in lexical order.
	AvailableSoilTypes []string `json:"available_soil_types"`
	// example: 5
	TotalSoilTypes int `json:"total_soil_types" example:"5"`
}

// ModelInfo is returned by GET /model/info.
type ModelInfo struct {
	// example: RandomForestClassifier
	ModelType string `json:"model_type" example:"RandomForestClassifier"`
	// Feature columns in the order fed to the model.
	Features []string `json:"features"`
	// example: 7
	NFeatures int `json:"n_features" example:"7"`
	// example: 22
	NClasses int `json:"n_classes" example:"22"`
	// Present for tree ensembles.
	// example: 100
	NEstimators *int `json:"n_estimators,omitempty" example:"100"`
	// Present for tree models with a depth limit.
	// example: 10
	MaxDepth *int `json:"max_depth,omitempty" example:"10"`
	// Whether predictions carry a probability distribution.
	// example: true
	Probabilities bool `json:"supports_probabilities" example:"true"`
}

// ValidationResponse is returned by POST /validate.
type ValidationResponse struct {
	// example: true
	Valid bool `json:"valid" example:"true"`
	// example: All parameters are valid
	Message string `json:"message" example:"All parameters are valid"`
	// Echo of the validated parameters.
	Parameters map[string]any `json:"parameters"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
	// Individual problems, e.g. each out-of-range field.
	Details []string `json:"details,omitempty"`
}

// APIVersion is reported by the health endpoints.
const APIVersion = "1.0.0"
