package predict

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"croprecd/internal/model"
	"croprecd/internal/registry"
	"croprecd/pkg/types"
)

// Service answers prediction and metadata requests from an immutable registry.
type Service struct {
	reg   *registry.Registry
	cfg   Config
	cache *outcomeCache
}

// New wraps reg. reg may be unloaded; every model-dependent call then fails
// with an error for which IsNotLoaded is true.
func New(reg *registry.Registry, cfg Config) *Service {
	if reg == nil {
		reg = registry.Unloaded(registry.RevisionBasic, "", "no registry")
	}
	cfg = cfg.withDefaults()
	s := &Service{reg: reg, cfg: cfg, cache: newOutcomeCache(cfg.CacheSize)}
	if reg.Loaded() {
		registryLoaded.Set(1)
	} else {
		registryLoaded.Set(0)
	}
	return s
}

// Ready reports whether the registry is loaded.
func (s *Service) Ready() bool { return s.reg.Loaded() }

// Revision is the API revision the registry was loaded for.
func (s *Service) Revision() registry.Revision { return s.reg.Revision() }

// NewInput returns an empty request body of the active revision for decoding.
func (s *Service) NewInput() types.Input {
	if s.reg.Revision() == registry.RevisionSoil {
		return &types.SoilTypeParameters{}
	}
	return &types.SoilParameters{}
}

// Health reports whether the models are loaded. It never fails.
func (s *Service) Health() types.HealthCheck {
	if !s.reg.Loaded() {
		return types.HealthCheck{Status: "unhealthy", Message: "Models are not loaded properly", Version: types.APIVersion}
	}
	return types.HealthCheck{Status: "healthy", Message: "All models are loaded and ready", Version: types.APIVersion}
}

// Predict recommends a crop for one input and includes the full probability
// distribution when the classifier can estimate one.
func (s *Service) Predict(ctx context.Context, in types.Input) (types.PredictionResult, error) {
	res, err := s.predict(ctx, in, true)
	if err != nil {
		predictionErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		return types.PredictionResult{}, err
	}
	return res, nil
}

func (s *Service) predict(ctx context.Context, in types.Input, withDist bool) (types.PredictionResult, error) {
	vec, err := s.prepare(ctx, in)
	if err != nil {
		return types.PredictionResult{}, err
	}
	o, err := s.infer(vec)
	if err != nil {
		return types.PredictionResult{}, err
	}
	predictionsTotal.WithLabelValues(o.crop).Inc()
	return o.result(in, withDist), nil
}

// prepare checks in and builds its feature row without touching the model.
func (s *Service) prepare(ctx context.Context, in types.Input) ([]float64, error) {
	if !s.reg.Loaded() {
		return nil, notLoadedError{msg: "Models are not loaded. Please check the model files."}
	}
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.vector(in)
}

// vector builds the feature row in registry column order.
func (s *Service) vector(in types.Input) ([]float64, error) {
	switch v := in.(type) {
	case *types.SoilParameters:
		if s.reg.Revision() != registry.RevisionBasic {
			return nil, &ValidationError{Messages: []string{"soil_type and wind_speed are required by this model"}}
		}
		return []float64{*v.N, *v.P, *v.K, *v.Temperature, *v.Humidity, *v.PH, *v.Rainfall}, nil
	case *types.SoilTypeParameters:
		if s.reg.Revision() != registry.RevisionSoil {
			return nil, &ValidationError{Messages: []string{"this model does not take soil_type"}}
		}
		soil, err := s.encodeSoil(v.SoilType)
		if err != nil {
			return nil, err
		}
		return []float64{soil, *v.SoilPH, *v.Temperature, *v.Humidity, *v.WindSpeed, *v.N, *v.P, *v.K, *v.AnnualRainfall}, nil
	default:
		return nil, fmt.Errorf("unsupported input type %T", in)
	}
}

func (s *Service) encodeSoil(value string) (float64, error) {
	soils := s.reg.Soils()
	id, ok := soils.Transform(value)
	if !ok {
		return 0, unknownCategoryError{field: "soil_type", value: value, known: soils.Sorted()}
	}
	return float64(id), nil
}

// infer runs the classifier, decodes the label and derives confidence.
func (s *Service) infer(vec []float64) (outcome, error) {
	key := vectorKey(vec)
	if o, ok := s.cache.get(key); ok {
		return o, nil
	}
	clf := s.reg.Classifier()
	crops := s.reg.Crops()

	start := time.Now()
	id, err := clf.Predict(vec)
	if err != nil {
		return outcome{}, predictionError{cause: err}
	}
	crop, err := crops.InverseTransform(id)
	if err != nil {
		return outcome{}, predictionError{cause: err}
	}
	o := outcome{crop: crop, confidence: 1.0}
	if pe, ok := clf.(model.ProbabilityEstimator); ok {
		proba, err := pe.PredictProba(vec)
		if err != nil {
			return outcome{}, predictionError{cause: err}
		}
		if o.dist, err = distribution(proba, crops); err != nil {
			return outcome{}, predictionError{cause: err}
		}
		o.confidence = o.dist[0].Probability
	}
	inferenceDuration.Observe(time.Since(start).Seconds())
	s.cache.add(key, o)
	return o, nil
}

// distribution labels proba by class id and sorts it highest first; equal
// probabilities keep encoder class order.
func distribution(proba []float64, crops *registry.LabelEncoder) ([]types.ClassProbability, error) {
	if len(proba) == 0 || len(proba) != crops.Len() {
		return nil, fmt.Errorf("classifier returned %d probabilities for %d classes", len(proba), crops.Len())
	}
	d := make([]types.ClassProbability, len(proba))
	for i, p := range proba {
		label, err := crops.InverseTransform(i)
		if err != nil {
			return nil, err
		}
		d[i] = types.ClassProbability{Crop: label, Probability: p}
	}
	sort.SliceStable(d, func(i, j int) bool { return d[i].Probability > d[j].Probability })
	return d, nil
}

// Crops lists every crop the model can predict.
func (s *Service) Crops() (types.CropsResponse, error) {
	crops := s.reg.Crops()
	if crops == nil {
		return types.CropsResponse{}, notLoadedError{msg: "Label encoder is not loaded."}
	}
	return types.CropsResponse{AvailableCrops: crops.Sorted(), TotalCrops: crops.Len()}, nil
}

// SoilTypes lists every soil type the soil encoder knows.
func (s *Service) SoilTypes() (types.SoilTypesResponse, error) {
	soils := s.reg.Soils()
	if soils == nil {
		return types.SoilTypesResponse{}, notLoadedError{msg: "Soil type encoder is not loaded."}
	}
	return types.SoilTypesResponse{AvailableSoilTypes: soils.Sorted(), TotalSoilTypes: soils.Len()}, nil
}

// ModelInfo describes the loaded classifier.
func (s *Service) ModelInfo() (types.ModelInfo, error) {
	clf := s.reg.Classifier()
	if clf == nil {
		return types.ModelInfo{}, notLoadedError{msg: "Model is not loaded."}
	}
	features := registry.Features(s.reg.Revision())
	info := types.ModelInfo{
		ModelType: clf.TypeName(),
		Features:  features,
		NFeatures: len(features),
		NClasses:  clf.NumClasses(),
	}
	if e, ok := clf.(model.Estimators); ok {
		n := e.NEstimators()
		info.NEstimators = &n
	}
	if d, ok := clf.(model.DepthLimited); ok {
		info.MaxDepth = d.MaxDepth()
	}
	_, info.Probabilities = clf.(model.ProbabilityEstimator)
	return info, nil
}

// Validate checks a revision 2 input against the schema, the soil encoder
// and StrictSoilBounds without running the model. Failures other than the
// schema come back as a *ValidationError with Strict set.
func (s *Service) Validate(in types.Input) (types.ValidationResponse, error) {
	soils := s.reg.Soils()
	if soils == nil {
		return types.ValidationResponse{}, notLoadedError{msg: "Soil type encoder is not loaded."}
	}
	if err := ValidateInput(in); err != nil {
		return types.ValidationResponse{}, err
	}
	v, ok := in.(*types.SoilTypeParameters)
	if !ok {
		return types.ValidationResponse{}, &ValidationError{Messages: []string{"soil_type is required"}, Strict: true}
	}
	var msgs []string
	if _, ok := soils.Transform(v.SoilType); !ok {
		msgs = append(msgs, fmt.Sprintf("Invalid soil type '%s'. Valid types: %s", v.SoilType, strings.Join(soils.Sorted(), ", ")))
	}
	params := v.Parameters()
	msgs = append(msgs, checkBounds(params, StrictSoilBounds)...)
	if len(msgs) > 0 {
		return types.ValidationResponse{}, &ValidationError{Messages: msgs, Strict: true}
	}
	return types.ValidationResponse{Valid: true, Message: "All parameters are valid", Parameters: params}, nil
}

// Source reports the artifact directory and, when unloaded, the reason.
func (s *Service) Source() (dir, reason string) { return s.reg.Dir(), s.reg.Err() }

// CachedOutcomes is the number of entries in the outcome cache.
func (s *Service) CachedOutcomes() int { return s.cache.len() }
