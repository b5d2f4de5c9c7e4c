package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"croprecd/internal/registry"
	"croprecd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ready() bool
	Revision() registry.Revision
	NewInput() types.Input
	Health() types.HealthCheck
	Predict(ctx context.Context, in types.Input) (types.PredictionResult, error)
	PredictBatch(ctx context.Context, inputs []types.Input) ([]types.PredictionResult, error)
	Crops() (types.CropsResponse, error)
	SoilTypes() (types.SoilTypesResponse, error)
	ModelInfo() (types.ModelInfo, error)
	Validate(in types.Input) (types.ValidationResponse, error)
}

// NewMux builds the router. /soil-types and /validate exist only for the
// soil revision of the API.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
		}))
	}
	r.Use(RateLimitMiddleware)

	h := &handlers{svc: svc}
	r.Get("/", h.root)
	r.Get("/health", h.health)
	r.Post("/predict", h.predict)
	r.Post("/predict/batch", h.predictBatch)
	r.Get("/crops", h.crops)
	r.Get("/model/info", h.modelInfo)
	if svc.Revision() == registry.RevisionSoil {
		r.Get("/soil-types", h.soilTypes)
		r.Post("/validate", h.validate)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("models not loaded"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}
