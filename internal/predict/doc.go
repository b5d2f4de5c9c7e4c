// Package predict turns validated soil parameters into crop recommendations
// using the classifier and encoders held by a registry.Registry.
//
//   - service.go: Service, the single-prediction path, metadata lookups.
//   - batch.go: PredictBatch, bounded fan-out over errgroup.
//   - schema.go: request schema checks and the stricter /validate bounds.
//   - errors.go: error kinds the HTTP layer maps to status codes.
//   - cache.go: optional LRU of model outcomes keyed by feature vector.
//   - metrics.go: Prometheus collectors for predictions.
//
// A Service never mutates its registry, so one instance serves all requests.
package predict
