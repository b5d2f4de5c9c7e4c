package predict

import (
	"errors"
	"fmt"
	"strings"
)

// notLoadedError signals that the artifact an operation needs is absent, so
// the HTTP layer can return 503 Service Unavailable.
type notLoadedError struct{ msg string }

func (e notLoadedError) Error() string { return e.msg }

// IsNotLoaded reports whether err means the registry is not loaded.
func IsNotLoaded(err error) bool {
	var e notLoadedError
	return errors.As(err, &e)
}

// ValidationError lists every problem found in a request. Strict is set for
// failures of the /validate bounds rather than the request schema.
type ValidationError struct {
	Messages []string
	Strict   bool
}

func (e *ValidationError) Error() string {
	return "invalid parameters: " + strings.Join(e.Messages, "; ")
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// unknownCategoryError is returned when a categorical value was never seen
// by its encoder. It is a client error, not a model failure.
type unknownCategoryError struct {
	field string
	value string
	known []string
}

func (e unknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s '%s'. Valid values: %s", e.field, e.value, strings.Join(e.known, ", "))
}

// IsUnknownCategory reports whether err is an unrecognised categorical value.
func IsUnknownCategory(err error) bool {
	var e unknownCategoryError
	return errors.As(err, &e)
}

// batchTooLargeError rejects a whole batch above MaxBatchSize.
type batchTooLargeError struct{ size int }

func (e batchTooLargeError) Error() string {
	return fmt.Sprintf("Batch size too large. Maximum %d predictions per request, got %d.", MaxBatchSize, e.size)
}

// IsBatchTooLarge reports whether err rejected an oversized batch.
func IsBatchTooLarge(err error) bool {
	var e batchTooLargeError
	return errors.As(err, &e)
}

// predictionError wraps any failure inside the classifier or label decoding.
type predictionError struct{ cause error }

func (e predictionError) Error() string { return "Error making prediction: " + e.cause.Error() }
func (e predictionError) Unwrap() error { return e.cause }

// IsPredictionFailure reports whether err came from model inference.
func IsPredictionFailure(err error) bool {
	var e predictionError
	return errors.As(err, &e)
}
