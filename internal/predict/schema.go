package predict

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"croprecd/pkg/types"
)

// validate checks the bounds declared in the request struct tags and
// reports fields by their JSON names.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ValidateInput applies the request schema. It returns a *ValidationError
// naming every failing field.
func ValidateInput(in types.Input) error {
	if in == nil {
		return &ValidationError{Messages: []string{"request body is required"}}
	}
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return &ValidationError{Messages: []string{err.Error()}}
	}
	msgs := make([]string, 0, len(fes))
	for _, fe := range fes {
		msgs = append(msgs, describe(fe))
	}
	return &ValidationError{Messages: msgs}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// Bound is an inclusive range for one numeric request field.
type Bound struct {
	Field    string
	Min, Max float64
}

// StrictSoilBounds are the ranges POST /validate re-checks on top of the
// request schema. They are narrower: N, P and K stop at 200 here while the
// schema allows 500.
var StrictSoilBounds = []Bound{
	{Field: "soil_ph", Min: 0, Max: 14},
	{Field: "temperature", Min: 0, Max: 50},
	{Field: "humidity", Min: 0, Max: 100},
	{Field: "wind_speed", Min: 0, Max: 100},
	{Field: "N", Min: 0, Max: 200},
	{Field: "P", Min: 0, Max: 200},
	{Field: "K", Min: 0, Max: 200},
	{Field: "annual_rainfall", Min: 0, Max: 3000},
}

// checkBounds returns a message per parameter outside its bound.
func checkBounds(params map[string]any, bounds []Bound) []string {
	var msgs []string
	for _, b := range bounds {
		v, ok := params[b.Field].(float64)
		if !ok {
			continue
		}
		if v < b.Min || v > b.Max {
			msgs = append(msgs, fmt.Sprintf("%s must be between %g and %g", b.Field, b.Min, b.Max))
		}
	}
	return msgs
}
