// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/hppdev/house-price-predictor/pkg/errors"
)

// Reasons attached to a FieldError.
const (
	ReasonMissing    = "missing"
	ReasonType       = "type"
	ReasonOutOfRange = "out_of_range"
)

// PredictionRequest is validated, normalized prediction input.
type PredictionRequest struct {
	Bedrooms  float64 `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms float64 `json:"bathrooms" yaml:"bathrooms"`
	Sqft      float64 `json:"sqft" yaml:"sqft"`
	Age       float64 `json:"age" yaml:"age"`
}

// Features returns the request as an ordered feature vector
// [bedrooms, bathrooms, sqft, age].
func (r PredictionRequest) Features() []float64 {
	return []float64{r.Bedrooms, r.Bathrooms, r.Sqft, r.Age}
}

// FieldError describes the first problem found with the input.
type FieldError struct {
	Field   string
	Reason  string
	Message string

	cause error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap returns the coercion error, if any.
func (e *FieldError) Unwrap() error {
	return e.cause
}

// Validate checks raw input and returns the normalized request. Errors are
// StructuredErrors with ErrCodeInvalidRequest wrapping a *FieldError; the
// structured message is the client-facing text.
func Validate(raw map[string]any) (*PredictionRequest, error) {
	for _, f := range RequiredFields {
		if _, ok := raw[f]; !ok {
			return nil, fail(&FieldError{
				Field:   f,
				Reason:  ReasonMissing,
				Message: fmt.Sprintf("Missing required field: %s", f),
			})
		}
	}

	values := make(map[string]float64, len(RequiredFields))
	for _, f := range RequiredFields {
		v, err := toFloat(raw[f])
		if err != nil {
			return nil, fail(&FieldError{
				Field:   f,
				Reason:  ReasonType,
				Message: fmt.Sprintf("Invalid data type: %s must be a number", f),
				cause:   err,
			})
		}
		values[f] = v
	}

	for _, c := range Constraints {
		if !c.Evaluate(values[c.Field]) {
			return nil, fail(&FieldError{
				Field:   c.Field,
				Reason:  ReasonOutOfRange,
				Message: c.Message,
			})
		}
	}

	return &PredictionRequest{
		Bedrooms:  values[FieldBedrooms],
		Bathrooms: values[FieldBathrooms],
		Sqft:      values[FieldSqft],
		Age:       values[FieldAge],
	}, nil
}

func fail(fe *FieldError) error {
	validationFailures.WithLabelValues(fe.Field, fe.Reason).Inc()
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, fe.Message, fe,
		map[string]any{
			"field":  fe.Field,
			"reason": fe.Reason,
		})
}

var errNotNumeric = errors.New("not a number")

// toFloat coerces a decoded JSON value (or a Go numeric) to float64.
// Numeric strings are accepted after trimming whitespace; booleans, null,
// arrays and objects are rejected.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return parseNumeric(string(n))
	case string:
		return parseNumeric(n)
	case nil:
		return 0, fmt.Errorf("%w: got null", errNotNumeric)
	default:
		return 0, fmt.Errorf("%w: got %T", errNotNumeric, v)
	}
}

func parseNumeric(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil {
		return f, nil
	}
	// Overflow yields ±Inf, which the bounds check rejects with a clearer message.
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", errNotNumeric, s)
}
