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

package predictor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	apperrors "github.com/hppdev/house-price-predictor/pkg/errors"
	"github.com/hppdev/house-price-predictor/pkg/model"
	"github.com/hppdev/house-price-predictor/pkg/validator"
)

// Service computes predictions from a loaded model.
type Service struct {
	state *model.State
}

// NewService returns a Service backed by state. A nil or unloaded state
// produces a Service whose Predict always reports ErrCodeUnavailable.
func NewService(state *model.State) *Service {
	return &Service{state: state}
}

// Available reports whether predictions can be served.
func (s *Service) Available() bool {
	return s != nil && s.state.Loaded()
}

// State returns the underlying serving state.
func (s *Service) State() *model.State {
	if s == nil {
		return nil
	}
	return s.state
}

// Predict returns the estimated price for req rounded to two decimals.
func (s *Service) Predict(ctx context.Context, req *validator.PredictionRequest) (price float64, err error) {
	if !s.Available() {
		predictions.WithLabelValues(resultUnavailable).Inc()
		return 0, apperrors.New(apperrors.ErrCodeUnavailable, "prediction model is not loaded")
	}
	if req == nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidRequest, "prediction request is nil")
	}
	if err := ctx.Err(); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeUnavailable, "prediction canceled", err)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.New(apperrors.ErrCodeInternal, fmt.Sprintf("prediction panicked: %v", r))
		}
		if err != nil {
			predictions.WithLabelValues(resultError).Inc()
			slog.Error("prediction failed", "error", err)
			return
		}
		predictions.WithLabelValues(resultSuccess).Inc()
		predictionDuration.Observe(time.Since(start).Seconds())
		predictionValue.Observe(price)
	}()

	a := s.state.Artifacts()

	scaled, err := a.Scaler.Transform(req.Features())
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to scale features", err)
	}

	raw, err := a.Regressor.Predict(scaled)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to apply regression", err)
	}

	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInternal, "prediction is not a finite number",
			map[string]any{"value": fmt.Sprint(raw)})
	}

	return Round(raw), nil
}

// Round rounds v to two decimal places, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
