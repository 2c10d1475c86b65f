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

package model

import (
	"fmt"
	"math"
)

// StandardScaler standardizes features by removing the fitted mean and
// dividing by the fitted standard deviation.
type StandardScaler struct {
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

// Validate checks the fitted parameters.
func (s *StandardScaler) Validate() error {
	if len(s.Mean) != NumFeatures {
		return fmt.Errorf("scaler mean has %d entries, expected %d", len(s.Mean), NumFeatures)
	}
	if len(s.Scale) != NumFeatures {
		return fmt.Errorf("scaler scale has %d entries, expected %d", len(s.Scale), NumFeatures)
	}
	for i := range NumFeatures {
		if !isFinite(s.Mean[i]) {
			return fmt.Errorf("scaler mean for %s is not finite", FeatureNames[i])
		}
		if !isFinite(s.Scale[i]) || s.Scale[i] == 0 {
			return fmt.Errorf("scaler scale for %s must be finite and non-zero", FeatureNames[i])
		}
	}
	return nil
}

// Transform implements Scaler.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(features))
	}

	out := make([]float64, len(features))
	for i, x := range features {
		out[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}

// LinearRegression is an ordinary least squares fit: intercept + Σ coef·x.
type LinearRegression struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

// Validate checks the fitted parameters.
func (m *LinearRegression) Validate() error {
	if len(m.Coefficients) != NumFeatures {
		return fmt.Errorf("regression has %d coefficients, expected %d", len(m.Coefficients), NumFeatures)
	}
	for i, c := range m.Coefficients {
		if !isFinite(c) {
			return fmt.Errorf("coefficient for %s is not finite", FeatureNames[i])
		}
	}
	if !isFinite(m.Intercept) {
		return fmt.Errorf("intercept is not finite")
	}
	return nil
}

// Predict implements Regressor.
func (m *LinearRegression) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Coefficients), len(features))
	}

	y := m.Intercept
	for i, x := range features {
		y += m.Coefficients[i] * x
	}
	return y, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
