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

// Package model loads the fitted feature scaler and linear regressor from
// their artifact files and exposes them behind small interfaces.
//
// Artifacts are loaded exactly once, at process start:
//
//	loader := model.NewLoader(model.PathsFromEnv())
//	artifacts, err := loader.Load()
//	state := model.NewState(artifacts) // nil artifacts yields the unloaded state
//
// The resulting State is immutable and safe for concurrent use without
// locking. There is no reload: a process that failed to load stays
// unloaded until it is restarted.
//
// Both artifacts are YAML or JSON documents with a resource header:
//
//	kind: StandardScaler
//	apiVersion: hpp.dev/v1
//	metadata:
//	  formatVersion: "1.0"
//	spec:
//	  mean:  [3.0, 2.0, 2900.0, 24.5]
//	  scale: [1.41, 0.82, 1212.4, 14.43]
//
//	kind: LinearRegression
//	apiVersion: hpp.dev/v1
//	metadata:
//	  formatVersion: "1.0"
//	spec:
//	  coefficients: [42426.4, 20412.4, 181860.0, -28866.1]
//	  intercept: 576000.0
package model

// NumFeatures is the length of every feature vector.
const NumFeatures = 4

// FeatureNames lists the features in vector order.
var FeatureNames = [NumFeatures]string{"bedrooms", "bathrooms", "sqft", "age"}

// Scaler maps a raw feature vector to the normalized space the regressor was fitted in.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

// Regressor maps a normalized feature vector to a scalar estimate.
type Regressor interface {
	Predict(features []float64) (float64, error)
}
