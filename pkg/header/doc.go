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

// Package header provides the resource header shared by serialized artifacts
// and command output.
//
// Every model artifact file and every prediction written by the CLI starts
// with a Kubernetes-style header:
//
//	kind: StandardScaler
//	apiVersion: hpp.dev/v1
//	metadata:
//	  formatVersion: "1.0"
//	  trainedAt: "2025-01-15T10:30:00Z"
//
// Kinds:
//   - StandardScaler: fitted per-feature mean and standard deviation
//   - LinearRegression: fitted coefficients and intercept
//   - PredictionResult: a single prediction emitted by the CLI
//
// Create a header with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindLinearRegression),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("formatVersion", "1.0"),
//	)
//
// Or initialize one in place with a timestamp and tool version:
//
//	var h header.Header
//	h.Init(header.KindPredictionResult, version)
package header
