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

// Package api wires the house price prediction routes into pkg/server.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/hppdev/house-price-predictor/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the model artifacts exactly once at startup
//   - Setting up route handlers
//   - Delegating server lifecycle management to pkg/server
//
// If the artifacts cannot be loaded the process still starts: /health
// reports 503 and /predict answers 503 until the process is restarted.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /predict - Estimate a price from bedrooms, bathrooms, sqft, age
//
// System endpoints (no rate limiting):
//   - GET /        - HTML prediction form
//   - GET /health  - Model availability (200 loaded, 503 not loaded)
//   - GET /ready   - Listener readiness
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /predict)
//
// Content-Type must be application/json (or application/*+json):
//
//	curl -s -X POST http://localhost:5000/predict \
//	  -H "Content-Type: application/json" \
//	  -d '{"bedrooms": 3, "bathrooms": 2, "sqft": 2000, "age": 10}'
//
// Successful response:
//
//	{
//	  "success": true,
//	  "prediction": 470000,
//	  "currency": "USD",
//	  "input": {"bedrooms": 3, "bathrooms": 2, "sqft": 2000, "age": 10},
//	  "request_id": "7c9e6679-7425-40de-944b-e07fc1f90ae7"
//	}
//
// Numeric strings such as "3" are accepted. Failures use the
// server.ErrorResponse shape.
package api
