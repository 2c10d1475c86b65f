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

package defaults

// Server identity and listener defaults.
const (
	// ServerPort is the listen port when PORT is not set.
	ServerPort = 5000

	// ServerRateLimit is the steady-state request rate for rate-limited routes (req/s).
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket burst size.
	ServerRateLimitBurst = 200

	// Environment is reported by /health when ENVIRONMENT is not set.
	Environment = "production"
)

// Request limits.
const (
	// MaxRequestBodyBytes is the request body ceiling (16 KiB).
	MaxRequestBodyBytes int64 = 16 * 1024

	// MaxHeaderBytes caps request header size.
	MaxHeaderBytes = 8 * 1024
)

// Artifact locations used when MODEL_PATH and SCALER_PATH are not set.
const (
	ModelPath  = "house_price_model.yaml"
	ScalerPath = "scaler.yaml"
)

// CORS preflight cache duration in seconds.
const CORSMaxAgeSeconds = 3600
