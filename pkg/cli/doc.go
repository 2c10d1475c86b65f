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

// Package cli implements the hpp command-line interface.
//
// # Overview
//
// hpp runs the house price prediction service and offers offline access to
// the same model artifacts for scripting and troubleshooting.
//
// # Commands
//
// serve - Run the HTTP prediction service:
//
//	hpp serve [--port 5000] [--model FILE] [--scaler FILE]
//
// predict - Compute a single prediction locally:
//
//	hpp predict --bedrooms 3 --bathrooms 2 --sqft 2000 --age 10 [--format yaml|json|table]
//	hpp predict --input house.yaml
//
// Values given as flags override those read from --input.
//
// inspect - Load and describe the model artifacts:
//
//	hpp inspect [--model FILE] [--scaler FILE] [--format table]
//
// version - Print build information.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default), JSON, or a flattened FIELD/VALUE table. Use --output to
// write to a file instead of stdout.
//
// # Environment Variables
//
//	MODEL_PATH, SCALER_PATH   Artifact locations
//	PORT, RATE_LIMIT, RATE_LIMIT_BURST, MAX_CONTENT_LENGTH,
//	SHUTDOWN_TIMEOUT_SECONDS, ENVIRONMENT   Server settings for serve
//	LOG_LEVEL                 Logging verbosity
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
package cli
