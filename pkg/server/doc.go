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

// Package server provides the HTTP server shared by the prediction daemon
// and the serve command.
//
// # Architecture
//
// The server is a thin net/http wrapper with:
//
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Security and CORS headers on every response
//   - A request body ceiling enforced before handlers read
//   - Token bucket rate limiting for API routes (golang.org/x/time/rate)
//   - Prometheus request metrics
//   - Graceful shutdown on SIGINT/SIGTERM with systemd notifications
//
// # Usage
//
//	s := server.New(
//	    server.WithName("hppd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/predict": h.HandlePredict,
//	    }),
//	    server.WithSystemHandler("/health", h.HandleHealth),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// API routes registered with WithHandler are rate limited; system routes
// registered with WithSystemHandler are not. Unless replaced, the server
// installs "/" (service description and JSON 404 for unknown paths),
// "/health", "/ready" and "/metrics".
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST, MAX_CONTENT_LENGTH and ENVIRONMENT. Invalid values fall
// back to the defaults in pkg/defaults.
//
// # Error Handling
//
// Every failure is a JSON ErrorResponse:
//
//	{
//	  "error": "Validation error",
//	  "message": "Bedrooms must be between 0 and 20",
//	  "code": "INVALID_REQUEST",
//	  "request_id": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// HTTPStatusFromCode maps pkg/errors codes to statuses. WriteErrorFromErr
// never exposes the cause of an internal error to clients.
package server
