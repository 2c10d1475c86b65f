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

package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/hppdev/house-price-predictor/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvVarPort             = "PORT"
	EnvVarShutdownTimeout  = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvVarRateLimit        = "RATE_LIMIT"
	EnvVarRateLimitBurst   = "RATE_LIMIT_BURST"
	EnvVarMaxContentLength = "MAX_CONTENT_LENGTH"
	EnvVarEnvironment      = "ENVIRONMENT"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Deployment label reported by health endpoints.
	Environment string

	// Handlers are API routes. They pass through the full middleware chain,
	// rate limiting included.
	Handlers map[string]http.HandlerFunc

	// SystemHandlers are probe and static routes exempt from rate limiting.
	SystemHandlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits
	MaxBodyBytes   int64
	MaxHeaderBytes int

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by environment variables.
// Malformed or out-of-range values are ignored.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Environment:       defaults.Environment,
		Address:           "",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		MaxBodyBytes:      defaults.MaxRequestBodyBytes,
		MaxHeaderBytes:    defaults.MaxHeaderBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv(EnvVarPort); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil && port >= 0 && port <= 65535 {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match the supervisor's grace period
	if shutdownStr := os.Getenv(EnvVarShutdownTimeout); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	if limitStr := os.Getenv(EnvVarRateLimit); limitStr != "" {
		if limit, err := strconv.ParseFloat(limitStr, 64); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		}
	}

	if burstStr := os.Getenv(EnvVarRateLimitBurst); burstStr != "" {
		if burst, err := strconv.Atoi(burstStr); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	if sizeStr := os.Getenv(EnvVarMaxContentLength); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && size > 0 {
			cfg.MaxBodyBytes = size
		}
	}

	if env := os.Getenv(EnvVarEnvironment); env != "" {
		cfg.Environment = env
	}

	return cfg
}
