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

package api

import (
	"context"
	"log/slog"

	"github.com/hppdev/house-price-predictor/pkg/logging"
	"github.com/hppdev/house-price-predictor/pkg/model"
	"github.com/hppdev/house-price-predictor/pkg/predictor"
	"github.com/hppdev/house-price-predictor/pkg/server"
)

const (
	name           = "hppd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/hppdev/house-price-predictor/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Settings controls a Run invocation.
type Settings struct {
	// Paths locates the model and scaler artifacts.
	Paths model.Paths
	// Server is the HTTP configuration; nil means server.NewConfig().
	Server *server.Config
}

// Serve starts the API server configured from the environment and blocks
// until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	return Run(context.Background(), Settings{
		Paths:  model.PathsFromEnv(),
		Server: server.NewConfig(),
	})
}

// Run loads the artifacts once, wires the routes and serves until ctx is
// canceled or the process is signaled. A failed load is logged and the
// service keeps running in the unavailable state.
func Run(ctx context.Context, settings Settings) error {
	cfg := settings.Server
	if cfg == nil {
		cfg = server.NewConfig()
	}

	h := NewHandler(
		predictor.NewService(LoadState(settings.Paths)),
		WithEnvironment(cfg.Environment),
	)

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.APIRoutes()),
		server.WithSystemHandler(server.PathRoot, h.HandleIndex),
		server.WithSystemHandler(server.PathHealth, h.HandleHealth),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// LoadState performs the one-time artifact load. Failures yield the
// unloaded state rather than an error.
func LoadState(paths model.Paths) *model.State {
	artifacts, err := model.NewLoader(paths).Load()
	if err != nil {
		slog.Error("CRITICAL: model artifacts could not be loaded; predictions are disabled",
			"modelPath", paths.Model,
			"scalerPath", paths.Scaler,
			"error", err,
		)
		return model.NewState(nil)
	}
	return model.NewState(artifacts)
}
