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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/hppdev/house-price-predictor/pkg/api"
	"github.com/hppdev/house-price-predictor/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the HTTP prediction service",
		Description: `Load the model artifacts once and serve predictions over HTTP.

Routes:
  GET  /         HTML prediction form
  POST /predict  JSON prediction API
  GET  /health   Model availability
  GET  /ready    Listener readiness
  GET  /metrics  Prometheus metrics

If the artifacts cannot be loaded the service still starts and reports
503 on /health and /predict.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Interface address to bind (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "TCP port to listen on",
				Sources: cli.EnvVars(server.EnvVarPort),
			},
			&cli.FloatFlag{
				Name:    "rate-limit",
				Usage:   "Sustained /predict requests per second",
				Sources: cli.EnvVars(server.EnvVarRateLimit),
			},
			&cli.IntFlag{
				Name:    "rate-limit-burst",
				Usage:   "Burst size for /predict rate limiting",
				Sources: cli.EnvVars(server.EnvVarRateLimitBurst),
			},
			&cli.Int64Flag{
				Name:    "max-content-length",
				Usage:   "Maximum request body size in bytes",
				Sources: cli.EnvVars(server.EnvVarMaxContentLength),
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Grace period for in-flight requests on shutdown",
			},
			&cli.StringFlag{
				Name:    "environment",
				Usage:   "Deployment label reported by /health",
				Sources: cli.EnvVars(server.EnvVarEnvironment),
			},
			modelFlag(),
			scalerFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx, api.Settings{
				Paths:  artifactPaths(cmd),
				Server: serverConfigFromCmd(cmd),
			})
		},
	}
}

// serverConfigFromCmd starts from the environment-derived config and
// applies only the flags that were explicitly set.
func serverConfigFromCmd(cmd *cli.Command) *server.Config {
	cfg := server.NewConfig()

	if cmd.IsSet("address") {
		cfg.Address = cmd.String("address")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	if cmd.IsSet("rate-limit") && cmd.Float("rate-limit") > 0 {
		cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))
	}
	if cmd.IsSet("rate-limit-burst") && cmd.Int("rate-limit-burst") > 0 {
		cfg.RateLimitBurst = cmd.Int("rate-limit-burst")
	}
	if cmd.IsSet("max-content-length") && cmd.Int64("max-content-length") > 0 {
		cfg.MaxBodyBytes = cmd.Int64("max-content-length")
	}
	if d := cmd.Duration("shutdown-timeout"); d > 0 {
		cfg.ShutdownTimeout = d
	}
	if cmd.IsSet("environment") {
		cfg.Environment = cmd.String("environment")
	}

	return cfg
}

