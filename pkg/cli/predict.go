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
	"fmt"
	"maps"

	"github.com/urfave/cli/v3"

	"github.com/hppdev/house-price-predictor/pkg/header"
	"github.com/hppdev/house-price-predictor/pkg/model"
	"github.com/hppdev/house-price-predictor/pkg/predictor"
	"github.com/hppdev/house-price-predictor/pkg/serializer"
	"github.com/hppdev/house-price-predictor/pkg/validator"
)

// PredictionResult is the serialized output of the predict command.
type PredictionResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec PredictionSpec `json:"spec" yaml:"spec"`
}

// PredictionSpec holds a single prediction and the input it was made for.
type PredictionSpec struct {
	Input      validator.PredictionRequest `json:"input" yaml:"input"`
	Prediction float64                     `json:"prediction" yaml:"prediction"`
	Currency   string                      `json:"currency" yaml:"currency"`
	Formatted  string                      `json:"formatted" yaml:"formatted"`
	ModelPath  string                      `json:"modelPath" yaml:"modelPath"`
}

func predictCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "YAML or JSON file with bedrooms, bathrooms, sqft and age",
		},
	}
	for _, f := range validator.RequiredFields {
		flags = append(flags, &cli.StringFlag{
			Name:  f,
			Usage: fmt.Sprintf("House %s (overrides --input)", f),
		})
	}
	flags = append(flags, modelFlag(), scalerFlag(), outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "predict",
		EnableShellCompletion: true,
		Usage:                 "Estimate a house price locally",
		Description: `Load the model artifacts and compute one prediction without starting
the HTTP service. Input is validated with the same rules as POST /predict.

Examples:
  hpp predict --bedrooms 3 --bathrooms 2 --sqft 2000 --age 10
  hpp predict --input house.json --format table`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			raw, err := predictInputFromCmd(cmd)
			if err != nil {
				return err
			}

			req, err := validator.Validate(raw)
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			paths := artifactPaths(cmd)
			artifacts, err := model.NewLoader(paths).Load()
			if err != nil {
				return fmt.Errorf("failed to load model: %w", err)
			}

			price, err := predictor.NewService(model.NewState(artifacts)).Predict(ctx, req)
			if err != nil {
				return fmt.Errorf("prediction failed: %w", err)
			}

			return writeOutput(ctx, cmd, newPredictionResult(*req, price, paths.Model))
		},
	}
}

// predictInputFromCmd merges --input with the per-field flags.
func predictInputFromCmd(cmd *cli.Command) (map[string]any, error) {
	raw := map[string]any{}

	if path := cmd.String("input"); path != "" {
		in, err := serializer.FromFile[map[string]any](path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input from %q: %w", path, err)
		}
		if *in != nil {
			maps.Copy(raw, *in)
		}
	}

	for _, f := range validator.RequiredFields {
		if cmd.IsSet(f) {
			raw[f] = cmd.String(f)
		}
	}

	return raw, nil
}

func newPredictionResult(req validator.PredictionRequest, price float64, modelPath string) *PredictionResult {
	r := &PredictionResult{
		Spec: PredictionSpec{
			Input:      req,
			Prediction: price,
			Currency:   predictor.Currency,
			Formatted:  predictor.FormatPrice(price),
			ModelPath:  modelPath,
		},
	}
	r.Init(header.KindPredictionResult, version)
	return r
}
