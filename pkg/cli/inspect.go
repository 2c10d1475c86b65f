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
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hppdev/house-price-predictor/pkg/header"
	"github.com/hppdev/house-price-predictor/pkg/model"
)

// ArtifactSummary describes a loaded scaler and regressor pair.
type ArtifactSummary struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec ArtifactSummarySpec `json:"spec" yaml:"spec"`
}

// ArtifactSummarySpec is the body of an ArtifactSummary.
type ArtifactSummarySpec struct {
	ModelPath      string            `json:"modelPath" yaml:"modelPath"`
	ScalerPath     string            `json:"scalerPath" yaml:"scalerPath"`
	LoadedAt       time.Time         `json:"loadedAt" yaml:"loadedAt"`
	ModelMetadata  map[string]string `json:"modelMetadata,omitempty" yaml:"modelMetadata,omitempty"`
	ScalerMetadata map[string]string `json:"scalerMetadata,omitempty" yaml:"scalerMetadata,omitempty"`
	Intercept      *float64          `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	Features       []FeatureSummary  `json:"features" yaml:"features"`
}

// FeatureSummary lists the fitted parameters for one input feature.
type FeatureSummary struct {
	Name        string   `json:"name" yaml:"name"`
	Label       string   `json:"label" yaml:"label"`
	Mean        *float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	Scale       *float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Coefficient *float64 `json:"coefficient,omitempty" yaml:"coefficient,omitempty"`
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Load the model artifacts and describe them",
		Description: `Load the scaler and regression artifacts with the same checks the
service performs at startup, then print their parameters. A non-zero exit
code means the service would start in the unavailable state.`,
		Flags: []cli.Flag{
			modelFlag(),
			scalerFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			artifacts, err := model.NewLoader(artifactPaths(cmd)).Load()
			if err != nil {
				return fmt.Errorf("failed to load model: %w", err)
			}

			return writeOutput(ctx, cmd, summarize(artifacts))
		},
	}
}

func summarize(a *model.Artifacts) *ArtifactSummary {
	title := cases.Title(language.English)

	s := &ArtifactSummary{
		Spec: ArtifactSummarySpec{
			ModelPath:      a.Paths.Model,
			ScalerPath:     a.Paths.Scaler,
			LoadedAt:       a.LoadedAt,
			ModelMetadata:  a.RegressorHeader.Metadata,
			ScalerMetadata: a.ScalerHeader.Metadata,
		},
	}
	s.Init(header.KindArtifactSummary, version)

	scaler, _ := a.Scaler.(*model.StandardScaler)
	regressor, _ := a.Regressor.(*model.LinearRegression)
	if regressor != nil {
		s.Spec.Intercept = &regressor.Intercept
	}

	for i, name := range model.FeatureNames {
		f := FeatureSummary{
			Name:  name,
			Label: title.String(name),
		}
		if scaler != nil && i < len(scaler.Mean) && i < len(scaler.Scale) {
			f.Mean = &scaler.Mean[i]
			f.Scale = &scaler.Scale[i]
		}
		if regressor != nil && i < len(regressor.Coefficients) {
			f.Coefficient = &regressor.Coefficients[i]
		}
		s.Spec.Features = append(s.Spec.Features, f)
	}

	return s
}
