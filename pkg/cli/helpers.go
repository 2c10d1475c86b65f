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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hppdev/house-price-predictor/pkg/defaults"
	"github.com/hppdev/house-price-predictor/pkg/model"
	"github.com/hppdev/house-price-predictor/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func modelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "model",
		Aliases: []string{"m"},
		Value:   defaults.ModelPath,
		Usage:   "Path to the regression model artifact (YAML or JSON)",
		Sources: cli.EnvVars(model.EnvVarModelPath),
	}
}

func scalerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "scaler",
		Aliases: []string{"s"},
		Value:   defaults.ScalerPath,
		Usage:   "Path to the feature scaler artifact (YAML or JSON)",
		Sources: cli.EnvVars(model.EnvVarScalerPath),
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// artifactPaths returns the --model and --scaler values.
func artifactPaths(cmd *cli.Command) model.Paths {
	return model.Paths{
		Model:  cmd.String("model"),
		Scaler: cmd.String("scaler"),
	}
}

// writeOutput serializes data according to --format and --output.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var ser *serializer.Writer
	if path := cmd.String("output"); path != "" {
		ser = serializer.NewFileWriterOrStdout(outFormat, path)
	} else {
		ser = serializer.NewWriter(outFormat, cmd.Root().Writer)
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}
