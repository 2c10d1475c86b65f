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

package model

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"k8s.io/utils/clock"

	"github.com/hppdev/house-price-predictor/pkg/defaults"
	apperrors "github.com/hppdev/house-price-predictor/pkg/errors"
	"github.com/hppdev/house-price-predictor/pkg/header"
	"github.com/hppdev/house-price-predictor/pkg/serializer"
)

const (
	// EnvVarModelPath overrides the regressor artifact location.
	EnvVarModelPath = "MODEL_PATH"
	// EnvVarScalerPath overrides the scaler artifact location.
	EnvVarScalerPath = "SCALER_PATH"
)

// Paths locates the two artifact files.
type Paths struct {
	Model  string
	Scaler string
}

// PathsFromEnv returns artifact paths from MODEL_PATH and SCALER_PATH,
// falling back to the defaults.
func PathsFromEnv() Paths {
	p := Paths{
		Model:  defaults.ModelPath,
		Scaler: defaults.ScalerPath,
	}
	if v := os.Getenv(EnvVarModelPath); v != "" {
		p.Model = v
	}
	if v := os.Getenv(EnvVarScalerPath); v != "" {
		p.Scaler = v
	}
	return p
}

// Artifacts is the immutable result of a successful load.
type Artifacts struct {
	Scaler    Scaler
	Regressor Regressor
	Paths     Paths
	LoadedAt  time.Time

	// Headers of the loaded files, kept for diagnostics.
	ScalerHeader    header.Header
	RegressorHeader header.Header
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithClock sets the clock used to stamp the load time.
func WithClock(c clock.PassiveClock) LoaderOption {
	return func(l *Loader) {
		l.clock = c
	}
}

// Loader reads and validates artifact files.
type Loader struct {
	paths Paths
	clock clock.PassiveClock
}

// NewLoader returns a Loader for the given paths.
func NewLoader(paths Paths, opts ...LoaderOption) *Loader {
	l := &Loader{
		paths: paths,
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads both artifacts. The model file is checked before the scaler;
// a missing file yields ErrCodeNotFound naming the path, and a file that
// fails to decode or validate yields ErrCodeInternal.
func (l *Loader) Load() (*Artifacts, error) {
	start := l.clock.Now()

	for _, p := range []string{l.paths.Model, l.paths.Scaler} {
		if err := checkExists(p); err != nil {
			artifactLoads.WithLabelValues(loadResultFailure).Inc()
			return nil, err
		}
	}

	reg, err := serializer.FromFile[RegressorArtifact](l.paths.Model)
	if err != nil {
		artifactLoads.WithLabelValues(loadResultFailure).Inc()
		return nil, invalidArtifact(l.paths.Model, err)
	}
	if err := reg.Validate(); err != nil {
		artifactLoads.WithLabelValues(loadResultFailure).Inc()
		return nil, invalidArtifact(l.paths.Model, err)
	}

	sc, err := serializer.FromFile[ScalerArtifact](l.paths.Scaler)
	if err != nil {
		artifactLoads.WithLabelValues(loadResultFailure).Inc()
		return nil, invalidArtifact(l.paths.Scaler, err)
	}
	if err := sc.Validate(); err != nil {
		artifactLoads.WithLabelValues(loadResultFailure).Inc()
		return nil, invalidArtifact(l.paths.Scaler, err)
	}

	loadedAt := l.clock.Now().UTC()
	artifactLoads.WithLabelValues(loadResultSuccess).Inc()
	artifactLoadTimestamp.Set(float64(loadedAt.Unix()))

	slog.Info("artifacts loaded",
		"model_path", l.paths.Model,
		"scaler_path", l.paths.Scaler,
		"duration", l.clock.Since(start).String(),
	)

	return &Artifacts{
		Scaler:          &sc.Spec,
		Regressor:       &reg.Spec,
		Paths:           l.paths,
		LoadedAt:        loadedAt,
		ScalerHeader:    sc.Header,
		RegressorHeader: reg.Header,
	}, nil
}

func checkExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			fmt.Sprintf("artifact file not found: %s", path),
			map[string]any{"path": path})
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
		fmt.Sprintf("failed to stat artifact file: %s", path), err,
		map[string]any{"path": path})
}

func invalidArtifact(path string, err error) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
		fmt.Sprintf("failed to load artifact: %s", path), err,
		map[string]any{"path": path})
}
