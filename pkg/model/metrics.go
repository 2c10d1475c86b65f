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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	loadResultSuccess = "success"
	loadResultFailure = "failure"
)

var (
	// Artifact load metrics
	artifactLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hpp_artifact_loads_total",
			Help: "Total number of artifact load attempts by result",
		},
		[]string{"result"},
	)

	artifactLoadTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hpp_artifact_load_timestamp_seconds",
			Help: "Unix time of the last successful artifact load",
		},
	)

	modelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hpp_model_loaded",
			Help: "Whether the scaler and regressor are loaded (1) or not (0)",
		},
	)
)
