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

package predictor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess     = "success"
	resultError       = "error"
	resultUnavailable = "unavailable"
)

var (
	predictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hpp_predictions_total",
			Help: "Total number of prediction attempts by result",
		},
		[]string{"result"},
	)

	predictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hpp_prediction_duration_seconds",
			Help:    "Time spent computing a single prediction",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
	)

	predictionValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hpp_prediction_value_usd",
			Help:    "Distribution of predicted prices in USD",
			Buckets: prometheus.ExponentialBuckets(50000, 2, 10),
		},
	)
)
