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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindStandardScaler, true},
		{KindLinearRegression, true},
		{KindPredictionResult, true},
		{KindArtifactSummary, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindStandardScaler),
		WithAPIVersion(APIVersion),
		WithMetadata("formatVersion", "1.0"),
	)

	assert.Equal(t, KindStandardScaler, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "1.0", h.GetMetadata("formatVersion"))
	assert.Empty(t, h.GetMetadata("missing"))
}

func TestGetMetadataNilMap(t *testing.T) {
	h := &Header{}
	assert.Empty(t, h.GetMetadata("anything"))
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindPredictionResult, "v0.3.0")

	assert.Equal(t, KindPredictionResult, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "v0.3.0", h.Metadata["version"])

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestInitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindPredictionResult, "")

	_, ok := h.Metadata["version"]
	assert.False(t, ok)
}
