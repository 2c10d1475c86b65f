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
	"fmt"

	"github.com/hppdev/house-price-predictor/pkg/header"
	"github.com/hppdev/house-price-predictor/pkg/version"
)

// MetadataFormatVersion is the metadata key carrying the artifact schema revision.
const MetadataFormatVersion = "formatVersion"

// SupportedFormatVersion is the newest artifact schema this build reads.
// Artifacts with the same major and an equal or older minor are accepted.
var SupportedFormatVersion = version.MustParseVersion("1.0")

// ScalerArtifact is the on-disk form of a fitted StandardScaler.
type ScalerArtifact struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec StandardScaler `json:"spec" yaml:"spec"`
}

// RegressorArtifact is the on-disk form of a fitted LinearRegression.
type RegressorArtifact struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec LinearRegression `json:"spec" yaml:"spec"`
}

// Validate checks the header and the fitted parameters.
func (a *ScalerArtifact) Validate() error {
	if err := checkHeader(&a.Header, header.KindStandardScaler); err != nil {
		return err
	}
	return a.Spec.Validate()
}

// Validate checks the header and the fitted parameters.
func (a *RegressorArtifact) Validate() error {
	if err := checkHeader(&a.Header, header.KindLinearRegression); err != nil {
		return err
	}
	return a.Spec.Validate()
}

func checkHeader(h *header.Header, want header.Kind) error {
	if h.Kind != want {
		return fmt.Errorf("unexpected artifact kind %q, expected %q", h.Kind, want)
	}

	raw := h.GetMetadata(MetadataFormatVersion)
	if raw == "" {
		// Artifacts written before the field existed are format 1.
		return nil
	}

	v, err := version.ParseVersion(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", MetadataFormatVersion, raw, err)
	}
	if !SupportedFormatVersion.CanRead(v) {
		return fmt.Errorf("unsupported %s %s, this build reads up to %s",
			MetadataFormatVersion, v, SupportedFormatVersion)
	}
	return nil
}
