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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind   string    `json:"kind" yaml:"kind"`
	Values []float64 `json:"values" yaml:"values"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"scaler.json", FormatJSON},
		{"scaler.JSON", FormatJSON},
		{"model.yaml", FormatYAML},
		{"model.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"model.joblib", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader_RejectsFormats(t *testing.T) {
	_, err := NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"kind":"StandardScaler","values":[1.5,2]}`},
		{"yaml", FormatYAML, "kind: StandardScaler\nvalues: [1.5, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var got sample
			require.NoError(t, r.Deserialize(&got))
			assert.Equal(t, "StandardScaler", got.Kind)
			assert.Equal(t, []float64{1.5, 2}, got.Values)
			assert.NoError(t, r.Close())
		})
	}
}

func TestReader_DeserializeInvalid(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"kind":`))
	require.NoError(t, err)

	var got sample
	assert.Error(t, r.Deserialize(&got))
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&sample{}))
	assert.NoError(t, r.Close())

	r = &Reader{format: FormatJSON}
	assert.Error(t, r.Deserialize(&sample{}))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scaler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: StandardScaler\nvalues: [3, 4]\n"), 0o600))

	got, err := FromFile[sample](path)
	require.NoError(t, err)
	assert.Equal(t, "StandardScaler", got.Kind)
	assert.Equal(t, []float64{3, 4}, got.Values)
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FromFile[sample](filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o600))
	_, err = FromFile[sample](bad)
	assert.Error(t, err)
}
