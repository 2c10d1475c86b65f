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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type prediction struct {
	Price    float64           `json:"price" yaml:"price"`
	Currency string            `json:"currency" yaml:"currency"`
	Input    map[string]string `json:"input,omitempty" yaml:"input,omitempty"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), prediction{Price: 1234.5, Currency: "USD"}))

	var got prediction
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1234.5, got.Price)
	assert.Contains(t, buf.String(), "\n  \"currency\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), prediction{Price: 10, Currency: "USD"}))

	var got prediction
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "USD", got.Currency)
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	data := prediction{
		Price:    10,
		Currency: "USD",
		Input:    map[string]string{"sqft": "2000"},
	}
	require.NoError(t, w.Serialize(context.Background(), data))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "FIELD"))
	assert.Contains(t, out, "Currency")
	assert.Contains(t, out, "Input.sqft")
	assert.Contains(t, out, "2000")
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	w := NewWriter(Format("xml"), &bytes.Buffer{})
	assert.Equal(t, FormatJSON, w.format)
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	assert.Equal(t, os.Stdout, w.output)
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(context.Background(), prediction{Price: 1, Currency: "USD"}))
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "USD")
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	w := NewFileWriterOrStdout(FormatYAML, "  ")
	assert.Equal(t, os.Stdout, w.output)
	assert.Nil(t, w.closer)
}
