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

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"k8s.io/utils/clock"

	"github.com/hppdev/house-price-predictor/pkg/defaults"
	apperrors "github.com/hppdev/house-price-predictor/pkg/errors"
	"github.com/hppdev/house-price-predictor/pkg/predictor"
	"github.com/hppdev/house-price-predictor/pkg/serializer"
	"github.com/hppdev/house-price-predictor/pkg/server"
	"github.com/hppdev/house-price-predictor/pkg/validator"
)

// PathPredict is the prediction route.
const PathPredict = "/predict"

// Client-facing error text.
const (
	titleUnavailable   = "Model not available"
	messageUnavailable = "The prediction model is not loaded. Please contact support."
	titleBadFormat     = "Invalid request format"
	messageNotJSON     = "Request must be JSON"
	messageBadJSON     = "Request body must be a valid JSON object"
	titleEmpty         = "Empty request"
	messageEmpty       = "Request body cannot be empty"
	titleValidation    = "Validation error"
)

var (
	errEmptyBody = errors.New("empty request body")
	errNotObject = errors.New("request body is not a JSON object")
)

// PredictionResponse is the body of a successful prediction.
type PredictionResponse struct {
	Success    bool                         `json:"success"`
	Prediction float64                      `json:"prediction"`
	Currency   string                       `json:"currency"`
	Input      *validator.PredictionRequest `json:"input"`
	RequestID  string                       `json:"request_id"`
}

// HealthResponse reports whether the model is loaded.
type HealthResponse struct {
	Status        string     `json:"status"`
	ModelLoaded   bool       `json:"model_loaded"`
	ModelLoadedAt *time.Time `json:"model_loaded_at"`
	Timestamp     time.Time  `json:"timestamp"`
	Environment   string     `json:"environment"`
}

// Option configures a Handler.
type Option func(*Handler)

// WithEnvironment sets the deployment label reported by /health.
func WithEnvironment(env string) Option {
	return func(h *Handler) {
		h.environment = env
	}
}

// WithClock sets the clock used for health timestamps.
func WithClock(c clock.PassiveClock) Option {
	return func(h *Handler) {
		h.clock = c
	}
}

// Handler serves the prediction routes.
type Handler struct {
	svc         *predictor.Service
	environment string
	clock       clock.PassiveClock
}

// NewHandler returns a Handler backed by svc.
func NewHandler(svc *predictor.Service, opts ...Option) *Handler {
	h := &Handler{
		svc:         svc,
		environment: defaults.Environment,
		clock:       clock.RealClock{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// APIRoutes returns the rate-limited routes.
func (h *Handler) APIRoutes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathPredict: server.AllowMethods(h.HandlePredict, http.MethodPost),
	}
}

// HandleHealth handles GET /health. It answers 200 when the model is
// loaded and 503 otherwise.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}

	resp := HealthResponse{
		Status:      "unhealthy",
		Timestamp:   h.clock.Now().UTC(),
		Environment: h.environment,
	}
	status := http.StatusServiceUnavailable

	if h.svc.Available() {
		loadedAt := h.svc.State().LoadedAt()
		resp.Status = "healthy"
		resp.ModelLoaded = true
		resp.ModelLoadedAt = &loadedAt
		status = http.StatusOK
	}

	serializer.RespondJSON(w, status, resp)
}

// HandlePredict handles POST /predict.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	requestID := server.RequestID(r)

	if !h.svc.Available() {
		slog.Error("prediction requested but model is not loaded", "requestID", requestID)
		writeUnavailable(w, r)
		return
	}

	if !isJSONContentType(r.Header.Get("Content-Type")) {
		slog.Warn("request is not JSON",
			"requestID", requestID,
			"contentType", r.Header.Get("Content-Type"),
		)
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			titleBadFormat, messageNotJSON, nil)
		return
	}

	raw, err := decodeObject(r.Body)
	if err != nil {
		switch {
		case server.IsPayloadTooLarge(err):
			server.WritePayloadTooLarge(w, r)
		case errors.Is(err, errEmptyBody):
			slog.Warn("empty request body", "requestID", requestID)
			server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
				titleEmpty, messageEmpty, nil)
		default:
			slog.Warn("malformed request body", "requestID", requestID, "error", err)
			server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
				titleBadFormat, messageBadJSON, nil)
		}
		return
	}

	req, err := validator.Validate(raw)
	if err != nil {
		slog.Warn("validation failed", "requestID", requestID, "error", err)
		server.WriteErrorFromErr(w, r, err, titleValidation, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PredictHandlerTimeout)
	defer cancel()

	price, err := h.svc.Predict(ctx, req)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeUnavailable {
			writeUnavailable(w, r)
			return
		}
		server.WriteErrorFromErr(w, r, err, "Internal server error", nil)
		return
	}

	slog.Info("prediction successful",
		"requestID", requestID,
		"prediction", price,
		"bedrooms", req.Bedrooms,
		"bathrooms", req.Bathrooms,
		"sqft", req.Sqft,
		"age", req.Age,
	)

	serializer.RespondJSON(w, http.StatusOK, PredictionResponse{
		Success:    true,
		Prediction: price,
		Currency:   predictor.Currency,
		Input:      req,
		RequestID:  requestID,
	})
}

func writeUnavailable(w http.ResponseWriter, r *http.Request) {
	server.WriteError(w, r, http.StatusServiceUnavailable, apperrors.ErrCodeUnavailable,
		titleUnavailable, messageUnavailable, nil)
}

// isJSONContentType accepts application/json and application/*+json.
func isJSONContentType(v string) bool {
	if v == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return false
	}
	if mt == "application/json" {
		return true
	}
	return strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json")
}

// decodeObject reads a single JSON object. Blank bodies, null, and empty
// containers or scalars are reported as errEmptyBody.
func decodeObject(body io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid JSON: trailing data after object")
	}

	if isEmptyValue(v) {
		return nil, errEmptyBody
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", errNotObject, v)
	}
	return obj, nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}
