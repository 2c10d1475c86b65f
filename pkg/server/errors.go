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

package server

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/hppdev/house-price-predictor/pkg/errors"
	"github.com/hppdev/house-price-predictor/pkg/serializer"
)

// InternalErrorMessage is the client-facing text for unexpected failures.
const InternalErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Code      string         `json:"code"`
	RequestID string         `json:"request_id"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
}

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeUnavailable, apperrors.ErrCodeRateLimitExceeded, apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// titleFromCode is the short "error" label used when a caller supplies none.
func titleFromCode(code apperrors.ErrorCode) string {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return "Invalid request"
	case apperrors.ErrCodeNotFound:
		return "Not found"
	case apperrors.ErrCodeMethodNotAllowed:
		return "Method not allowed"
	case apperrors.ErrCodePayloadTooLarge:
		return "Request too large"
	case apperrors.ErrCodeRateLimitExceeded:
		return "Rate limit exceeded"
	case apperrors.ErrCodeUnavailable:
		return "Service unavailable"
	default:
		return "Internal server error"
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// RequestID returns the correlation ID assigned by the request ID middleware.
func RequestID(r *http.Request) string {
	id, _ := r.Context().Value(contextKeyRequestID).(string)
	return id
}

// WriteError writes an ErrorResponse. An empty title is derived from code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, title, message string, details map[string]any) {

	requestID := RequestID(r)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if title == "" {
		title = titleFromCode(code)
	}

	errResp := ErrorResponse{
		Error:     title,
		Message:   message,
		Code:      string(code),
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryableFromCode(code),
		Details:   details,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status and writes it. StructuredError
// context and cause are folded into details, except for internal errors
// whose cause is only logged.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, title string, details map[string]any) {
	var se *apperrors.StructuredError
	if !errors.As(err, &se) {
		se = apperrors.Wrap(apperrors.ErrCodeInternal, InternalErrorMessage, err)
	}

	status := HTTPStatusFromCode(se.Code)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", RequestID(r),
			"path", r.URL.Path,
			"code", se.Code,
			"error", err,
		)
	}

	if se.Code == apperrors.ErrCodeInternal {
		WriteError(w, r, status, se.Code, title, InternalErrorMessage, details)
		return
	}

	extra := maps.Clone(se.Context)
	if se.Cause != nil {
		if extra == nil {
			extra = map[string]any{}
		}
		extra["error"] = se.Cause.Error()
	}

	WriteError(w, r, status, se.Code, title, se.Message, mergeDetails(extra, details))
}

// IsPayloadTooLarge reports whether err came from reading past the body limit.
func IsPayloadTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// WritePayloadTooLarge writes the JSON 413 reply.
func WritePayloadTooLarge(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodePayloadTooLarge,
		"Request too large", "Request payload exceeds maximum allowed size", nil)
}
