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
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newTestServer() *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: rate.NewLimiter(100, 200),
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s := newTestServer()

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = RequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedRequestID == "" {
		t.Error("expected request ID to be generated")
	}
	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid UUID, got: %s", capturedRequestID)
	}
	if rec.Header().Get("X-Request-Id") != capturedRequestID {
		t.Errorf("expected X-Request-Id header to be %s, got %s",
			capturedRequestID, rec.Header().Get("X-Request-Id"))
	}
}

func TestRequestIDMiddleware_UsesProvidedID(t *testing.T) {
	s := newTestServer()

	providedID := uuid.New().String()
	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = RequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", providedID)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedRequestID != providedID {
		t.Errorf("expected request ID %s, got %s", providedID, capturedRequestID)
	}
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	s := newTestServer()

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = RequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid<script>")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedRequestID == "not-a-uuid<script>" {
		t.Error("expected invalid request ID to be replaced")
	}
	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid UUID, got: %s", capturedRequestID)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	s := newTestServer()

	t.Run("defaults", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.securityHeadersMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		want := map[string]string{
			"X-Content-Type-Options":    "nosniff",
			"X-Frame-Options":           "DENY",
			"X-XSS-Protection":          "1; mode=block",
			"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
			"Referrer-Policy":           "strict-origin-when-cross-origin",
			"Content-Security-Policy":   "default-src 'self'",
		}
		for k, v := range want {
			if got := rec.Header().Get(k); got != v {
				t.Errorf("%s = %q, want %q", k, got, v)
			}
		}
	})

	t.Run("handler overrides csp", func(t *testing.T) {
		custom := "default-src 'self'; style-src 'self' 'unsafe-inline'"
		rec := httptest.NewRecorder()
		s.securityHeadersMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Security-Policy", custom)
			w.WriteHeader(http.StatusOK)
		})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if got := rec.Header().Get("Content-Security-Policy"); got != custom {
			t.Errorf("expected custom CSP, got %q", got)
		}
	})
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer()

	t.Run("preflight short circuits", func(t *testing.T) {
		called := false
		rec := httptest.NewRecorder()
		s.corsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})(rec, httptest.NewRequest(http.MethodOptions, "/predict", nil))

		if called {
			t.Error("expected preflight not to reach handler")
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
			t.Errorf("unexpected allow methods %q", got)
		}
		if got := rec.Header().Get("Access-Control-Max-Age"); got != "3600" {
			t.Errorf("unexpected max age %q", got)
		}
	})

	t.Run("simple request passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.corsMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected wildcard origin, got %q", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
			t.Errorf("unexpected allow headers %q", got)
		}
	})
}

func TestBodyLimitMiddleware(t *testing.T) {
	s := newTestServer()
	s.config.MaxBodyBytes = 16

	readAll := func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			if IsPayloadTooLarge(err) {
				WritePayloadTooLarge(w, r)
				return
			}
			t.Errorf("unexpected read error: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}

	t.Run("within limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.bodyLimitMiddleware(readAll)(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("declared length over limit", func(t *testing.T) {
		called := false
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 17)))
		s.bodyLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
		})(rec, req)

		if called {
			t.Error("expected handler not to run")
		}
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", rec.Code)
		}
		resp := decodeError(t, rec)
		if resp.Error != "Request too large" {
			t.Errorf("unexpected error title %q", resp.Error)
		}
		if resp.Message != "Request payload exceeds maximum allowed size" {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})

	t.Run("unknown length over limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
		req.ContentLength = -1
		s.bodyLimitMiddleware(readAll)(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("expected 413, got %d", rec.Code)
		}
	})
}

func TestRateLimitMiddleware_AllowsRequests(t *testing.T) {
	s := newTestServer()

	handler := s.rateLimitMiddleware(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestRateLimitMiddleware_RejectsWhenExceeded(t *testing.T) {
	s := newTestServer()
	s.rateLimiter = rate.NewLimiter(1, 1)

	handler := s.rateLimitMiddleware(okHandler)

	rec1 := httptest.NewRecorder()
	handler(rec1, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rec1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed, got %d", rec1.Code)
	}

	rec2 := httptest.NewRecorder()
	handler(rec2, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rec2.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec2.Code)
	}
	if rec2.Header().Get("Retry-After") != "1" {
		t.Errorf("expected Retry-After 1, got %q", rec2.Header().Get("Retry-After"))
	}
	if resp := decodeError(t, rec2); resp.Code != "RATE_LIMIT_EXCEEDED" {
		t.Errorf("unexpected code %q", resp.Code)
	}
}

func TestPanicRecoveryMiddleware_RecoversPanic(t *testing.T) {
	s := newTestServer()

	handler := s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Message != InternalErrorMessage {
		t.Errorf("expected generic message, got %q", resp.Message)
	}
}

func TestPanicRecoveryMiddleware_PassesNormalRequests(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.panicRecoveryMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestLoggingMiddleware_TracksStatusCode(t *testing.T) {
	s := newTestServer()

	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		if rec.Code != status {
			t.Errorf("expected status %d, got %d", status, rec.Code)
		}
	}
}

func TestMiddlewareChain_SetsAllHeaders(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.withMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	for _, h := range []string{
		"X-Request-Id",
		"X-Content-Type-Options",
		"Access-Control-Allow-Origin",
		"X-RateLimit-Limit",
	} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header to be set", h)
		}
	}
}

func TestSystemMiddleware_SkipsRateLimit(t *testing.T) {
	s := newTestServer()
	s.rateLimiter = rate.NewLimiter(rate.Limit(0), 0)

	rec := httptest.NewRecorder()
	s.withSystemMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 without rate limiting, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Error("expected no rate limit headers on system routes")
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusTeapot)
	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if rw.Status() != http.StatusCreated {
		t.Errorf("expected first status to stick, got %d", rw.Status())
	}
	if n != 5 || rw.BytesWritten() != 5 {
		t.Errorf("expected 5 bytes, got n=%d total=%d", n, rw.BytesWritten())
	}
	if rw.Unwrap() != rec {
		t.Error("expected Unwrap to return the underlying writer")
	}
}
