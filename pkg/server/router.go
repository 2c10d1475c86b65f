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
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/hppdev/house-price-predictor/pkg/errors"
	"github.com/hppdev/house-price-predictor/pkg/serializer"
)

// Built-in route paths.
const (
	PathRoot    = "/"
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathMetrics = "/metrics"
)

// addDefaultRoutes fills in system routes the caller did not provide.
func (s *Server) addDefaultRoutes() {
	if s.config.Handlers == nil {
		s.config.Handlers = map[string]http.HandlerFunc{}
	}
	if s.config.SystemHandlers == nil {
		s.config.SystemHandlers = map[string]http.HandlerFunc{}
	}

	defaults := map[string]http.HandlerFunc{
		PathRoot:    s.handleDefault,
		PathHealth:  AllowMethods(s.handleHealth, http.MethodGet),
		PathReady:   AllowMethods(s.handleReady, http.MethodGet),
		PathMetrics: AllowMethods(promhttp.Handler().ServeHTTP, http.MethodGet),
	}
	for path, h := range defaults {
		if s.hasRoute(path) {
			continue
		}
		s.config.SystemHandlers[path] = h
	}
}

func (s *Server) hasRoute(path string) bool {
	if _, ok := s.config.Handlers[path]; ok {
		return true
	}
	_, ok := s.config.SystemHandlers[path]
	return ok
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	for path, h := range s.config.SystemHandlers {
		if _, shadowed := s.config.Handlers[path]; shadowed {
			continue
		}
		mux.HandleFunc(path, s.withSystemMiddleware(h))
	}

	for path, h := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(h))
	}

	return mux
}

// routes returns every registered path, sorted.
func (s *Server) routes() []string {
	paths := make([]string, 0, len(s.config.Handlers)+len(s.config.SystemHandlers))
	for p := range s.config.Handlers {
		paths = append(paths, p)
	}
	for p := range s.config.SystemHandlers {
		if !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// handleDefault describes the server at "/" and answers 404 for any path
// no other route matched.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != PathRoot {
		WriteNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// AllowMethods rejects requests whose method is not listed with a JSON 405
// and an Allow header. GET implies HEAD.
func AllowMethods(next http.HandlerFunc, methods ...string) http.HandlerFunc {
	allowed := slices.Clone(methods)
	if slices.Contains(allowed, http.MethodGet) && !slices.Contains(allowed, http.MethodHead) {
		allowed = append(allowed, http.MethodHead)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !slices.Contains(allowed, r.Method) {
			WriteMethodNotAllowed(w, r, allowed...)
			return
		}
		next(w, r)
	}
}

// WriteNotFound writes the JSON 404 reply.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
		"Not found", "The requested endpoint does not exist", nil)
}

// WriteMethodNotAllowed writes the JSON 405 reply and sets Allow.
func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed",
		fmt.Sprintf("The %s method is not allowed for this endpoint", r.Method), nil)
}
