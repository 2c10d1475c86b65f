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

import "time"

// State is the process-wide serving snapshot. It is built once at startup
// and never mutated, so concurrent readers need no synchronization.
type State struct {
	artifacts *Artifacts
}

// NewState wraps the load result. Passing nil yields the unloaded state.
func NewState(a *Artifacts) *State {
	loaded := a != nil
	modelLoaded.Set(boolToFloat(loaded))
	return &State{artifacts: a}
}

// Loaded reports whether both artifacts are available.
func (s *State) Loaded() bool {
	return s != nil && s.artifacts != nil
}

// LoadedAt returns the UTC load time, or the zero time when unloaded.
func (s *State) LoadedAt() time.Time {
	if !s.Loaded() {
		return time.Time{}
	}
	return s.artifacts.LoadedAt
}

// Artifacts returns the loaded artifacts, or nil when unloaded.
func (s *State) Artifacts() *Artifacts {
	if !s.Loaded() {
		return nil
	}
	return s.artifacts
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
