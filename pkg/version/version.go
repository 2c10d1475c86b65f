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

// Package version parses the dotted revision numbers used for artifact
// formats and build versions.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a dotted revision with one to three numeric components.
// Precision records how many components were written, so "1.0" prints
// back as "1.0" rather than "1.0.0". Anything after a '-' or '+' suffix
// marker is kept in Extras and ignored when comparing.
type Version struct {
	Major     int    `json:"major" yaml:"major"`
	Minor     int    `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch     int    `json:"patch,omitempty" yaml:"patch,omitempty"`
	Precision int    `json:"precision" yaml:"precision"`
	Extras    string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String formats the version at its own precision, without Extras.
func (v Version) String() string {
	parts := []int{v.Major, v.Minor, v.Patch}
	n := min(max(v.Precision, 1), 3)

	s := make([]string, n)
	for i := range n {
		s[i] = strconv.Itoa(parts[i])
	}
	return strings.Join(s, ".")
}

// ParseVersion accepts "1", "1.2", "1.2.3" with an optional "v" prefix
// and an optional "-suffix" or "+suffix".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(s, "v")
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version
	if i := strings.IndexAny(s, "-+"); i > 0 {
		s, v.Extras = s[:i], s[i:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.ContainsAny(p, "+- ") {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, p)
		}
		*fields[i] = n
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion is ParseVersion for literals; it panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Compare orders v and other component by component, stopping at the
// lower of the two precisions. It returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	a := []int{v.Major, v.Minor, v.Patch}
	b := []int{other.Major, other.Minor, other.Patch}

	for i := range min(v.Precision, other.Precision) {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// CanRead reports whether a reader built for v understands data written
// at revision other: same major, and no newer minor.
func (v Version) CanRead(other Version) bool {
	if v.Major != other.Major {
		return false
	}
	return v.Precision < 2 || other.Precision < 2 || other.Minor <= v.Minor
}
