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

package validator

import (
	"fmt"
)

// Field names in validation order.
const (
	FieldBedrooms  = "bedrooms"
	FieldBathrooms = "bathrooms"
	FieldSqft      = "sqft"
	FieldAge       = "age"
)

// RequiredFields lists the input keys in the order they are checked.
var RequiredFields = []string{FieldBedrooms, FieldBathrooms, FieldSqft, FieldAge}

// Constraint is a closed numeric range for a single field.
type Constraint struct {
	Field   string
	Min     float64
	Max     float64
	Message string
}

// Constraints are evaluated in this order; the first violation is reported.
var Constraints = []Constraint{
	{Field: FieldBedrooms, Min: 0, Max: 20, Message: "Bedrooms must be between 0 and 20"},
	{Field: FieldBathrooms, Min: 0, Max: 15, Message: "Bathrooms must be between 0 and 15"},
	{Field: FieldSqft, Min: 100, Max: 50000, Message: "Square footage must be between 100 and 50,000"},
	{Field: FieldAge, Min: 0, Max: 200, Message: "Age must be between 0 and 200 years"},
}

// Evaluate reports whether v lies within the constraint. NaN fails every
// comparison and so is always rejected.
func (c Constraint) Evaluate(v float64) bool {
	return v >= c.Min && v <= c.Max
}

// String returns the range in interval notation.
func (c Constraint) String() string {
	return fmt.Sprintf("%s in [%g, %g]", c.Field, c.Min, c.Max)
}
