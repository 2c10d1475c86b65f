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

// Package validator checks raw prediction input and normalizes it into a
// PredictionRequest.
//
// # Overview
//
// Input arrives as an untyped mapping (typically a decoded JSON object).
// Validate runs three passes, each short-circuiting on the first failure:
//
//  1. Presence: bedrooms, bathrooms, sqft, age must all be present.
//  2. Coercion: every value must be a number or a numeric string.
//  3. Bounds: each value must fall inside its closed range.
//
// Fields are always visited in that fixed order, so the reported error is
// deterministic for a given input.
//
// # Bounds
//
//	bedrooms   [0, 20]
//	bathrooms  [0, 15]
//	sqft       [100, 50000]
//	age        [0, 200]
//
// NaN and infinite values never satisfy a bound.
//
// # Usage
//
//	req, err := validator.Validate(raw)
//	if err != nil {
//	    var fe *validator.FieldError
//	    if errors.As(err, &fe) {
//	        fmt.Println(fe.Field, fe.Reason)
//	    }
//	    return err
//	}
//	features := req.Features()
package validator
