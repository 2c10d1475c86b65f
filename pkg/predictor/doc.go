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

// Package predictor turns validated house features into a price estimate.
//
// A Service wraps the process-wide model.State. Each call standardizes the
// feature vector with the loaded scaler, applies the linear regressor and
// rounds the result to cents.
//
//	svc := predictor.NewService(state)
//	price, err := svc.Predict(ctx, req)
//	if err != nil {
//	    switch apperrors.CodeOf(err) {
//	    case apperrors.ErrCodeUnavailable:
//	        // model not loaded
//	    default:
//	        // numeric failure
//	    }
//	}
//	fmt.Println(predictor.FormatPrice(price)) // $388,427.13
//
// Service holds no mutable state and is safe for concurrent use.
package predictor
