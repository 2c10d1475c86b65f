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

package predictor

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the ISO 4217 code of every prediction.
const Currency = "USD"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders price as US dollars with thousands separators,
// for example $388,427.13.
func FormatPrice(price float64) string {
	if price < 0 {
		return printer.Sprintf("-$%.2f", -price)
	}
	return printer.Sprintf("$%.2f", price)
}
