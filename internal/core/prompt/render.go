// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prompt holds the instruction templates sent to the generative
// models and the renderer that fills them in. Templates use literal
// single-brace placeholders ({brand_config}, {industry}, ...) rather than
// text/template syntax: the critique template contains large literal JSON
// examples whose braces must pass through to the model untouched.
package prompt

import "strings"

// Render substitutes every {name} placeholder that has an entry in subs.
// Placeholders without a substitution are left verbatim; supplying every
// placeholder a template uses is the caller's contract, not a guard
// enforced here.
func Render(template string, subs map[string]string) string {
	if len(subs) == 0 {
		return template
	}
	pairs := make([]string, 0, len(subs)*2)
	for name, value := range subs {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
