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

package services

import "strings"

// NormalizeModelJSON strips the markdown fence a model sometimes wraps
// around a JSON answer. Grounded free-text generation cannot be schema
// constrained, so the research stage must tolerate the model prepending or
// appending commentary around the object it was asked for.
//
// The text is trimmed; when it both starts and ends with a fence the
// substring from the first '{' to the last '}' is kept. Already-clean input
// passes through unchanged, which makes the function idempotent.
func NormalizeModelJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start != -1 && end != -1 && end > start {
			text = text[start : end+1]
		}
	}
	return text
}
