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

// Package prompt_test contains unit tests for the instruction template
// renderer and sanity checks on the built-in templates themselves.
package prompt_test

import (
	"strings"
	"testing"

	"github.com/Henry1228081dev/brand-biz/internal/core/prompt"
	"github.com/stretchr/testify/assert"
)

// TestRenderSubstitutesPlaceholders verifies that every named placeholder
// with a substitution is replaced, including repeated occurrences.
func TestRenderSubstitutesPlaceholders(t *testing.T) {
	out := prompt.Render("analyze {industry} ads on {platform} for {industry} brands", map[string]string{
		"industry": "fast food",
		"platform": "TikTok",
	})
	assert.Equal(t, "analyze fast food ads on TikTok for fast food brands", out)
}

// TestRenderLeavesUnknownPlaceholders verifies that placeholders without a
// substitution pass through verbatim rather than being dropped.
func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	out := prompt.Render("hello {name}, welcome to {place}", map[string]string{
		"name": "Acme",
	})
	assert.Equal(t, "hello Acme, welcome to {place}", out)
}

// TestRenderPreservesLiteralBraces verifies the reason this renderer exists
// instead of text/template: brace characters that are not a known
// placeholder, such as the JSON examples embedded in the critique
// instruction, must reach the model untouched.
func TestRenderPreservesLiteralBraces(t *testing.T) {
	template := `respond with {"verdict": "DEPLOY"} for brand {brand_name}`
	out := prompt.Render(template, map[string]string{"brand_name": "Acme"})
	assert.Equal(t, `respond with {"verdict": "DEPLOY"} for brand Acme`, out)
}

// TestRenderEmptySubs verifies that rendering with no substitutions returns
// the template unchanged.
func TestRenderEmptySubs(t *testing.T) {
	template := "no placeholders here"
	assert.Equal(t, template, prompt.Render(template, nil))
}

// TestBuiltInTemplatesCarryPlaceholders pins the placeholder names the
// stage services substitute, so a template edit cannot silently orphan a
// substitution.
func TestBuiltInTemplatesCarryPlaceholders(t *testing.T) {
	for _, placeholder := range []string{"{industry}", "{platform}", "{brand_name}"} {
		assert.True(t, strings.Contains(prompt.TrendIntelligence, placeholder),
			"research template is missing %s", placeholder)
	}
	for _, placeholder := range []string{"{brand_config}", "{trend_intelligence}"} {
		assert.True(t, strings.Contains(prompt.BrutalTruth, placeholder),
			"critique template is missing %s", placeholder)
	}
}
