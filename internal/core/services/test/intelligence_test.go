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

// This file tests the market-research stage against a scripted fake model:
// prompt rendering, fence-stripped parsing, grounding citation attachment,
// and the error taxonomy of failed calls.
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Henry1228081dev/brand-biz/internal/core/services"
	test "github.com/Henry1228081dev/brand-biz/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// TestGatherParsesFencedResponse verifies the happy path: a fenced JSON
// answer from the grounded model is parsed into typed trend intelligence
// and the grounding citations are attached in response order.
func TestGatherParsesFencedResponse(t *testing.T) {
	model := &test.FakeGenerativeModel{}
	model.Responses = append(model.Responses, test.GroundedResponse(
		test.TrendIntelligenceJSON(),
		"https://example.com/one", "Source One",
		"https://example.com/two", "Source Two",
	))
	service := services.NewIntelligenceService(model, "")

	trend, err := service.Gather(context.Background(), "fast food", "Acme", "TikTok")

	assert.NoError(t, err)
	assert.Equal(t, []string{"value menus are back", "behind-the-counter tours"}, trend.TrendingTopics)
	assert.Equal(t, "Rivals are posting employee POV content twice a day.", trend.CompetitorActivity)
	assert.Len(t, trend.Sources, 2)
	assert.Equal(t, "https://example.com/one", trend.Sources[0].Web.URI)
	assert.Equal(t, "Source Two", trend.Sources[1].Web.Title)
}

// TestGatherRendersPrompt verifies the request carries the rendered
// research prompt with the brand's industry, platform, and name filled in.
func TestGatherRendersPrompt(t *testing.T) {
	model := &test.FakeGenerativeModel{}
	model.Responses = append(model.Responses, test.TextResponse(test.TrendIntelligenceJSON()))
	service := services.NewIntelligenceService(model, "")

	_, err := service.Gather(context.Background(), "fast food", "Acme", "TikTok")

	assert.NoError(t, err)
	assert.Equal(t, 1, model.CallCount())
	sent := model.Calls[0][0].Parts[0].Text
	assert.Contains(t, sent, "fast food")
	assert.Contains(t, sent, "TikTok")
	assert.Contains(t, sent, "Acme")
	assert.NotContains(t, sent, "{industry}")
}

// TestGatherDefaultsEmptySources verifies that a response without grounding
// metadata still yields a non-nil, empty sources slice.
func TestGatherDefaultsEmptySources(t *testing.T) {
	model := &test.FakeGenerativeModel{}
	model.Responses = append(model.Responses, test.TextResponse(test.TrendIntelligenceJSON()))
	service := services.NewIntelligenceService(model, "")

	trend, err := service.Gather(context.Background(), "fast food", "Acme", "TikTok")

	assert.NoError(t, err)
	assert.NotNil(t, trend.Sources)
	assert.Len(t, trend.Sources, 0)
}

// TestGatherTransportFailure verifies that a failed call surfaces as an
// *IntelligenceError wrapping a *TransportError.
func TestGatherTransportFailure(t *testing.T) {
	model := &test.FakeGenerativeModel{Errs: []error{errors.New("quota exceeded")}}
	service := services.NewIntelligenceService(model, "")

	trend, err := service.Gather(context.Background(), "fast food", "Acme", "TikTok")

	assert.Nil(t, trend)
	var intelErr *services.IntelligenceError
	assert.ErrorAs(t, err, &intelErr)
	var transportErr *services.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

// TestGatherUnparsableResponse verifies that prose the model returned
// instead of JSON is a terminal parse failure, not retried and not
// repaired further than fence stripping.
func TestGatherUnparsableResponse(t *testing.T) {
	model := &test.FakeGenerativeModel{}
	model.Responses = append(model.Responses, test.TextResponse("I could not find any trends today."))
	service := services.NewIntelligenceService(model, "")

	trend, err := service.Gather(context.Background(), "fast food", "Acme", "TikTok")

	assert.Nil(t, trend)
	var intelErr *services.IntelligenceError
	assert.ErrorAs(t, err, &intelErr)
	var transportErr *services.TransportError
	assert.False(t, errors.As(err, &transportErr), "parse failure must not read as a transport failure")
}
