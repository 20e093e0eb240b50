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

// This file tests the critique stage: the shape of the multimodal request,
// parsing of the schema-constrained report, and the failure taxonomy.
package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
	test "github.com/Henry1228081dev/brand-biz/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func videoBlob() media.Blob {
	return media.NewBlob(bytes.NewReader([]byte("fake video bytes")), "video/mp4")
}

func brandText() string {
	return model.BrandConfig{
		Name:     "Acme",
		Industry: "fast food",
		Platform: "TikTok",
		DNA:      "playful, never snarky",
	}.PromptText()
}

// TestCritiqueParsesReport verifies the happy path: the model's JSON report
// parses into the typed result, and the trend intelligence field stays
// unset because attaching it belongs to the pipeline, not this stage.
func TestCritiqueParsesReport(t *testing.T) {
	fake := &test.FakeGenerativeModel{}
	fake.Responses = append(fake.Responses, test.TextResponse(test.CritiqueReportJSON()))
	service := services.NewCritiqueService(fake, "")

	result, err := service.Critique(context.Background(), videoBlob(), brandText(), `{"trending_topics": []}`)

	assert.NoError(t, err)
	assert.Equal(t, model.VerdictRevise, result.Verdict)
	assert.Equal(t, 7.5, result.Scores.BrandFit)
	assert.Len(t, result.CriticalFailures, 1)
	assert.Equal(t, "CRITICAL", result.CriticalFailures[0].Severity)
	assert.Nil(t, result.TrendIntelligence)
}

// TestCritiqueRequestShape verifies the single request carries the encoded
// video as its first part and the rendered instruction, with brand
// configuration and trend JSON substituted, as its second.
func TestCritiqueRequestShape(t *testing.T) {
	fake := &test.FakeGenerativeModel{}
	fake.Responses = append(fake.Responses, test.TextResponse(test.CritiqueReportJSON()))
	service := services.NewCritiqueService(fake, "")

	trendJSON := `{"trending_topics": ["value menus are back"]}`
	_, err := service.Critique(context.Background(), videoBlob(), brandText(), trendJSON)

	assert.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount())
	parts := fake.Calls[0][0].Parts
	assert.Len(t, parts, 2)
	assert.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "video/mp4", parts[0].InlineData.MIMEType)
	assert.Equal(t, []byte("fake video bytes"), parts[0].InlineData.Data)
	assert.Contains(t, parts[1].Text, "Brand Name: Acme")
	assert.Contains(t, parts[1].Text, trendJSON)
	assert.NotContains(t, parts[1].Text, "{brand_config}")
}

// TestCritiqueEmptyResponse verifies that a blank answer is a stage
// failure, not a zero-valued report.
func TestCritiqueEmptyResponse(t *testing.T) {
	fake := &test.FakeGenerativeModel{}
	fake.Responses = append(fake.Responses, test.TextResponse("   \n"))
	service := services.NewCritiqueService(fake, "")

	result, err := service.Critique(context.Background(), videoBlob(), brandText(), "{}")

	assert.Nil(t, result)
	var critErr *services.CritiqueError
	assert.ErrorAs(t, err, &critErr)
}

// TestCritiqueMalformedResponse verifies that output violating the schema
// contract surfaces as a *CritiqueError.
func TestCritiqueMalformedResponse(t *testing.T) {
	fake := &test.FakeGenerativeModel{}
	fake.Responses = append(fake.Responses, test.TextResponse(`{"verdict": `))
	service := services.NewCritiqueService(fake, "")

	result, err := service.Critique(context.Background(), videoBlob(), brandText(), "{}")

	assert.Nil(t, result)
	var critErr *services.CritiqueError
	assert.ErrorAs(t, err, &critErr)
}

// TestCritiqueTransportFailure verifies that a failed call surfaces as a
// *CritiqueError wrapping a *TransportError.
func TestCritiqueTransportFailure(t *testing.T) {
	fake := &test.FakeGenerativeModel{Errs: []error{errors.New("deadline exceeded")}}
	service := services.NewCritiqueService(fake, "")

	_, err := service.Critique(context.Background(), videoBlob(), brandText(), "{}")

	var critErr *services.CritiqueError
	assert.ErrorAs(t, err, &critErr)
	var transportErr *services.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

// TestCritiqueUnreadableVideo verifies that an unreadable blob is reported
// as the media layer's *ReadError, before any model call happens.
func TestCritiqueUnreadableVideo(t *testing.T) {
	fake := &test.FakeGenerativeModel{}
	service := services.NewCritiqueService(fake, "")

	_, err := service.Critique(context.Background(), media.Blob{}, brandText(), "{}")

	var readErr *media.ReadError
	assert.ErrorAs(t, err, &readErr)
	assert.Equal(t, 0, fake.CallCount())
}
