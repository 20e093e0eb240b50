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

// This file tests the single-stage analysis operations: target routing,
// request shape, and grounded search citation handling.
package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
	test "github.com/Henry1228081dev/brand-biz/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// newAnalysisService wires a service where every role is its own fake, so
// tests can assert which target served a call.
func newAnalysisService() (*services.AnalysisService, *test.FakeGenerativeModel, *test.FakeGenerativeModel, *test.FakeGenerativeModel, *test.FakeGenerativeModel) {
	flash := &test.FakeGenerativeModel{}
	pro := &test.FakeGenerativeModel{}
	grounded := &test.FakeGenerativeModel{}
	reasoning := &test.FakeGenerativeModel{}
	service := &services.AnalysisService{
		Flash:     flash,
		Pro:       pro,
		Grounded:  grounded,
		Reasoning: reasoning,
	}
	return service, flash, pro, grounded, reasoning
}

// TestAnalyzeImageUsesFlashTarget verifies image analysis runs on the fast
// target and sends the image alongside the caller's instruction.
func TestAnalyzeImageUsesFlashTarget(t *testing.T) {
	service, flash, pro, _, _ := newAnalysisService()
	flash.Responses = append(flash.Responses, test.TextResponse("a red logo on a white wall"))

	out, err := service.AnalyzeImage(context.Background(),
		media.NewBlob(bytes.NewReader([]byte("img")), "image/png"), "describe this image")

	assert.NoError(t, err)
	assert.Equal(t, "a red logo on a white wall", out)
	assert.Equal(t, 1, flash.CallCount())
	assert.Equal(t, 0, pro.CallCount())
	parts := flash.Calls[0][0].Parts
	assert.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "describe this image", parts[1].Text)
}

// TestAnalyzeVideoUsesProTarget verifies video analysis runs on the pro
// target.
func TestAnalyzeVideoUsesProTarget(t *testing.T) {
	service, flash, pro, _, _ := newAnalysisService()
	pro.Responses = append(pro.Responses, test.TextResponse("a thirty second ad"))

	out, err := service.AnalyzeVideo(context.Background(),
		media.NewBlob(bytes.NewReader([]byte("vid")), "video/mp4"), "summarize this video")

	assert.NoError(t, err)
	assert.Equal(t, "a thirty second ad", out)
	assert.Equal(t, 1, pro.CallCount())
	assert.Equal(t, 0, flash.CallCount())
}

// TestTranscribeSendsFixedInstruction verifies transcription runs on the
// fast target with the built-in transcription instruction.
func TestTranscribeSendsFixedInstruction(t *testing.T) {
	service, flash, _, _, _ := newAnalysisService()
	flash.Responses = append(flash.Responses, test.TextResponse("hello world"))

	out, err := service.Transcribe(context.Background(),
		media.NewBlob(bytes.NewReader([]byte("aud")), "audio/mpeg"))

	assert.NoError(t, err)
	assert.Equal(t, "hello world", out)
	parts := flash.Calls[0][0].Parts
	assert.Equal(t, "audio/mpeg", parts[0].InlineData.MIMEType)
	assert.Contains(t, parts[1].Text, "Transcribe")
}

// TestGroundedSearchReturnsSources verifies the search operation returns
// the answer text together with its web citations, in order.
func TestGroundedSearchReturnsSources(t *testing.T) {
	service, _, _, grounded, _ := newAnalysisService()
	grounded.Responses = append(grounded.Responses, test.GroundedResponse(
		"the category grew 12% this year",
		"https://example.com/report", "Industry Report",
	))

	result, err := service.GroundedSearch(context.Background(), "how fast is the category growing")

	assert.NoError(t, err)
	assert.Equal(t, "the category grew 12% this year", result.Text)
	assert.Len(t, result.Sources, 1)
	assert.Equal(t, "Industry Report", result.Sources[0].Web.Title)
}

// TestComplexQueryUsesReasoningTarget verifies the long-form operation runs
// on the reasoning target.
func TestComplexQueryUsesReasoningTarget(t *testing.T) {
	service, flash, _, _, reasoning := newAnalysisService()
	reasoning.Responses = append(reasoning.Responses, test.TextResponse("step by step: ..."))

	out, err := service.ComplexQuery(context.Background(), "compare three campaign concepts")

	assert.NoError(t, err)
	assert.Equal(t, "step by step: ...", out)
	assert.Equal(t, 1, reasoning.CallCount())
	assert.Equal(t, 0, flash.CallCount())
}

// TestAnalysisTransportFailure verifies a failed call surfaces as a
// *TransportError.
func TestAnalysisTransportFailure(t *testing.T) {
	service, _, _, _, reasoning := newAnalysisService()
	reasoning.Errs = append(reasoning.Errs, errors.New("connection reset"))

	_, err := service.ComplexQuery(context.Background(), "anything")

	var transportErr *services.TransportError
	assert.ErrorAs(t, err, &transportErr)
}
