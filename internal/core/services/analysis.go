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

// This file implements the standalone single-stage analysis operations:
// image and video analysis, audio transcription, grounded search, and the
// reasoning-budget complex query. Each is one Media-Codec-then-inference
// round trip with no second stage and no merge; they all funnel through a
// single helper parameterized by model choice rather than duplicating the
// call site per operation.
package services

import (
	"context"
	"strings"

	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/prompt"
	"google.golang.org/genai"
)

// AnalysisService exposes the single-stage inference operations. Each field
// is a generation target configured for its role: Flash for fast analysis,
// Pro for video, Grounded for search-backed answers, and Reasoning for the
// complex-query variant with a thinking budget.
type AnalysisService struct {
	Flash     GenerativeModel
	Pro       GenerativeModel
	Grounded  GenerativeModel
	Reasoning GenerativeModel
}

// generate is the shared single-stage call: one round trip, text out.
func (s *AnalysisService) generate(ctx context.Context, target GenerativeModel, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	resp, err := target.GenerateContent(ctx, contents)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return resp, nil
}

// blobContents encodes a blob and pairs it with an instruction, producing
// the multimodal request body shared by the blob-based operations.
func blobContents(blob media.Blob, instruction string) ([]*genai.Content, error) {
	encoded, err := media.Encode(blob)
	if err != nil {
		return nil, err
	}
	part, err := encoded.Part()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{part, {Text: instruction}},
	}}, nil
}

// AnalyzeImage answers a free-form question about an image.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, image media.Blob, instruction string) (string, error) {
	contents, err := blobContents(image, instruction)
	if err != nil {
		return "", err
	}
	resp, err := s.generate(ctx, s.Flash, contents)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

// AnalyzeVideo answers a free-form question about a video.
func (s *AnalysisService) AnalyzeVideo(ctx context.Context, video media.Blob, instruction string) (string, error) {
	contents, err := blobContents(video, instruction)
	if err != nil {
		return "", err
	}
	resp, err := s.generate(ctx, s.Pro, contents)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

// Transcribe produces a transcript of an audio blob.
func (s *AnalysisService) Transcribe(ctx context.Context, audio media.Blob) (string, error) {
	contents, err := blobContents(audio, prompt.Transcribe)
	if err != nil {
		return "", err
	}
	resp, err := s.generate(ctx, s.Flash, contents)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

// GroundedSearch answers a prompt with live web retrieval and returns the
// model's text together with the sources it cited.
func (s *AnalysisService) GroundedSearch(ctx context.Context, instruction string) (*model.SearchResult, error) {
	resp, err := s.generate(ctx, s.Grounded, genai.Text(instruction))
	if err != nil {
		return nil, err
	}
	return &model.SearchResult{
		Text:    strings.TrimSpace(responseText(resp)),
		Sources: groundingSources(resp),
	}, nil
}

// ComplexQuery answers a prompt on the reasoning-budget model.
func (s *AnalysisService) ComplexQuery(ctx context.Context, instruction string) (string, error) {
	resp, err := s.generate(ctx, s.Reasoning, genai.Text(instruction))
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}
