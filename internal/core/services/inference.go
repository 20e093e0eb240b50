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

// Package services contains the business logic that talks to the generative
// inference transport. This file defines the seam between the stages and
// that transport: a minimal GenerativeModel interface (satisfied by the
// rate-limited wrapper in internal/cloud and by test fakes) plus the shared
// helpers for extracting text and grounding citations from a response.
package services

import (
	"context"

	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"google.golang.org/genai"
)

// GenerativeModel is one configured generation target: a model name bound
// to its generation config. Each call is a single network round trip; the
// implementation owns retries and rate limiting.
type GenerativeModel interface {
	GenerateContent(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error)
}

// responseText concatenates the text parts of every candidate in order.
// Returns "" for a response with no text content.
func responseText(resp *genai.GenerateContentResponse) string {
	value := ""
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			value += part.Text
		}
	}
	return value
}

// groundingSources extracts the web citation chunks attached to the first
// candidate, preserving order. Always returns a non-nil slice so callers
// can attach it directly as a result's sources.
func groundingSources(resp *genai.GenerateContentResponse) []model.GroundingChunk {
	sources := make([]model.GroundingChunk, 0)
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil {
			continue
		}
		out := model.GroundingChunk{}
		if chunk.Web != nil {
			out.Web = &model.GroundingWeb{URI: chunk.Web.URI, Title: chunk.Web.Title}
		}
		sources = append(sources, out)
	}
	return sources
}
