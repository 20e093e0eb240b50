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

// This file implements the market-research stage of the critique pipeline.
//
// Logic Flow:
//  1. Render the research prompt for the brand's industry, platform, and
//     name. The prompt asks for a brief JSON object, but this is a soft
//     hint: the call runs with web grounding enabled and therefore cannot
//     also be schema constrained.
//  2. Issue one grounded generation call.
//  3. Normalize the returned text (fence stripping) and parse it as JSON.
//     A parse failure is terminal; it is not retried.
//  4. Attach the grounding citations from the response side-channel as the
//     result's sources, defaulting to an empty ordered slice.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/prompt"
	"google.golang.org/genai"
)

// IntelligenceService gathers real-time market intelligence through a
// web-grounded generative model.
type IntelligenceService struct {
	model    GenerativeModel
	template string
}

// NewIntelligenceService wires the stage to a grounded generation target.
// An empty template selects the built-in research prompt.
func NewIntelligenceService(generativeModel GenerativeModel, template string) *IntelligenceService {
	if template == "" {
		template = prompt.TrendIntelligence
	}
	return &IntelligenceService{model: generativeModel, template: template}
}

// Gather runs the research call and coerces its free-text answer into a
// typed TrendIntelligence. Transport and parse failures both surface as an
// *IntelligenceError.
func (s *IntelligenceService) Gather(ctx context.Context, industry, brandName, platform string) (*model.TrendIntelligence, error) {
	rendered := prompt.Render(s.template, map[string]string{
		"industry":   industry,
		"platform":   platform,
		"brand_name": brandName,
	})

	resp, err := s.model.GenerateContent(ctx, genai.Text(rendered))
	if err != nil {
		return nil, &IntelligenceError{Err: &TransportError{Err: err}}
	}

	text := NormalizeModelJSON(responseText(resp))
	trend := &model.TrendIntelligence{}
	if err := json.Unmarshal([]byte(text), trend); err != nil {
		return nil, &IntelligenceError{Err: fmt.Errorf("failed to parse research response as JSON: %w", err)}
	}

	trend.Sources = groundingSources(resp)
	return trend, nil
}
