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

// This file implements the critique stage of the pipeline.
//
// Logic Flow:
//  1. Encode the video blob into its inline transport form.
//  2. Render the critique instruction template with the brand configuration
//     text and the serialized trend intelligence.
//  3. Issue one multimodal call carrying the encoded video and the rendered
//     instruction. The bound model is configured for JSON-only output under
//     the critique response schema.
//  4. Trim and parse the result directly. No fence stripping happens here:
//     schema-constrained output carries no conversational wrapping, and if
//     it ever does, the parse failure is terminal rather than repaired.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/prompt"
	"google.golang.org/genai"
)

// CritiqueService produces the structured critique report from a video and
// its market context. The bound model must be configured with the critique
// response schema and a JSON response MIME type.
type CritiqueService struct {
	model    GenerativeModel
	template string
}

// NewCritiqueService wires the stage to its schema-constrained generation
// target. An empty template selects the built-in critique instruction.
func NewCritiqueService(generativeModel GenerativeModel, template string) *CritiqueService {
	if template == "" {
		template = prompt.BrutalTruth
	}
	return &CritiqueService{model: generativeModel, template: template}
}

// Critique runs the schema-constrained critique call.
//
// Inputs:
//   - ctx: The request context.
//   - video: The video blob to evaluate; read fully during encoding.
//   - brandConfigText: The rendered brand configuration block.
//   - trendJSON: The serialized trend intelligence from the research stage.
//
// Outputs:
//   - *model.CritiqueResult: The parsed report, its trend_intelligence field
//     still unset; attaching it is the pipeline's job.
//   - error: A *media.ReadError when the blob is unreadable, otherwise a
//     *CritiqueError for transport, empty, or non-conforming output.
func (s *CritiqueService) Critique(ctx context.Context, video media.Blob, brandConfigText, trendJSON string) (*model.CritiqueResult, error) {
	encoded, err := media.Encode(video)
	if err != nil {
		return nil, err
	}
	videoPart, err := encoded.Part()
	if err != nil {
		return nil, &CritiqueError{Err: err}
	}

	rendered := prompt.Render(s.template, map[string]string{
		"brand_config":       brandConfigText,
		"trend_intelligence": trendJSON,
	})

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			videoPart,
			{Text: rendered},
		},
	}}

	resp, err := s.model.GenerateContent(ctx, contents)
	if err != nil {
		return nil, &CritiqueError{Err: &TransportError{Err: err}}
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		return nil, &CritiqueError{Err: fmt.Errorf("empty response from model")}
	}

	result := &model.CritiqueResult{}
	if err := json.Unmarshal([]byte(text), result); err != nil {
		return nil, &CritiqueError{Err: fmt.Errorf("failed to parse critique response as JSON: %w", err)}
	}
	return result, nil
}
