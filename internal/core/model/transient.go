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

// Package model defines the data structures that flow through the critique
// pipeline. This file holds the transient inputs and intermediate values:
// the brand configuration supplied by the caller and the trend intelligence
// produced by the web-grounded research stage. Neither is persisted; both
// live only for the duration of a single pipeline run.
package model

import "fmt"

// BrandConfig captures the brand metadata the caller submits alongside a
// video. Name, Industry, and Platform are required for a critique run to
// start; DNA is free-text brand rules and may be empty.
type BrandConfig struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Platform string `json:"platform"`
	DNA      string `json:"dna"`
}

// PromptText renders the brand configuration as the block of text that is
// substituted into the critique instruction template.
func (b BrandConfig) PromptText() string {
	return fmt.Sprintf(`
Brand Name: %s
Industry: %s
Target Platform: %s

Brand DNA & Rules:
%s
`, b.Name, b.Industry, b.Platform, b.DNA)
}

// GroundingWeb holds the provenance details of a single web source cited by
// a grounded generation call. Both fields are optional on the wire.
type GroundingWeb struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// GroundingChunk is one citation attached to a grounded response. The Web
// field may be nil when the upstream service omits source details.
type GroundingChunk struct {
	Web *GroundingWeb `json:"web,omitempty"`
}

// TrendIntelligence is the result of the market-research stage: a snapshot
// of what is currently working in the brand's industry on the target
// platform. It is produced once per pipeline run, serialized into the
// critique prompt, and re-attached verbatim to the final report.
//
// The required fields mirror the JSON shape the research prompt asks the
// model for; the optional fields are extras the model sometimes volunteers
// and are kept when present.
type TrendIntelligence struct {
	TrendingTopics     []string `json:"trending_topics"`
	ViralFormats       []string `json:"viral_formats"`
	TrendingAudio      []string `json:"trending_audio"`
	CompetitorActivity string   `json:"competitor_activity"`

	TrendingMemes   []string `json:"trending_memes,omitempty"`
	CulturalMoments []string `json:"cultural_moments,omitempty"`
	OpportunityGaps []string `json:"opportunity_gaps,omitempty"`
	RiskAlerts      []string `json:"risk_alerts,omitempty"`

	// Sources carries the grounding citations for the run, in the order the
	// transport reported them. Defaults to an empty slice, never nil.
	Sources []GroundingChunk `json:"sources,omitempty"`
}

// SearchResult is the output of the standalone grounded-search operation:
// the model's free-text answer plus the web sources it cited.
type SearchResult struct {
	Text    string           `json:"text"`
	Sources []GroundingChunk `json:"sources"`
}
