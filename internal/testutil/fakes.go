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

// This file provides a scripted fake for the generative model seam, plus
// response builders and canned stage outputs used across the suite.
package test

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// FakeGenerativeModel is a scripted stand-in for a generation target. Each
// call consumes the next entry of Errs/Responses in order and records the
// request contents for later assertions.
type FakeGenerativeModel struct {
	Responses []*genai.GenerateContentResponse
	Errs      []error
	Calls     [][]*genai.Content
}

func (f *FakeGenerativeModel) GenerateContent(
	_ context.Context,
	contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	i := len(f.Calls)
	f.Calls = append(f.Calls, contents)
	if i < len(f.Errs) && f.Errs[i] != nil {
		return nil, f.Errs[i]
	}
	if i < len(f.Responses) {
		return f.Responses[i], nil
	}
	return nil, fmt.Errorf("fake model: no scripted response for call %d", i+1)
}

// CallCount returns how many generation requests the fake has served.
func (f *FakeGenerativeModel) CallCount() int {
	return len(f.Calls)
}

// TextResponse builds a single-candidate response carrying the given text.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

// GroundedResponse builds a response with web grounding attributions
// attached, given alternating uri, title pairs.
func GroundedResponse(text string, uriTitlePairs ...string) *genai.GenerateContentResponse {
	resp := TextResponse(text)
	if len(uriTitlePairs)%2 != 0 {
		panic("GroundedResponse requires uri, title pairs")
	}
	meta := &genai.GroundingMetadata{}
	for i := 0; i < len(uriTitlePairs); i += 2 {
		meta.GroundingChunks = append(meta.GroundingChunks, &genai.GroundingChunk{
			Web: &genai.GroundingChunkWeb{
				URI:   uriTitlePairs[i],
				Title: uriTitlePairs[i+1],
			},
		})
	}
	resp.Candidates[0].GroundingMetadata = meta
	return resp
}

// TrendIntelligenceJSON is a realistic research-stage output, wrapped in a
// markdown code fence the way grounded models often return JSON.
func TrendIntelligenceJSON() string {
	return "```json\n" + `{
  "trending_topics": ["value menus are back", "behind-the-counter tours"],
  "viral_formats": ["POV order taking", "speed-run challenges"],
  "trending_audio": ["sped-up 2000s pop remixes"],
  "competitor_activity": "Rivals are posting employee POV content twice a day.",
  "trending_memes": ["we listen and we don't judge"],
  "opportunity_gaps": ["no one is showing the prep line at 5am"],
  "risk_alerts": ["audiences are calling out obviously staged reactions"]
}` + "\n```"
}

// CritiqueReportJSON is a full critique-stage output with a REVISE verdict.
func CritiqueReportJSON() string {
	return `{
  "scores": {
    "brand_fit": 7.5,
    "clarity": 4.0,
    "visual_quality": 6.5,
    "safety": 10.0,
    "viral_potential": 3.5,
    "overall": 5.2
  },
  "verdict": "REVISE",
  "brutal_truth": "The first two seconds show a logo instead of a person, so the scroll never stops.",
  "detailed_breakdown": {
    "brand_fit_diagnosis": "The product is visible throughout and the framing is on-voice.",
    "clarity_diagnosis": "The offer is never stated until second nine, far past the decision point.",
    "visual_quality_diagnosis": "Lighting is strong but two shots are visibly out of focus.",
    "safety_diagnosis": "Nothing unsafe for the brand.",
    "viral_potential_diagnosis": "Ignores the POV format currently dominating the category."
  },
  "critical_failures": [
    {
      "issue": "Logo-first opening",
      "location": "0:00-0:02",
      "impact": "Viewers decide to keep scrolling before any human appears.",
      "severity": "CRITICAL"
    }
  ],
  "what_broke": ["Static brand card hook", "Late offer reveal"],
  "viral_tactics_used": ["Caption placement stays clear of the UI"],
  "viral_tactics_missing": ["POV framing", "Trending audio"],
  "competitive_analysis": {
    "what_competitors_do_well": "Category rivals run employee POV orders with handheld energy.",
    "your_differentiation_opportunity": "Show the 5am prep line no competitor is filming.",
    "who_to_study": "The two fastest-growing rival crew accounts on the platform."
  },
  "fix_it_fast": "Cut the logo card and open on the crew member catching the order bag.",
  "detailed_action_plan": {
    "immediate_changes": [
      {
        "change": "Replace the logo card with a mid-action shot",
        "from": "Static brand card",
        "to": "Crew member catching a tossed order bag",
        "why": "A human in motion inside the first second holds the swipe."
      }
    ],
    "structural_changes": [
      {
        "change": "Move the offer to the first line of dialogue",
        "from": "Offer at second nine",
        "to": "Offer spoken over the opening shot",
        "why": "The decision to keep watching is made before second three."
      }
    ],
    "content_strategy": {
      "trending_hook_to_use": "our 5am looks nothing like your 5am",
      "trending_topic_to_reference": "behind-the-counter tours",
      "trending_audio_to_use": "sped-up 2000s pop remix",
      "meme_format_to_leverage": "we listen and we don't judge"
    },
    "technical_specs": {
      "format": "vertical video",
      "resolution": "1080x1920",
      "duration": "21 seconds",
      "text_specs": "keep body text above the progress bar",
      "logo_placement": "final frame only",
      "colors_to_use": ["brand red", "off-white"]
    }
  },
  "regeneration_prompt_for_ai": "A handheld POV vertical video of a crew member at 5am prep, offer spoken in the first second.",
  "if_you_had_30_minutes": "Trim to 21 seconds, re-cut the open, and re-record the first line with the offer.",
  "examples_to_study": ["Rival crew POV order videos", "5am prep-line walkthroughs"]
}`
}
