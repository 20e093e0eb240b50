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

// Package schema declares the response schema passed to the critique
// generation call. The schema constrains the model to emit JSON matching
// model.CritiqueResult; it is purpose-built for that one result type and is
// not a general schema language. Keep it in lockstep with the struct — the
// sync test in this package fails when the two drift.
package schema

import "google.golang.org/genai"

func stringItem() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func stringArray() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: stringItem()}
}

func actionItem() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"change": {Type: genai.TypeString},
			"from":   {Type: genai.TypeString},
			"to":     {Type: genai.TypeString},
			"why":    {Type: genai.TypeString},
		},
	}
}

// CritiqueResponse builds the declarative shape of the critique report.
// A fresh value is returned on every call so a caller attaching it to a
// generation config cannot mutate a shared instance.
func CritiqueResponse() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scores": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"brand_fit":       {Type: genai.TypeNumber},
					"clarity":         {Type: genai.TypeNumber},
					"visual_quality":  {Type: genai.TypeNumber},
					"safety":          {Type: genai.TypeNumber},
					"viral_potential": {Type: genai.TypeNumber},
					"overall":         {Type: genai.TypeNumber},
				},
			},
			"verdict":      {Type: genai.TypeString},
			"brutal_truth": {Type: genai.TypeString},
			"detailed_breakdown": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"brand_fit_diagnosis":       {Type: genai.TypeString},
					"clarity_diagnosis":         {Type: genai.TypeString},
					"visual_quality_diagnosis":  {Type: genai.TypeString},
					"safety_diagnosis":          {Type: genai.TypeString},
					"viral_potential_diagnosis": {Type: genai.TypeString},
				},
			},
			"critical_failures": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"issue":    {Type: genai.TypeString},
						"location": {Type: genai.TypeString},
						"impact":   {Type: genai.TypeString},
						"severity": {Type: genai.TypeString},
					},
				},
			},
			"what_broke":            stringArray(),
			"viral_tactics_used":    stringArray(),
			"viral_tactics_missing": stringArray(),
			"competitive_analysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"what_competitors_do_well":         {Type: genai.TypeString},
					"your_differentiation_opportunity": {Type: genai.TypeString},
					"who_to_study":                     {Type: genai.TypeString},
				},
			},
			"fix_it_fast": {Type: genai.TypeString},
			"detailed_action_plan": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"immediate_changes":  {Type: genai.TypeArray, Items: actionItem()},
					"structural_changes": {Type: genai.TypeArray, Items: actionItem()},
					"content_strategy": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"trending_hook_to_use":        {Type: genai.TypeString},
							"trending_topic_to_reference": {Type: genai.TypeString},
							"trending_audio_to_use":       {Type: genai.TypeString},
							"meme_format_to_leverage":     {Type: genai.TypeString},
						},
					},
					"technical_specs": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"format":         {Type: genai.TypeString},
							"resolution":     {Type: genai.TypeString},
							"duration":       {Type: genai.TypeString},
							"text_specs":     {Type: genai.TypeString},
							"logo_placement": {Type: genai.TypeString},
							"colors_to_use":  stringArray(),
						},
					},
				},
			},
			"regeneration_prompt_for_ai": {Type: genai.TypeString},
			"if_you_had_30_minutes":      {Type: genai.TypeString},
			"examples_to_study":          stringArray(),
			"trend_intelligence": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"trending_topics":  stringArray(),
					"viral_formats":    stringArray(),
					"trending_audio":   stringArray(),
					"opportunity_gaps": stringArray(),
				},
			},
		},
	}
}
