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

// This file defines the critique report returned by the schema-constrained
// generation stage. The struct layout is the single source of truth for the
// report shape; the response schema in internal/core/schema must enumerate
// exactly these fields, and a test keeps the two in sync. Any field added
// here must be added to the schema in the same change.
package model

// Verdict is the closed set of deployment verdicts a critique can carry.
// The spellings match what the generation prompt instructs the model to
// emit; VerdictError is reserved for pipeline failure paths and is never
// produced by the inference service itself.
type Verdict string

const (
	VerdictDeploy       Verdict = "DEPLOY"
	VerdictRevise       Verdict = "REVISE"
	VerdictUndeployable Verdict = "UNDEPLOYABLE - KILL IT"
	VerdictBlocked      Verdict = "BLOCKED - HUMAN REVIEW"
	VerdictError        Verdict = "ERROR"
)

// Scores holds the 0-10 evaluation scores. Safety is binary (0.0 or 10.0)
// by convention of the instruction template; the code does not enforce it.
type Scores struct {
	BrandFit       float64 `json:"brand_fit"`
	Clarity        float64 `json:"clarity"`
	VisualQuality  float64 `json:"visual_quality"`
	Safety         float64 `json:"safety"`
	ViralPotential float64 `json:"viral_potential"`
	Overall        float64 `json:"overall"`
}

// DetailedBreakdown contains the per-criterion diagnosis text.
type DetailedBreakdown struct {
	BrandFitDiagnosis       string `json:"brand_fit_diagnosis"`
	ClarityDiagnosis        string `json:"clarity_diagnosis"`
	VisualQualityDiagnosis  string `json:"visual_quality_diagnosis"`
	SafetyDiagnosis         string `json:"safety_diagnosis"`
	ViralPotentialDiagnosis string `json:"viral_potential_diagnosis"`
}

// CriticalFailure describes one specific problem the model found, where it
// occurs, and how badly it hurts the ad.
type CriticalFailure struct {
	Issue    string `json:"issue"`
	Location string `json:"location"`
	Impact   string `json:"impact"`
	Severity string `json:"severity"` // CRITICAL, HIGH, or MEDIUM
}

// CompetitiveAnalysis summarizes how the video stacks up against what the
// rest of the industry is doing.
type CompetitiveAnalysis struct {
	WhatCompetitorsDoWell          string `json:"what_competitors_do_well"`
	YourDifferentiationOpportunity string `json:"your_differentiation_opportunity"`
	WhoToStudy                     string `json:"who_to_study"`
}

// ActionItem is one concrete change instruction: what to change, the current
// state, the target state, and the reasoning. Used for both immediate and
// structural changes in the action plan.
type ActionItem struct {
	Change string `json:"change"`
	From   string `json:"from"`
	To     string `json:"to"`
	Why    string `json:"why"`
}

// ContentStrategy names the specific trending elements the video should
// leverage on its target platform.
type ContentStrategy struct {
	TrendingHookToUse        string `json:"trending_hook_to_use"`
	TrendingTopicToReference string `json:"trending_topic_to_reference"`
	TrendingAudioToUse       string `json:"trending_audio_to_use"`
	MemeFormatToLeverage     string `json:"meme_format_to_leverage"`
}

// TechnicalSpecs is the target production spec for the revised video.
type TechnicalSpecs struct {
	Format        string   `json:"format"`
	Resolution    string   `json:"resolution"`
	Duration      string   `json:"duration"`
	TextSpecs     string   `json:"text_specs"`
	LogoPlacement string   `json:"logo_placement"`
	ColorsToUse   []string `json:"colors_to_use"`
}

// DetailedActionPlan groups the remediation guidance into immediate edits,
// structural rework, content strategy, and technical targets.
type DetailedActionPlan struct {
	ImmediateChanges  []ActionItem    `json:"immediate_changes"`
	StructuralChanges []ActionItem    `json:"structural_changes"`
	ContentStrategy   ContentStrategy `json:"content_strategy"`
	TechnicalSpecs    TechnicalSpecs  `json:"technical_specs"`
}

// CritiqueResult is the full multi-section critique report. It is only ever
// constructed from a JSON payload that parsed successfully against the
// response schema; a partially-parsed payload surfaces as a pipeline failure
// instead. TrendIntelligence is written exactly once, by the pipeline, after
// the critique stage returns.
type CritiqueResult struct {
	Scores              Scores              `json:"scores"`
	Verdict             Verdict             `json:"verdict"`
	BrutalTruth         string              `json:"brutal_truth"`
	DetailedBreakdown   DetailedBreakdown   `json:"detailed_breakdown"`
	CriticalFailures    []CriticalFailure   `json:"critical_failures"`
	WhatBroke           []string            `json:"what_broke"`
	ViralTacticsUsed    []string            `json:"viral_tactics_used"`
	ViralTacticsMissing []string            `json:"viral_tactics_missing"`
	CompetitiveAnalysis CompetitiveAnalysis `json:"competitive_analysis"`
	FixItFast           string              `json:"fix_it_fast"`
	DetailedActionPlan  DetailedActionPlan  `json:"detailed_action_plan"`
	RegenerationPrompt  string              `json:"regeneration_prompt_for_ai"`
	IfYouHad30Minutes   string              `json:"if_you_had_30_minutes"`
	ExamplesToStudy     []string            `json:"examples_to_study"`
	TrendIntelligence   *TrendIntelligence  `json:"trend_intelligence,omitempty"`
}
