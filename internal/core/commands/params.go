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

// Package commands provides the concrete commands that make up the critique
// pipeline: gathering trend intelligence, running the critique call, and
// attaching the intelligence to the final report. This file defines the
// context parameter keys the commands use to share data.
package commands

// Context keys for the values a critique pipeline run carries between
// commands.
const (
	// BrandConfigParam holds the caller's model.BrandConfig.
	BrandConfigParam = "__brand_config__"
	// VideoParam holds the caller's media.Blob.
	VideoParam = "__video__"
	// TrendParam holds the *model.TrendIntelligence from the research stage.
	TrendParam = "__trend_intelligence__"
	// ResultParam holds the final *model.CritiqueResult.
	ResultParam = "__critique_result__"
)
