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

// Package cloud defines the application configuration loaded from TOML
// files and the clients for the generative inference service. This file
// holds the configuration structs: application identity, the prompt
// template overrides, and the declared generation targets (agent models).
package cloud

import "google.golang.org/genai"

// DefaultSafetySettings are the content safety thresholds applied to every
// agent model. They are non-restrictive: the service evaluates trusted
// brand uploads, and a blocked response would otherwise surface as an
// opaque empty-output failure.
var DefaultSafetySettings = []*genai.SafetySetting{
	{
		Category:  genai.HarmCategoryDangerousContent,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategoryHarassment,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategorySexuallyExplicit,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
}

// PromptTemplates lets deployments override the built-in instruction
// templates. Empty fields fall back to the defaults in internal/core/prompt.
type PromptTemplates struct {
	TrendPrompt    string `toml:"trend"`    // Override for the market-research prompt.
	CritiquePrompt string `toml:"critique"` // Override for the critique instruction.
}

// AgentModel declares one configured generation target: the model name plus
// its generation parameters.
type AgentModel struct {
	Model              string  `toml:"model"`               // The model name (e.g., "gemini-2.5-pro").
	SystemInstructions string  `toml:"system_instructions"` // Optional system instructions.
	Temperature        float32 `toml:"temperature"`         // Sampling temperature.
	TopP               float32 `toml:"top_p"`               // Nucleus sampling parameter.
	TopK               float32 `toml:"top_k"`               // Top-K sampling parameter.
	MaxTokens          int32   `toml:"max_tokens"`          // Output token cap.
	OutputFormat       string  `toml:"output_format"`       // Response MIME type ("application/json" for constrained output).
	EnableGoogle       bool    `toml:"enable_google"`       // Attach the Google Search grounding tool.
	ThinkingBudget     int32   `toml:"thinking_budget"`     // Reasoning token budget; 0 leaves the model default.
	RateLimit          int     `toml:"rate_limit"`          // Requests per second allowed against this model.
}

// Config is the root of the application configuration.
type Config struct {
	Application struct {
		Name            string `toml:"name"`              // Service name, used for telemetry resources.
		GoogleProjectId string `toml:"google_project_id"` // When set, the client uses the Vertex AI backend.
		GoogleLocation  string `toml:"location"`          // Vertex AI location.
		APIKeyEnvVar    string `toml:"api_key_env_var"`   // Env var holding the Gemini API key (default GEMINI_API_KEY).
		Port            int    `toml:"port"`              // HTTP listen port.
	} `toml:"application"`
	PromptTemplates PromptTemplates       `toml:"prompt_templates"`
	AgentModels     map[string]AgentModel `toml:"agent_models"`
}

// NewConfig returns a Config with its map fields initialized so the TOML
// decoder can populate them directly.
func NewConfig() *Config {
	return &Config{
		AgentModels: make(map[string]AgentModel),
	}
}
