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

package cloud

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const DefaultAPIKeyEnvVar = "GEMINI_API_KEY"

// ServiceClients holds the shared genai client and the quota-aware model
// wrappers built from the configured agent models. It is created once at
// startup and shared by every request.
type ServiceClients struct {
	GenAIClient *genai.Client
	AgentModels map[string]*QuotaAwareGenerativeAIModel
}

// NewCloudServiceClients creates the genai client and one quota-aware
// wrapper per configured agent model.
//
// The backend is chosen from the configuration: when google_project_id is
// set the client talks to Vertex AI using ambient credentials, otherwise
// it uses the public Gemini API with the key read from the configured
// environment variable (GEMINI_API_KEY by default).
//
// Inputs:
//   - ctx: the context for client construction.
//   - config: the loaded application configuration.
//
// Outputs:
//   - The initialized ServiceClients.
//   - An error if the client cannot be created or a credential is missing.
func NewCloudServiceClients(ctx context.Context, config *Config) (*ServiceClients, error) {
	clientConfig := &genai.ClientConfig{}
	if config.Application.GoogleProjectId != "" {
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = config.Application.GoogleProjectId
		clientConfig.Location = config.Application.GoogleLocation
	} else {
		keyVar := config.Application.APIKeyEnvVar
		if keyVar == "" {
			keyVar = DefaultAPIKeyEnvVar
		}
		apiKey := os.Getenv(keyVar)
		if apiKey == "" {
			return nil, fmt.Errorf("no google_project_id configured and %s is not set", keyVar)
		}
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	agents := make(map[string]*QuotaAwareGenerativeAIModel)
	for name, values := range config.AgentModels {
		generationConfig := &genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](values.Temperature),
			TopP:             genai.Ptr[float32](values.TopP),
			TopK:             genai.Ptr[float32](values.TopK),
			MaxOutputTokens:  values.MaxTokens,
			SafetySettings:   DefaultSafetySettings,
			ResponseMIMEType: values.OutputFormat,
		}
		if values.SystemInstructions != "" {
			generationConfig.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: values.SystemInstructions}},
			}
		}
		if values.EnableGoogle {
			generationConfig.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
		}
		if values.ThinkingBudget > 0 {
			generationConfig.ThinkingConfig = &genai.ThinkingConfig{
				ThinkingBudget: genai.Ptr[int32](values.ThinkingBudget),
			}
		}
		agents[name] = NewQuotaAwareModel(generationConfig, values.Model, client.Models, values.RateLimit)
	}

	return &ServiceClients{
		GenAIClient: client,
		AgentModels: agents,
	}, nil
}

// GetAgentModel returns the named wrapper or an error listing what was
// requested, so misconfigured deployments fail at startup with a clear
// message instead of a nil dereference mid-request.
func (s *ServiceClients) GetAgentModel(name string) (*QuotaAwareGenerativeAIModel, error) {
	agent, ok := s.AgentModels[name]
	if !ok {
		return nil, fmt.Errorf("agent model %q is not configured", name)
	}
	return agent, nil
}
