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
	"log/slog"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// QuotaAwareGenerativeAIModel binds a model name and its generation
// configuration to the shared genai client, and gates every call behind a
// local rate limiter so the service degrades to queueing instead of
// hitting provider quota errors. Transient failures are retried with a
// fixed backoff up to MaxGenerateRetries times.
type QuotaAwareGenerativeAIModel struct {
	GenerativeContentConfig *genai.GenerateContentConfig
	ModelName               string
	ModelHandle             *genai.Models
	RateLimit               *rate.Limiter
}

// NewQuotaAwareModel wires a generation target. requestsPerSecond values
// below 1 are clamped to 1.
func NewQuotaAwareModel(
	generationConfig *genai.GenerateContentConfig,
	modelName string,
	models *genai.Models,
	requestsPerSecond int) *QuotaAwareGenerativeAIModel {
	if requestsPerSecond < 1 {
		requestsPerSecond = 1
	}
	return &QuotaAwareGenerativeAIModel{
		GenerativeContentConfig: generationConfig,
		ModelName:               modelName,
		ModelHandle:             models,
		RateLimit:               rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// GenerateContent waits for a rate-limiter token, then issues the
// generation request with the wrapper's configured model and parameters.
func (q *QuotaAwareGenerativeAIModel) GenerateContent(
	ctx context.Context,
	contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxGenerateRetries; attempt++ {
		if err := q.RateLimit.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := q.ModelHandle.GenerateContent(ctx, q.ModelName, contents, q.GenerativeContentConfig)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		slog.WarnContext(ctx, "generation attempt failed",
			"model", q.ModelName,
			"attempt", attempt,
			"error", err)
		if attempt < MaxGenerateRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}
	return nil, fmt.Errorf("model %s failed after %d attempts: %w", q.ModelName, MaxGenerateRetries, lastErr)
}
