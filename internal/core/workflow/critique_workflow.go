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

// Package workflow contains the end-to-end critique pipeline. The
// CritiqueWorkflow validates a request, then runs a two-stage chain:
//
// Logic Flow:
//  1. Validate the request: the video and all brand fields must be present.
//     No model call is made for an invalid request.
//  2. Trend Gather: the research agent performs a web-grounded market
//     intelligence query for the brand's industry and platform.
//  3. Critique Run: the critique agent evaluates the video against the
//     brand configuration and the gathered intelligence, returning a
//     schema-constrained report.
//  4. Trend Attach: the stage-one intelligence is written onto the final
//     report so callers receive both in a single document.
//
// The chain stops at the first failed stage; a critique is never attempted
// against a brand context the research stage failed to produce.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Henry1228081dev/brand-biz/internal/cloud"
	"github.com/Henry1228081dev/brand-biz/internal/core/commands"
	"github.com/Henry1228081dev/brand-biz/internal/core/cor"
	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/schema"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
)

// State is a lifecycle phase of one critique run, published through
// OnStateChange so callers can surface progress.
type State string

const (
	StateIdle                  State = "IDLE"
	StateGatheringIntelligence State = "GATHERING_INTELLIGENCE"
	StateRunningCritique       State = "RUNNING_CRITIQUE"
	StateComplete              State = "COMPLETE"
	StateFailed                State = "FAILED"
)

// Agent model names the workflow expects in the configuration.
const (
	ResearchAgentName = "research"
	CritiqueAgentName = "critique"
)

// ValidationError reports a request rejected before any model call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid critique request: %s", e.Reason)
}

// CritiqueWorkflow runs the two-stage video critique pipeline.
type CritiqueWorkflow struct {
	intelligence *services.IntelligenceService
	critique     *services.CritiqueService

	// OnStateChange, when non-nil, is invoked synchronously with each
	// lifecycle transition of a run. Runs start in StateIdle; the hook
	// fires for the states after it.
	OnStateChange func(State)
}

// NewCritiqueWorkflow builds the workflow from the configured agent models.
// The "research" agent gathers intelligence and the "critique" agent
// produces the report; the critique agent's generation config is amended
// here with the report response schema so its output is structurally
// constrained. Prompt template overrides from the configuration are passed
// through to the stage services.
func NewCritiqueWorkflow(config *cloud.Config, clients *cloud.ServiceClients) (*CritiqueWorkflow, error) {
	research, err := clients.GetAgentModel(ResearchAgentName)
	if err != nil {
		return nil, err
	}
	critique, err := clients.GetAgentModel(CritiqueAgentName)
	if err != nil {
		return nil, err
	}

	critique.GenerativeContentConfig.ResponseSchema = schema.CritiqueResponse()
	if critique.GenerativeContentConfig.ResponseMIMEType == "" {
		critique.GenerativeContentConfig.ResponseMIMEType = "application/json"
	}

	return NewCritiqueWorkflowFromServices(
		services.NewIntelligenceService(research, config.PromptTemplates.TrendPrompt),
		services.NewCritiqueService(critique, config.PromptTemplates.CritiquePrompt),
	), nil
}

// NewCritiqueWorkflowFromServices wires a workflow directly from its stage
// services.
func NewCritiqueWorkflowFromServices(
	intelligence *services.IntelligenceService,
	critique *services.CritiqueService) *CritiqueWorkflow {
	return &CritiqueWorkflow{
		intelligence: intelligence,
		critique:     critique,
	}
}

func (w *CritiqueWorkflow) setState(state State) {
	if w.OnStateChange != nil {
		w.OnStateChange(state)
	}
}

func validate(video media.Blob, brand model.BrandConfig) *ValidationError {
	switch {
	case video.Content == nil:
		return &ValidationError{Reason: "a video is required"}
	case brand.Name == "":
		return &ValidationError{Reason: "brand name is required"}
	case brand.Industry == "":
		return &ValidationError{Reason: "brand industry is required"}
	case brand.Platform == "":
		return &ValidationError{Reason: "target platform is required"}
	}
	return nil
}

// Run executes the full pipeline for one video and brand configuration.
//
// Inputs:
//   - ctx: the request context; cancellation aborts the in-flight stage.
//   - video: the raw video to critique.
//   - brand: the brand configuration; all fields except DNA are required.
//
// Outputs:
//   - The critique report, with the researched trend intelligence attached.
//   - The first stage error, or a ValidationError for a bad request.
func (w *CritiqueWorkflow) Run(
	ctx context.Context,
	video media.Blob,
	brand model.BrandConfig) (*model.CritiqueResult, error) {

	runID := uuid.NewString()
	logger := slog.With("run_id", runID, "brand", brand.Name, "platform", brand.Platform)

	if err := validate(video, brand); err != nil {
		w.setState(StateFailed)
		logger.WarnContext(ctx, "rejected critique request", "reason", err.Reason)
		return nil, err
	}

	// The commands are rebuilt per run so their start hooks close over
	// this run's state reporting.
	chain := cor.NewBaseChain("critique_pipeline")
	chain.AddCommand(commands.NewTrendGather("trend_gather", w.intelligence, func() {
		w.setState(StateGatheringIntelligence)
	}))
	chain.AddCommand(commands.NewCritiqueRun("critique_run", w.critique, func() {
		w.setState(StateRunningCritique)
	}))
	chain.AddCommand(commands.NewTrendAttach("trend_attach"))

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(ctx)
	chainCtx.Add(commands.BrandConfigParam, brand)
	chainCtx.Add(commands.VideoParam, video)

	logger.InfoContext(ctx, "starting critique pipeline")
	chain.Execute(chainCtx)

	if chainCtx.HasErrors() {
		w.setState(StateFailed)
		err := firstError(chainCtx, "trend_gather", "critique_run", "trend_attach")
		logger.ErrorContext(ctx, "critique pipeline failed", "error", err)
		return nil, err
	}

	result, ok := chainCtx.Get(commands.ResultParam).(*model.CritiqueResult)
	if !ok || result == nil {
		w.setState(StateFailed)
		return nil, &services.CritiqueError{Err: fmt.Errorf("pipeline produced no report")}
	}

	w.setState(StateComplete)
	logger.InfoContext(ctx, "critique pipeline complete", "verdict", result.Verdict)
	return result, nil
}

// firstError returns the recorded error of the earliest-listed command, so
// the caller sees the failure that actually stopped the chain.
func firstError(chainCtx cor.Context, names ...string) error {
	errs := chainCtx.GetErrors()
	for _, name := range names {
		if err, ok := errs[name]; ok {
			return err
		}
	}
	for _, err := range errs {
		return err
	}
	return fmt.Errorf("pipeline failed without a recorded error")
}
