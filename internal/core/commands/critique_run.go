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

// This file defines the second command of the critique pipeline. It takes
// the trend intelligence piped in from the research command, serializes it
// into the critique prompt together with the brand configuration, and runs
// the schema-constrained multimodal critique call against the video.
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/Henry1228081dev/brand-biz/internal/core/cor"
	"github.com/Henry1228081dev/brand-biz/internal/core/media"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
)

// CritiqueRun is the command wrapper around the critique stage.
type CritiqueRun struct {
	cor.BaseCommand
	service *services.CritiqueService
	onStart func()
}

// NewCritiqueRun constructs the command. Its primary input is the trend
// intelligence piped in by the chain; the video and brand configuration are
// read from their named context parameters.
func NewCritiqueRun(name string, service *services.CritiqueService, onStart func()) *CritiqueRun {
	out := &CritiqueRun{
		BaseCommand: *cor.NewBaseCommand(name),
		service:     service,
		onStart:     onStart,
	}
	out.OutputParamName = ResultParam
	return out
}

// Execute serializes the market context and runs the critique call.
func (t *CritiqueRun) Execute(context cor.Context) {
	if t.onStart != nil {
		t.onStart()
	}

	trend := context.Get(t.GetInputParam()).(*model.TrendIntelligence)
	brand := context.Get(BrandConfigParam).(model.BrandConfig)
	video := context.Get(VideoParam).(media.Blob)

	trendJSON, err := json.MarshalIndent(trend, "", "  ")
	if err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), &services.CritiqueError{Err: fmt.Errorf("failed to serialize trend intelligence: %w", err)})
		return
	}

	result, err := t.service.Critique(context.GetContext(), video, brand.PromptText(), string(trendJSON))
	if err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), err)
		return
	}

	t.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(t.GetOutputParam(), result)
	context.Add(cor.CtxOut, result)
}
