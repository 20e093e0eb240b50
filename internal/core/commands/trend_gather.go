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

// This file defines the first command of the critique pipeline. It runs the
// web-grounded market-research stage for the brand under evaluation and
// places the typed result in the context for the critique command. A
// failure here stops the chain before the critique call ever starts.
package commands

import (
	"github.com/Henry1228081dev/brand-biz/internal/core/cor"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
)

// TrendGather is the command wrapper around the intelligence stage.
type TrendGather struct {
	cor.BaseCommand
	service *services.IntelligenceService
	onStart func()
}

// NewTrendGather constructs the command. onStart, when non-nil, is invoked
// as the command begins so the caller can surface per-stage progress.
func NewTrendGather(name string, service *services.IntelligenceService, onStart func()) *TrendGather {
	out := &TrendGather{
		BaseCommand: *cor.NewBaseCommand(name),
		service:     service,
		onStart:     onStart,
	}
	out.InputParamName = BrandConfigParam
	out.OutputParamName = TrendParam
	return out
}

// Execute runs the research stage for the brand configuration stored in
// the context.
func (t *TrendGather) Execute(context cor.Context) {
	if t.onStart != nil {
		t.onStart()
	}

	brand := context.Get(t.GetInputParam()).(model.BrandConfig)

	trend, err := t.service.Gather(context.GetContext(), brand.Industry, brand.Name, brand.Platform)
	if err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), err)
		return
	}

	t.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(t.GetOutputParam(), trend)
	context.Add(cor.CtxOut, trend)
}
