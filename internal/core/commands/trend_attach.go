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

// This file defines the final command of the critique pipeline: the merge
// step. The critique model receives the trend intelligence only as prompt
// text, so the report it returns does not carry the researched data
// structure. This command writes the stage-one value onto the report —
// the same value, not a copy, exactly once.
package commands

import (
	"github.com/Henry1228081dev/brand-biz/internal/core/cor"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
)

// TrendAttach sets the final report's trend_intelligence field from the
// research stage's output.
type TrendAttach struct {
	cor.BaseCommand
}

// NewTrendAttach constructs the merge command. Its primary input is the
// critique result piped in by the chain.
func NewTrendAttach(name string) *TrendAttach {
	out := &TrendAttach{BaseCommand: *cor.NewBaseCommand(name)}
	out.OutputParamName = ResultParam
	return out
}

// Execute attaches the trend intelligence to the critique result.
func (t *TrendAttach) Execute(context cor.Context) {
	result := context.Get(t.GetInputParam()).(*model.CritiqueResult)
	trend := context.Get(TrendParam).(*model.TrendIntelligence)

	result.TrendIntelligence = trend

	t.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(t.GetOutputParam(), result)
	context.Add(cor.CtxOut, result)
}
