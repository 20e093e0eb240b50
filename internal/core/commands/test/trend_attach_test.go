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

// Package commands_test tests the critique pipeline commands in isolation
// against a chain context.
package commands_test

import (
	"context"
	"testing"

	"github.com/Henry1228081dev/brand-biz/internal/core/commands"
	"github.com/Henry1228081dev/brand-biz/internal/core/cor"
	"github.com/Henry1228081dev/brand-biz/internal/core/model"
	"github.com/stretchr/testify/assert"
)

// TestTrendAttachSharesPointer verifies the merge step writes the research
// stage's value itself onto the report, not a copy, and leaves the rest of
// the report untouched.
func TestTrendAttachSharesPointer(t *testing.T) {
	trend := &model.TrendIntelligence{TrendingTopics: []string{"value menus are back"}}
	result := &model.CritiqueResult{Verdict: model.VerdictDeploy}

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(commands.TrendParam, trend)
	chainCtx.Add(cor.CtxIn, result)

	command := commands.NewTrendAttach("trend_attach")
	assert.True(t, command.IsExecutable(chainCtx))
	command.Execute(chainCtx)

	assert.False(t, chainCtx.HasErrors())
	assert.Same(t, trend, result.TrendIntelligence)
	assert.Equal(t, model.VerdictDeploy, result.Verdict)

	attached, ok := chainCtx.Get(commands.ResultParam).(*model.CritiqueResult)
	assert.True(t, ok)
	assert.Same(t, result, attached)
}
