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

// Package cor_test tests the chain-of-responsibility framework: value
// piping between commands, stop-on-error semantics, and the
// continue-on-failure override.
package cor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Henry1228081dev/brand-biz/internal/core/cor"
	"github.com/stretchr/testify/assert"
)

// appendCommand appends its suffix to the string piped through the chain.
type appendCommand struct {
	cor.BaseCommand
	suffix string
}

func newAppendCommand(name, suffix string) *appendCommand {
	return &appendCommand{BaseCommand: *cor.NewBaseCommand(name), suffix: suffix}
}

func (c *appendCommand) Execute(chainCtx cor.Context) {
	in := chainCtx.Get(c.GetInputParam()).(string)
	chainCtx.Add(c.GetOutputParam(), in+c.suffix)
}

// failingCommand records an error and produces no output.
type failingCommand struct {
	cor.BaseCommand
	executed bool
}

func newFailingCommand(name string) *failingCommand {
	return &failingCommand{BaseCommand: *cor.NewBaseCommand(name)}
}

func (c *failingCommand) Execute(chainCtx cor.Context) {
	c.executed = true
	chainCtx.AddError(c.GetName(), errors.New("boom"))
}

func (c *failingCommand) IsExecutable(_ cor.Context) bool { return true }

// TestChainPipesOutputs verifies each command's output becomes the next
// command's input.
func TestChainPipesOutputs(t *testing.T) {
	chain := cor.NewBaseChain("append_chain")
	chain.AddCommand(newAppendCommand("first", "-a"))
	chain.AddCommand(newAppendCommand("second", "-b"))

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, "start")

	chain.Execute(chainCtx)

	assert.False(t, chainCtx.HasErrors())
	assert.Equal(t, "start-a-b", chainCtx.Get(cor.CtxIn))
}

// TestChainStopsOnError verifies the default behavior: once a command
// records an error, later commands do not run.
func TestChainStopsOnError(t *testing.T) {
	failing := newFailingCommand("failing")
	tail := newFailingCommand("tail")

	chain := cor.NewBaseChain("failing_chain")
	chain.AddCommand(failing)
	chain.AddCommand(tail)

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())

	chain.Execute(chainCtx)

	assert.True(t, chainCtx.HasErrors())
	assert.True(t, failing.executed)
	assert.False(t, tail.executed)
	assert.Contains(t, chainCtx.GetErrors(), "failing")
}

// TestChainContinueOnFailure verifies the override: with
// ContinueOnFailure(true) the chain runs every command regardless.
func TestChainContinueOnFailure(t *testing.T) {
	failing := newFailingCommand("failing")
	tail := newFailingCommand("tail")

	chain := cor.NewBaseChain("tolerant_chain")
	chain.ContinueOnFailure(true)
	chain.AddCommand(failing)
	chain.AddCommand(tail)

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())

	chain.Execute(chainCtx)

	assert.True(t, failing.executed)
	assert.True(t, tail.executed)
	assert.Len(t, chainCtx.GetErrors(), 2)
}

// TestCommandParamDefaults verifies a bare command reads from CtxIn and
// writes to CtxOut unless configured otherwise.
func TestCommandParamDefaults(t *testing.T) {
	command := cor.NewBaseCommand("bare")
	assert.Equal(t, cor.CtxIn, command.GetInputParam())
	assert.Equal(t, cor.CtxOut, command.GetOutputParam())

	command.InputParamName = "custom_in"
	command.OutputParamName = "custom_out"
	assert.Equal(t, "custom_in", command.GetInputParam())
	assert.Equal(t, "custom_out", command.GetOutputParam())
}
