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

// Package cor (Chain of Responsibility) provides the building blocks for
// running a workflow as an ordered sequence of commands. A shared Context
// carries data and errors between commands; a Chain sequences commands,
// pipes each command's output to the next one's input, and stops at the
// first recorded error unless configured otherwise. Every command carries
// OpenTelemetry instrumentation so each step of a pipeline shows up as its
// own span with success/error counters.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CtxIn and CtxOut are the keys the chain uses to pipe the primary data
// flow: after each command runs, the value stored under CtxOut becomes the
// value under CtxIn for the next command.
const (
	CtxIn  = "__IN__"
	CtxOut = "__OUT__"
)

// Context is the shared state for one workflow execution. It acts as a
// property bag carrying data, errors, and the request-scoped Go context
// between commands.
type Context interface {
	// SetContext sets the Go context, which carries cancellation and the
	// active trace span.
	SetContext(ctx context.Context)

	// GetContext returns the current Go context.
	GetContext() context.Context

	// Add stores a key-value pair, returning the Context for chaining.
	Add(key string, value interface{}) Context

	// Get retrieves a stored value, or nil when absent.
	Get(key string) interface{}

	// Remove deletes a stored value.
	Remove(key string)

	// AddError records a command failure under the command's name.
	AddError(key string, err error)

	// GetErrors returns all recorded errors keyed by command name.
	GetErrors() map[string]error

	// HasErrors reports whether any command has failed.
	HasErrors() bool
}

// Executable is anything with core execution logic that reads its inputs
// from, and writes its outputs to, a shared Context.
type Executable interface {
	Execute(context Context)
}

// Command is an atomic, individually traceable unit of work within a chain.
type Command interface {
	Executable

	// GetName returns the command's unique name for logging and telemetry.
	GetName() string

	// GetInputParam returns the context key for the command's primary input.
	GetInputParam() string

	// GetOutputParam returns the context key for the command's primary output.
	GetOutputParam() string

	// IsExecutable reports whether the command's preconditions hold for the
	// current context state.
	IsExecutable(context Context) bool

	// GetTracer returns the command's OpenTelemetry tracer.
	GetTracer() trace.Tracer

	// GetMeter returns the command's OpenTelemetry meter.
	GetMeter() metric.Meter

	// GetSuccessCounter returns the counter incremented on success.
	GetSuccessCounter() metric.Int64Counter

	// GetErrorCounter returns the counter incremented on failure.
	GetErrorCounter() metric.Int64Counter
}

// Chain is a sequence of commands. A Chain is itself a Command, so chains
// can nest.
type Chain interface {
	Command

	// ContinueOnFailure configures whether later commands still run after an
	// earlier one has recorded an error. The default is to stop.
	ContinueOnFailure(bool) Chain

	// AddCommand appends a command to the execution sequence.
	AddCommand(command Command) Chain
}
