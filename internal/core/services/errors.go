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

// This file defines the error taxonomy for the inference stages. Every
// stage error aborts the pipeline immediately and is surfaced verbatim to
// the caller; there is no automatic retry above the transport wrapper and
// no partial-result fallback.
package services

import "fmt"

// TransportError is a generic upstream failure from the inference service
// that is not otherwise classified: connection failures, quota rejections,
// or an exhausted retry budget.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("inference transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IntelligenceError reports a failure in the market-research stage, either
// in transport or while coercing the grounded free-text answer into a typed
// result.
type IntelligenceError struct {
	Err error
}

func (e *IntelligenceError) Error() string {
	return fmt.Sprintf("trend intelligence stage: %v", e.Err)
}

func (e *IntelligenceError) Unwrap() error { return e.Err }

// CritiqueError reports a failure in the critique stage: transport failure,
// an empty response, or output that does not parse despite the schema
// constraint.
type CritiqueError struct {
	Err error
}

func (e *CritiqueError) Error() string {
	return fmt.Sprintf("critique stage: %v", e.Err)
}

func (e *CritiqueError) Unwrap() error { return e.Err }
