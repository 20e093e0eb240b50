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

package main

import (
	"context"
	"log"
	"os"

	"github.com/Henry1228081dev/brand-biz/internal/cloud"
	"github.com/Henry1228081dev/brand-biz/internal/core/services"
	"github.com/Henry1228081dev/brand-biz/internal/core/workflow"
)

// StateManager holds the shared components for the application.
type StateManager struct {
	config           *cloud.Config
	cloud            *cloud.ServiceClients
	critiqueWorkflow *workflow.CritiqueWorkflow
	analysisService  *services.AnalysisService
}

var state = &StateManager{}

func SetupOS() (err error) {
	err = os.Setenv(cloud.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	err = os.Setenv(cloud.EnvConfigRuntime, "local")
	return err
}

func GetConfig() *cloud.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup os: %v\n", err)
		}
		config := cloud.NewConfig()
		if err := cloud.LoadConfig(config); err != nil {
			log.Fatalf("failed to load config: %v\n", err)
		}
		state.config = config
	}
	return state.config
}

// InitState builds the shared clients, the critique workflow, and the
// single-stage analysis service from the configured agent models.
func InitState(ctx context.Context) {
	config := GetConfig()

	cloudClients, err := cloud.NewCloudServiceClients(ctx, config)
	if err != nil {
		panic(err)
	}
	state.cloud = cloudClients

	critiqueWorkflow, err := workflow.NewCritiqueWorkflow(config, cloudClients)
	if err != nil {
		panic(err)
	}
	state.critiqueWorkflow = critiqueWorkflow

	flash, err := cloudClients.GetAgentModel("flash")
	if err != nil {
		panic(err)
	}
	pro, err := cloudClients.GetAgentModel("pro")
	if err != nil {
		panic(err)
	}
	grounded, err := cloudClients.GetAgentModel(workflow.ResearchAgentName)
	if err != nil {
		panic(err)
	}
	reasoning, err := cloudClients.GetAgentModel("reasoning")
	if err != nil {
		panic(err)
	}
	state.analysisService = &services.AnalysisService{
		Flash:     flash,
		Pro:       pro,
		Grounded:  grounded,
		Reasoning: reasoning,
	}
}
