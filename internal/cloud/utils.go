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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	ConfigFileBaseName  = ".env"
	ConfigFileExtension = ".toml"
	// EnvConfigFilePrefix names the env var holding the directory that
	// contains the config files (no trailing separator).
	EnvConfigFilePrefix = "GCP_CONFIG_PREFIX"
	// EnvConfigRuntime names the env var selecting the runtime overlay
	// file, e.g. "prod" loads ".env.prod.toml" on top of ".env.toml".
	EnvConfigRuntime = "GCP_RUNTIME"
	DefaultRuntime   = "test"

	// MaxGenerateRetries bounds how often a rate-limited generation call
	// is retried before the error is returned to the caller.
	MaxGenerateRetries = 3
)

func fileExists(fileName string) bool {
	info, err := os.Stat(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}

// LoadConfig populates config hierarchically: the base ".env.toml" first,
// then the runtime overlay ".env.<runtime>.toml" on top, so overlays only
// need to define the values they change. Both files are resolved relative
// to the directory in GCP_CONFIG_PREFIX; the runtime defaults to "test"
// when GCP_RUNTIME is unset.
//
// Inputs:
//   - config: the destination struct, typically from NewConfig.
//
// Outputs:
//   - An error if neither file exists or either fails to decode.
func LoadConfig(config *Config) error {
	prefix := os.Getenv(EnvConfigFilePrefix)
	if prefix != "" && !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	runtime := os.Getenv(EnvConfigRuntime)
	if runtime == "" {
		runtime = DefaultRuntime
	}

	baseFile := fmt.Sprintf("%s%s%s", prefix, ConfigFileBaseName, ConfigFileExtension)
	runtimeFile := fmt.Sprintf("%s%s.%s%s", prefix, ConfigFileBaseName, runtime, ConfigFileExtension)

	loaded := 0
	for _, fileName := range []string{baseFile, runtimeFile} {
		if !fileExists(fileName) {
			continue
		}
		if _, err := toml.DecodeFile(fileName, config); err != nil {
			return fmt.Errorf("failed to decode config file %s: %w", fileName, err)
		}
		slog.Debug("loaded config file", "file", fileName)
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("no config files found for prefix %q and runtime %q", prefix, runtime)
	}
	return nil
}
