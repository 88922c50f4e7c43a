// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simulate

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("simulate: invalid config")

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "CONNECT4_"

type Config struct {
	// Number of workers playing games concurrently.
	Threads int `yaml:"threads" env:"THREADS"`

	// Number of games played by every worker.
	Rounds int `yaml:"rounds" env:"ROUNDS"`

	// Pick the first player of every game at random instead of Red.
	RandomFirst bool `yaml:"random-first" env:"RANDOM_FIRST"`

	// Seed of the random sources, 0 picks a random seed.
	Seed uint64 `yaml:"seed" env:"SEED"`
}

// DefaultConfig returns the config used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Threads: 1,
		Rounds:  100,
	}
}

// Validate checks that the config describes a runnable simulation.
func (config Config) Validate() error {
	switch {
	case config.Threads < 1:
		return fmt.Errorf("%w: threads must be at least 1, got %d", ErrInvalidConfig, config.Threads)
	case config.Rounds < 0:
		return fmt.Errorf("%w: rounds must not be negative, got %d", ErrInvalidConfig, config.Rounds)
	}

	return nil
}

// LoadConfig builds a Config from the defaults, the yaml file at the given
// path if it is not empty, and then the CONNECT4_* environment variables,
// each overriding the previous one.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		logrus.WithField("path", path).Debug("Reading simulation config")

		file, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return config, nil
}
