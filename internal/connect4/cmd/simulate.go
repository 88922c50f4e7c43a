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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/internal/util"
	"laptudirm.com/x/connect4/pkg/common"
	"laptudirm.com/x/connect4/pkg/simulate"
)

// connect4 simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate games between two random players",
		Args:  cobra.NoArgs,
		Long: heredoc.Docf(`simulate plays batches of games in which both players
			pick uniformly random legal moves, and reports how often each
			token won and how often the game ended in a draw.

			Every thread plays --rounds games, so the total number of games
			is threads x rounds. The settings are read from the defaults,
			then the config file, then the %sTHREADS, %sROUNDS,
			%sRANDOM_FIRST and %sSEED environment variables and
			finally the flags, each overriding the ones before it.

			The config file is %s unless --config
			is passed. It is a yaml file with the keys threads, rounds,
			random-first and seed.`,
			simulate.EnvPrefix, simulate.EnvPrefix,
			simulate.EnvPrefix, simulate.EnvPrefix,
			common.DefaultConfigPath(common.SimulationConfig),
		),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := simulationConfig(cmd)
			if err != nil {
				return err
			}

			if err := config.Validate(); err != nil {
				return err
			}

			util.StartSpinner(fmt.Sprintf(" simulating %d games", config.Threads*config.Rounds))
			result, err := simulate.Run(config)
			util.PauseSpinner()

			if result != nil {
				result.Report(cmd.OutOrStdout())
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.IntP("threads", "j", 1, "Number of games played concurrently")
	flags.IntP("rounds", "r", 100, "Number of games played by every thread")
	flags.Bool("random-first", false, "Pick the first player of every game at random")
	flags.Uint64("seed", 0, "Seed of the random moves, 0 picks a random seed")
	flags.StringP("config", "c", "", "Path of the yaml config file")

	return cmd
}

// simulationConfig combines the config file, the environment and the
// flags which were passed into a single Config.
func simulationConfig(cmd *cobra.Command) (simulate.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		var found bool
		if path, found = common.ConfigFile(common.SimulationConfig); !found {
			logrus.WithField("path", common.DefaultConfigPath(common.SimulationConfig)).
				Debug("No simulation config file found")
		}
	}

	config, err := simulate.LoadConfig(path)
	if err != nil {
		return simulate.Config{}, err
	}

	if flags.Changed("threads") {
		config.Threads, _ = flags.GetInt("threads")
	}

	if flags.Changed("rounds") {
		config.Rounds, _ = flags.GetInt("rounds")
	}

	if flags.Changed("random-first") {
		config.RandomFirst, _ = flags.GetBool("random-first")
	}

	if flags.Changed("seed") {
		config.Seed, _ = flags.GetUint64("seed")
	}

	return config, nil
}
