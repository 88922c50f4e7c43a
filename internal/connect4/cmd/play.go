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
	"math/rand/v2"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/internal/util"
	"laptudirm.com/x/connect4/pkg/play"
)

// connect4 play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game between two humans",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of Connect Four between two players
			sharing the terminal. The player with the red tokens moves
			first, and the players take turns typing the number of the
			column, from 1 to 7, they want to drop their token in.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := terminal(cmd)
			input := play.NewLineInput(os.Stdin)

			game := play.NewGame(
				&play.Human{Input: input, Renderer: renderer},
				&play.Human{Input: input, Renderer: renderer},
				renderer,
			)

			_, err := game.Play()
			return err
		},
	}
}

// connect4 versus
func Versus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versus",
		Short: "Play a game against the computer",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`versus starts a game of Connect Four against the computer.
			The human player has the red tokens and moves first, the
			computer replies with a random legal move after every move.

			Pass --seed to make the computer's moves repeatable.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetUint64("seed")
			if !cmd.Flag("seed").Changed {
				seed = rand.Uint64()
			}

			logrus.WithField("seed", seed).Debug("Seeding the computer")

			renderer := terminal(cmd)
			game := play.NewGame(
				&play.Human{Input: play.NewLineInput(os.Stdin), Renderer: renderer},
				&play.Computer{Source: rand.New(rand.NewPCG(seed, 0)), Renderer: renderer},
				renderer,
			)

			_, err := game.Play()
			return err
		},
	}

	cmd.Flags().Uint64("seed", 0, "Seed of the computer's random moves")
	return cmd
}

// terminal creates a renderer on stdout, coloured unless stdout is not a
// terminal or --no-color was passed.
func terminal(cmd *cobra.Command) *play.Terminal {
	colour := util.IsTerminal(os.Stdout) && !cmd.Flag("no-color").Changed
	if !colour {
		color.NoColor = true
	}

	return play.NewTerminal(os.Stdout, colour)
}
