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

// Package play drives interactive games between humans and the computer.
package play

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/pkg/board"
)

// NewGame creates a game on an empty board between the given players.
// Red always moves first.
func NewGame(red, yellow Player, renderer Renderer) *Game {
	return &Game{
		Board:    board.New(),
		Players:  [2]Player{red, yellow},
		Renderer: renderer,
	}
}

type Game struct {
	Board *board.Board

	// Players to move with the red and the yellow tokens, respectively.
	Players [2]Player

	Renderer Renderer
}

// player returns the Player who moves with the given token.
func (game *Game) player(token board.Cell) Player {
	if token == board.Yellow {
		return game.Players[1]
	}

	return game.Players[0]
}

// Play alternates moves between the players until the game is over and
// returns its outcome. An error from a player aborts the game.
func (game *Game) Play() (board.Outcome, error) {
	token := board.Red
	for game.Board.Outcome() == board.Ongoing {
		game.Renderer.Render(game.Board, "Current game.")

		col, err := game.player(token).Move(game.Board, token)
		if err != nil {
			return board.Ongoing, err
		}

		logrus.WithFields(logrus.Fields{
			"token":  token,
			"column": col,
			"board":  game.Board,
		}).Trace("Move played")

		token = token.Other()
	}

	outcome := game.Board.Outcome()

	game.Renderer.Render(game.Board, "Game over.")
	game.Renderer.Result(outcome)

	return outcome, nil
}
