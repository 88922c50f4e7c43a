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

package play

import (
	"errors"
	"fmt"

	"laptudirm.com/x/connect4/pkg/board"
)

// Player picks and plays moves for one side of a game.
type Player interface {
	// Move plays a single move with the given token and returns the
	// column it was played in.
	Move(b *board.Board, token board.Cell) (int, error)
}

// Human is a Player whose moves are typed in. Invalid columns are reported
// through the Renderer and asked for again.
type Human struct {
	Input    Input
	Renderer Renderer
}

func (human *Human) Move(b *board.Board, token board.Cell) (int, error) {
	for {
		human.Renderer.Prompt(token)

		line, err := human.Input.ReadLine()
		if err != nil {
			return -1, err
		}

		col, err := ParseColumn(line)
		if err == nil {
			err = b.Place(token, col)
		}

		switch {
		case err == nil:
			return col, nil
		case errors.Is(err, board.ErrInvalidColumn):
			human.Renderer.Message(fmt.Sprintf("Please enter a column number between 1 and %d.", board.Columns))
		case errors.Is(err, board.ErrColumnFull):
			human.Renderer.Message("The column is full.")
		default:
			return -1, err
		}
	}
}

// Computer is a Player which plays uniformly random legal moves.
type Computer struct {
	Source   board.Source
	Renderer Renderer
}

func (computer *Computer) Move(b *board.Board, token board.Cell) (int, error) {
	col, err := b.RandomMove(token, computer.Source)
	if err != nil {
		return -1, err
	}

	if computer.Renderer != nil {
		computer.Renderer.Message(fmt.Sprintf("The computer plays column %d.", col+1))
	}

	return col, nil
}
