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

// Package board implements the rules of Connect Four on a 6x7 grid: token
// placement with gravity, four-in-a-row detection and fill detection.
package board

import "errors"

const (
	Rows    = 6 // number of rows, row 0 is the top row
	Columns = 7 // number of columns, column 0 is the leftmost one
	Connect = 4 // length of a winning line
)

var (
	ErrInvalidColumn = errors.New("board: invalid column")
	ErrColumnFull    = errors.New("board: column full")
	ErrBoardFull     = errors.New("board: board full")
	ErrInvalidToken  = errors.New("board: invalid token")
)

// Source is a source of uniformly distributed random integers, such as a
// *rand.Rand from math/rand/v2.
type Source interface {
	// IntN returns a random integer in [0, n).
	IntN(n int) int
}

// Board is a Connect Four board. A Board is not safe for concurrent use;
// a single game loop owns it for the length of a game.
type Board struct {
	grid [Rows][Columns]Cell

	// droppable is a multiset of column indexes with one entry per empty
	// square of that column. Picking a uniformly random entry from it
	// picks a random legal move weighted by the free space of a column.
	droppable []int
}

// New returns a new empty Board.
func New() *Board {
	var board Board
	board.droppable = make([]int, 0, Rows*Columns)
	for col := 0; col < Columns; col++ {
		for i := 0; i < Rows; i++ {
			board.droppable = append(board.droppable, col)
		}
	}

	return &board
}

// At returns the Cell at the given row and column. It panics if the
// square lies outside the board, like an out of range slice index.
func (board *Board) At(row, col int) Cell {
	return board.grid[row][col]
}

// Grid returns a copy of the board's cells in row-major order.
func (board *Board) Grid() [Rows][Columns]Cell {
	return board.grid
}

// Droppable returns the number of tokens that can still be dropped.
func (board *Board) Droppable() int {
	return len(board.droppable)
}

// Moves returns the number of tokens on the board.
func (board *Board) Moves() int {
	moves := 0
	for _, row := range board.grid {
		for _, cell := range row {
			if cell != Empty {
				moves++
			}
		}
	}

	return moves
}

// IsFull checks if there are no empty cells left on the board. A full board
// is only a draw if neither player has completed a line.
func (board *Board) IsFull() bool {
	for _, row := range board.grid {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Place drops the given token into the given column, where it comes to rest
// on the lowest empty square. The board is left untouched if an error is
// returned.
func (board *Board) Place(token Cell, col int) error {
	switch {
	case col < 0 || col >= Columns:
		return ErrInvalidColumn
	case token != Red && token != Yellow:
		return ErrInvalidToken
	case board.grid[0][col] != Empty:
		return ErrColumnFull
	}

	// The top square is empty, so the scan always finds a square.
	for row := Rows - 1; row >= 0; row-- {
		if board.grid[row][col] == Empty {
			board.grid[row][col] = token
			board.take(col)
			return nil
		}
	}

	return ErrColumnFull
}

// RandomMove drops the given token into a random column which still has
// space left, and returns that column. Columns are weighted by the number
// of empty squares in them.
func (board *Board) RandomMove(token Cell, rng Source) (int, error) {
	if len(board.droppable) == 0 {
		return -1, ErrBoardFull
	}

	col := board.droppable[rng.IntN(len(board.droppable))]
	if err := board.Place(token, col); err != nil {
		return -1, err
	}

	return col, nil
}

// take removes a single entry for the given column from the droppable
// multiset. The order of the entries does not matter.
func (board *Board) take(col int) {
	last := len(board.droppable) - 1
	for i, entry := range board.droppable {
		if entry == col {
			board.droppable[i] = board.droppable[last]
			board.droppable = board.droppable[:last]
			return
		}
	}
}

// Winner returns the token which has completed a line of four, or Empty if
// there is no such token. Red is checked first; within a token, axes are
// checked in the order of Axes and windows in row-major order.
func (board *Board) Winner() Cell {
	for _, token := range Tokens {
		for _, windows := range lines {
			for _, window := range windows {
				if board.completes(window, token) {
					return token
				}
			}
		}
	}

	return Empty
}

// completes checks if every square of the window holds the given token.
func (board *Board) completes(window Window, token Cell) bool {
	for _, sq := range window {
		if board.grid[sq.Row][sq.Col] != token {
			return false
		}
	}

	return true
}

// Outcome returns the current state of the game played on the board.
func (board *Board) Outcome() Outcome {
	if winner := board.Winner(); winner != Empty {
		return WonBy[winner]
	}

	if board.IsFull() {
		return Draw
	}

	return Ongoing
}
