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

package board

import (
	"fmt"
	"strings"
)

// Parse builds a Board from its text representation: Rows strings of
// Columns characters each, top row first. '.' is an empty square, 'R' or
// 'X' a red token and 'Y' or 'O' a yellow token. The board has to satisfy
// gravity: no token may float above an empty square.
func Parse(rows ...string) (*Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("parse board: expected %d rows, got %d", Rows, len(rows))
	}

	var board Board
	for r, row := range rows {
		if len(row) != Columns {
			return nil, fmt.Errorf("parse board: row %d: expected %d squares, got %d", r, Columns, len(row))
		}

		for c := 0; c < Columns; c++ {
			switch row[c] {
			case '.':
				board.grid[r][c] = Empty
			case 'R', 'r', 'X', 'x':
				board.grid[r][c] = Red
			case 'Y', 'y', 'O', 'o':
				board.grid[r][c] = Yellow
			default:
				return nil, fmt.Errorf("parse board: row %d: invalid square %q", r, row[c])
			}
		}
	}

	for c := 0; c < Columns; c++ {
		free := 0
		for r := 0; r < Rows; r++ {
			if board.grid[r][c] != Empty {
				continue
			}

			if r != free {
				return nil, fmt.Errorf("parse board: column %d: floating token above row %d", c, r)
			}

			free++
			board.droppable = append(board.droppable, c)
		}
	}

	return &board, nil
}

// String returns the text representation of the board which is accepted
// by Parse, with rows separated by '/'.
func (board *Board) String() string {
	rows := make([]string, Rows)
	for r, row := range board.grid {
		var b strings.Builder
		for _, cell := range row {
			switch cell {
			case Red:
				b.WriteByte('R')
			case Yellow:
				b.WriteByte('Y')
			default:
				b.WriteByte('.')
			}
		}

		rows[r] = b.String()
	}

	return strings.Join(rows, "/")
}
