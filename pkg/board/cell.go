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

// Cell represents the contents of a single square of the board. The two
// non-empty values double as the players' tokens.
type Cell uint8

const (
	Empty Cell = iota
	Red
	Yellow
)

// Tokens lists the two playable tokens in scan order.
var Tokens = [2]Cell{Red, Yellow}

// Other returns the opponent's token. Empty has no opponent.
func (cell Cell) Other() Cell {
	switch cell {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// String returns a string representation of the given Cell.
func (cell Cell) String() string {
	switch cell {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "?"
	}
}

// Outcome represents the state of a game as derived from its board.
type Outcome uint8

const (
	Ongoing Outcome = iota
	RedWins
	YellowWins
	Draw
)

// WonBy maps a winning token to the game's Outcome.
var WonBy = [...]Outcome{
	Empty:  Ongoing,
	Red:    RedWins,
	Yellow: YellowWins,
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Ongoing:
		return "ongoing"
	case RedWins:
		return "red wins"
	case YellowWins:
		return "yellow wins"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}
