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

import "laptudirm.com/x/connect4/pkg/board"

// Tally counts the outcomes of a batch of finished games.
type Tally struct {
	RedWins    int `yaml:"red-wins"`
	YellowWins int `yaml:"yellow-wins"`
	Draws      int `yaml:"draws"`
}

// Add records the given outcome. Ongoing games are not counted.
func (tally *Tally) Add(outcome board.Outcome) {
	switch outcome {
	case board.RedWins:
		tally.RedWins++
	case board.YellowWins:
		tally.YellowWins++
	case board.Draw:
		tally.Draws++
	}
}

// Merge adds the counts of another tally to this one.
func (tally *Tally) Merge(other Tally) {
	tally.RedWins += other.RedWins
	tally.YellowWins += other.YellowWins
	tally.Draws += other.Draws
}

// Total returns the number of games recorded in the tally.
func (tally Tally) Total() int {
	return tally.RedWins + tally.YellowWins + tally.Draws
}

// Count returns the number of games with the given outcome.
func (tally Tally) Count(outcome board.Outcome) int {
	switch outcome {
	case board.RedWins:
		return tally.RedWins
	case board.YellowWins:
		return tally.YellowWins
	case board.Draw:
		return tally.Draws
	default:
		return 0
	}
}

// Percent returns the share of games with the given outcome, in percent.
func (tally Tally) Percent(outcome board.Outcome) float64 {
	total := tally.Total()
	if total == 0 {
		return 0
	}

	return float64(tally.Count(outcome)) / float64(total) * 100
}

// Slice returns the counts in the order red wins, yellow wins, draws.
func (tally Tally) Slice() []int {
	return []int{tally.RedWins, tally.YellowWins, tally.Draws}
}
