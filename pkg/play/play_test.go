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
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"laptudirm.com/x/connect4/pkg/board"
)

// recorder is a Renderer which remembers what it was asked to show.
type recorder struct {
	renders  int
	prompts  []board.Cell
	messages []string
	outcome  board.Outcome
}

func (r *recorder) Render(*board.Board, string)  { r.renders++ }
func (r *recorder) Prompt(token board.Cell)      { r.prompts = append(r.prompts, token) }
func (r *recorder) Message(msg string)           { r.messages = append(r.messages, msg) }
func (r *recorder) Result(outcome board.Outcome) { r.outcome = outcome }

func lines(l ...string) Input {
	return NewLineInput(strings.NewReader(strings.Join(l, "\n") + "\n"))
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		line string
		col  int
		err  error
	}{
		{"1", 0, nil},
		{" 7 ", 6, nil},
		{"0", -1, nil},
		{"8", 7, nil},
		{"", -1, board.ErrInvalidColumn},
		{"abc", -1, board.ErrInvalidColumn},
		{"2.5", -1, board.ErrInvalidColumn},
	}

	for _, test := range tests {
		col, err := ParseColumn(test.line)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: got error %v, want %v", test.line, err, test.err)
			continue
		}

		if err == nil && col != test.col {
			t.Errorf("%q: got column %d, want %d", test.line, col, test.col)
		}
	}
}

func TestHumanRetries(t *testing.T) {
	r := &recorder{}
	human := &Human{Input: lines("abc", "0", "8", "-3", "4"), Renderer: r}

	b := board.New()
	col, err := human.Move(b, board.Red)
	if err != nil {
		t.Fatal(err)
	}

	if col != 3 || b.At(board.Rows-1, 3) != board.Red {
		t.Fatalf("played column %d, board %s", col, b)
	}

	if len(r.prompts) != 5 {
		t.Errorf("prompted %d times, want 5", len(r.prompts))
	}

	if len(r.messages) != 4 {
		t.Fatalf("got messages %q, want 4", r.messages)
	}

	for _, msg := range r.messages {
		if msg != "Please enter a column number between 1 and 7." {
			t.Errorf("unexpected message %q", msg)
		}
	}
}

func TestHumanFullColumn(t *testing.T) {
	b, err := board.Parse(
		"R......",
		"Y......",
		"R......",
		"Y......",
		"R......",
		"Y......",
	)
	if err != nil {
		t.Fatal(err)
	}

	r := &recorder{}
	human := &Human{Input: lines("1", "2"), Renderer: r}

	col, err := human.Move(b, board.Red)
	if err != nil {
		t.Fatal(err)
	}

	if col != 1 {
		t.Errorf("played column %d, want 1", col)
	}

	if len(r.messages) != 1 || r.messages[0] != "The column is full." {
		t.Errorf("got messages %q", r.messages)
	}
}

func TestHumanNoInput(t *testing.T) {
	human := &Human{Input: lines("x"), Renderer: &recorder{}}

	if _, err := human.Move(board.New(), board.Yellow); !errors.Is(err, ErrNoInput) {
		t.Fatalf("got %v, want %v", err, ErrNoInput)
	}
}

func TestGameTwoHumans(t *testing.T) {
	r := &recorder{}
	game := NewGame(
		&Human{Input: lines("1", "1", "1", "1"), Renderer: r},
		&Human{Input: lines("2", "2", "2"), Renderer: r},
		r,
	)

	outcome, err := game.Play()
	if err != nil {
		t.Fatal(err)
	}

	if outcome != board.RedWins || r.outcome != board.RedWins {
		t.Fatalf("got %s, shown %s, want %s", outcome, r.outcome, board.RedWins)
	}

	if game.Board.Moves() != 7 {
		t.Errorf("game lasted %d moves, want 7", game.Board.Moves())
	}

	want := []board.Cell{
		board.Red, board.Yellow, board.Red, board.Yellow,
		board.Red, board.Yellow, board.Red,
	}
	if len(r.prompts) != len(want) {
		t.Fatalf("got prompts %v, want %v", r.prompts, want)
	}
	for i := range want {
		if r.prompts[i] != want[i] {
			t.Fatalf("got prompts %v, want %v", r.prompts, want)
		}
	}

	// One render before every move and a final one.
	if r.renders != 8 {
		t.Errorf("rendered %d times, want 8", r.renders)
	}
}

func TestGameAgainstComputer(t *testing.T) {
	// Cycling through every column always reaches one which is not full.
	var script []string
	for i := 0; i < 30; i++ {
		script = append(script, "1", "2", "3", "4", "5", "6", "7")
	}

	for seed := uint64(0); seed < 20; seed++ {
		r := &recorder{}
		game := NewGame(
			&Human{Input: lines(script...), Renderer: r},
			&Computer{Source: rand.New(rand.NewPCG(seed, 1)), Renderer: r},
			r,
		)

		outcome, err := game.Play()
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if outcome == board.Ongoing || outcome != game.Board.Outcome() {
			t.Fatalf("seed %d: game ended with %s, board says %s", seed, outcome, game.Board.Outcome())
		}

		// Red moves first, so red has played as many tokens as yellow or
		// exactly one more.
		var red, yellow int
		for _, row := range game.Board.Grid() {
			for _, cell := range row {
				switch cell {
				case board.Red:
					red++
				case board.Yellow:
					yellow++
				}
			}
		}

		if red != yellow && red != yellow+1 {
			t.Errorf("seed %d: %d red and %d yellow tokens", seed, red, yellow)
		}
	}
}

func TestComputerNilRenderer(t *testing.T) {
	computer := &Computer{Source: rand.New(rand.NewPCG(3, 3))}

	b := board.New()
	col, err := computer.Move(b, board.Yellow)
	if err != nil {
		t.Fatal(err)
	}

	if b.At(board.Rows-1, col) != board.Yellow {
		t.Errorf("computer reported column %d, board %s", col, b)
	}
}

func TestTerminal(t *testing.T) {
	b, err := board.Parse(
		".......",
		".......",
		".......",
		".......",
		".......",
		"RY.....",
	)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	terminal := NewTerminal(&out, false)

	terminal.Render(b, "Current game.")
	terminal.Prompt(board.Red)
	terminal.Result(board.YellowWins)
	terminal.Result(board.Draw)

	text := out.String()
	if strings.Contains(text, "\x1b") {
		t.Errorf("colourless output contains escape sequences:\n%q", text)
	}

	for _, want := range []string{
		"Current game.\n",
		"column :  1   2   3   4   5   6   7 ",
		"  X   O  ",
		"The player with the red token must choose a column number : ",
		"Victory for the player with the yellow tokens !\n",
		"The game ended in a draw.\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}
}

func TestTerminalColour(t *testing.T) {
	var out bytes.Buffer
	NewTerminal(&out, true).Render(board.New(), "Game over.")

	if !strings.HasPrefix(out.String(), "\x1b[1J\x1b[H") {
		t.Errorf("coloured output does not clear the screen: %q", out.String())
	}
}
