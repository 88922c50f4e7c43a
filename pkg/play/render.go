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
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/connect4/pkg/board"
)

// Renderer shows the state of a game to its human players.
type Renderer interface {
	Render(b *board.Board, status string)
	Prompt(token board.Cell)
	Message(msg string)
	Result(outcome board.Outcome)
}

// NewTerminal creates a Renderer which draws the board onto out. If colour
// is false no escape sequences are written at all, which keeps the output
// readable when it is not a terminal.
func NewTerminal(out io.Writer, colour bool) *Terminal {
	terminal := Terminal{
		out:   out,
		clear: colour,

		frame:  color.New(color.BgBlue),
		header: color.New(color.BgCyan, color.FgHiYellow, color.Bold),
		cells: [...]*color.Color{
			board.Empty:  color.New(color.BgWhite, color.FgWhite),
			board.Red:    color.New(color.BgRed, color.FgHiWhite),
			board.Yellow: color.New(color.BgHiYellow, color.FgBlack),
		},
		tokens: [...]*color.Color{
			board.Empty:  color.New(color.Reset),
			board.Red:    color.New(color.FgRed),
			board.Yellow: color.New(color.FgHiYellow),
		},
	}

	for _, c := range terminal.all() {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &terminal
}

// Terminal is a Renderer for ANSI terminals.
type Terminal struct {
	out   io.Writer
	clear bool

	frame, header *color.Color
	cells, tokens [3]*color.Color
}

func (terminal *Terminal) all() []*color.Color {
	all := []*color.Color{terminal.frame, terminal.header}
	all = append(all, terminal.cells[:]...)
	return append(all, terminal.tokens[:]...)
}

// symbols are drawn inside the cells so that the board can be read without
// colours too.
var symbols = [...]string{
	board.Empty:  "   ",
	board.Red:    " X ",
	board.Yellow: " O ",
}

func (terminal *Terminal) Render(b *board.Board, status string) {
	var out strings.Builder

	if terminal.clear {
		// Clear everything above the cursor and move it to the top-left.
		out.WriteString("\x1b[1J\x1b[H")
	}

	out.WriteString(status + "\n")

	width := board.Columns*4 + 1
	border := "\t" + terminal.frame.Sprint(strings.Repeat(" ", width)) + "\n"

	// First row to display column numbers
	out.WriteString("\n" + border)
	out.WriteString("column :" + terminal.frame.Sprint(" "))
	for col := 1; col <= board.Columns; col++ {
		out.WriteString(terminal.header.Sprintf(" %d ", col) + terminal.frame.Sprint(" "))
	}
	out.WriteString("\n" + border)

	// The body of the board, top row first
	for _, row := range b.Grid() {
		out.WriteString("\t" + terminal.frame.Sprint(" "))
		for _, cell := range row {
			out.WriteString(terminal.cells[cell].Sprint(symbols[cell]) + terminal.frame.Sprint(" "))
		}
		out.WriteString("\n" + border)
	}

	fmt.Fprint(terminal.out, out.String())
}

func (terminal *Terminal) Prompt(token board.Cell) {
	fmt.Fprintf(terminal.out,
		"The player with the %s must choose a column number : ",
		terminal.tokens[token].Sprintf("%s token", token),
	)
}

func (terminal *Terminal) Message(msg string) {
	fmt.Fprintln(terminal.out, msg)
}

func (terminal *Terminal) Result(outcome board.Outcome) {
	switch outcome {
	case board.RedWins:
		fmt.Fprintf(terminal.out, "Victory for the player with the %s !\n", terminal.tokens[board.Red].Sprint("red tokens"))
	case board.YellowWins:
		fmt.Fprintf(terminal.out, "Victory for the player with the %s !\n", terminal.tokens[board.Yellow].Sprint("yellow tokens"))
	case board.Draw:
		fmt.Fprintln(terminal.out, "The game ended in a draw.")
	}
}
