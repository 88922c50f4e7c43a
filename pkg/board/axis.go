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

// Square is the (row, column) coordinate of a cell. Row 0 is the top row.
type Square struct {
	Row, Col int
}

// Window is a run of Connect consecutive squares along a single axis.
type Window [Connect]Square

// Axis is a line direction, as a (row, column) step between neighbours.
type Axis struct {
	DRow, DCol int
}

// Axes are the four directions along which a line can be completed.
var Axes = [4]Axis{
	{0, +1},  // horizontal
	{+1, 0},  // vertical
	{+1, +1}, // diagonal, top-left to bottom-right
	{+1, -1}, // diagonal, top-right to bottom-left
}

// Windows returns every window along the given axis that lies completely
// inside a rows x cols grid, with start squares in row-major order. A
// window starting at (r, c) covers (r+i*DRow, c+i*DCol) for i in
// [0, Connect).
func Windows(axis Axis, rows, cols int) []Window {
	var windows []Window
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			endRow := r + (Connect-1)*axis.DRow
			endCol := c + (Connect-1)*axis.DCol

			if endRow < 0 || endRow >= rows || endCol < 0 || endCol >= cols {
				continue
			}

			var window Window
			for i := range window {
				window[i] = Square{r + i*axis.DRow, c + i*axis.DCol}
			}

			windows = append(windows, window)
		}
	}

	return windows
}

// lines holds the windows of every axis of the board, in the order of Axes.
// It is built once and only ever read.
var lines = func() (lines [len(Axes)][]Window) {
	for i, axis := range Axes {
		lines[i] = Windows(axis, Rows, Columns)
	}

	return lines
}()
