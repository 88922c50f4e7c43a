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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"laptudirm.com/x/connect4/pkg/board"
)

var ErrNoInput = errors.New("play: input closed")

// Input is a source of lines typed by a human player.
type Input interface {
	ReadLine() (string, error)
}

// NewLineInput creates an Input reading newline separated lines from r.
func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{scanner: bufio.NewScanner(r)}
}

type LineInput struct {
	scanner *bufio.Scanner
}

func (input *LineInput) ReadLine() (string, error) {
	if !input.scanner.Scan() {
		if err := input.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		return "", ErrNoInput
	}

	return input.scanner.Text(), nil
}

// ParseColumn converts a column number typed by a player, counted from 1,
// into a board column counted from 0. The number is not range checked;
// board.Place reports columns outside the board. Text which is not a
// number is reported as board.ErrInvalidColumn.
func ParseColumn(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, board.ErrInvalidColumn
	}

	return n - 1, nil
}
