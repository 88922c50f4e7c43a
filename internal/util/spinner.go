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

package util

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// SPIN is the spinner.CharSets index used for every spinner.
const SPIN = 31

var working *spinner.Spinner

// IsTerminal checks if the given writer is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// StartSpinner starts the ~working~ spinner on stderr with the given
// suffix. Nothing is shown if stderr is not a terminal.
func StartSpinner(suffix string) {
	if !IsTerminal(os.Stderr) {
		return
	}

	if working == nil {
		working = spinner.New(
			spinner.CharSets[SPIN], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr),
			spinner.WithHiddenCursor(true),
		)
	}

	working.Suffix = suffix
	working.Start()
}

// PauseSpinner stops the ~working~ spinner if it is running.
func PauseSpinner() {
	if working != nil {
		working.Stop()
	}
}
