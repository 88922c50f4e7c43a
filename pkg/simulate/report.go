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

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/stats"
)

// Report writes a human readable summary of the simulation to w.
func (result *Result) Report(w io.Writer) {
	p := message.NewPrinter(language.English)

	ms := result.Elapsed.Milliseconds()
	p.Fprintf(w,
		"finished after %d milliseconds or %.2f seconds or %.2f minutes.\n",
		ms, float64(ms)/1000, float64(ms)/1000/60,
	)

	games := result.Games()
	noun := "games"
	if games <= 1 {
		noun = "game"
	}

	p.Fprintf(w, "\nresult of %d %s (%d threads x %d rounds, seed %d) :\n",
		games, noun, result.Config.Threads, result.Config.Rounds, result.Config.Seed)
	p.Fprintf(w, "\t%.3f%% victory for the red token.\n", result.Tally.Percent(board.RedWins))
	p.Fprintf(w, "\t%.3f%% victory for the yellow token.\n", result.Tally.Percent(board.YellowWins))
	p.Fprintf(w, "\t%.3f%% draw.\n", result.Tally.Percent(board.Draw))

	if games == 0 {
		return
	}

	lower, elo, upper := stats.Elo(result.Tally.RedWins, result.Tally.Draws, result.Tally.YellowWins)
	_, balance := stats.Balance(result.Tally.RedWins, result.Tally.YellowWins)

	p.Fprintf(w, "\nred elo over yellow: %+.2f +- %.2f (95%%)\n", elo, stats.ErrorMargin(lower, elo, upper))
	p.Fprintf(w, "chance of an even red/yellow split: p = %.4f\n", balance)
}
