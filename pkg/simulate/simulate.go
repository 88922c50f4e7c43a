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

// Package simulate plays large batches of games between two players who
// both pick uniformly random legal moves, spread over concurrent workers.
package simulate

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/connect4/pkg/board"
)

// PlayGame plays a single game of random moves to completion and returns
// its outcome. Red moves first unless randomFirst is set, in which case the
// first player is picked at random.
func PlayGame(rng board.Source, randomFirst bool) board.Outcome {
	game := board.New()

	token := board.Red
	if randomFirst {
		token = board.Tokens[rng.IntN(len(board.Tokens))]
	}

	for {
		if outcome := game.Outcome(); outcome != board.Ongoing {
			return outcome
		}

		// An ongoing game always has space left.
		if _, err := game.RandomMove(token, rng); err != nil {
			return game.Outcome()
		}

		token = token.Other()
	}
}

// NewSimulation creates a new Simulation from the given config.
func NewSimulation(config Config) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var sim Simulation
	sim.Config = config
	if sim.Config.Seed == 0 {
		sim.Config.Seed = rand.Uint64()
	}

	sim.play = PlayGame

	// Every worker reports exactly once, so the handoff never blocks.
	sim.results = make(chan Tally, config.Threads)

	return &sim, nil
}

// Simulation is a single batch of random games. Workers never share any
// state: each one owns its random source and its boards, and hands a
// finished Tally over to the result handler, which is the only writer of
// the combined Tally.
type Simulation struct {
	Config Config

	play    func(board.Source, bool) board.Outcome
	results chan Tally

	Tally Tally
}

// Result is the outcome of a finished Simulation.
type Result struct {
	Config Config

	Tally   Tally
	Elapsed time.Duration
}

// Games returns the number of games that were played.
func (result *Result) Games() int {
	return result.Tally.Total()
}

// Run creates and starts a Simulation with the given config.
func Run(config Config) (*Result, error) {
	sim, err := NewSimulation(config)
	if err != nil {
		return nil, err
	}

	return sim.Start()
}

// Start runs every worker of the Simulation and waits for all of them to
// finish. A worker which panics is reported as an error after the others
// have finished, and its games are left out of the Tally.
func (sim *Simulation) Start() (*Result, error) {
	logrus.WithFields(logrus.Fields{
		"threads":      sim.Config.Threads,
		"rounds":       sim.Config.Rounds,
		"random-first": sim.Config.RandomFirst,
		"seed":         sim.Config.Seed,
	}).Debug("Starting simulation")

	start := time.Now()

	var workers errgroup.Group
	for worker := 0; worker < sim.Config.Threads; worker++ {
		workers.Go(func() error {
			return sim.Thread(worker)
		})
	}

	errs := make(chan error, 1)
	go func() {
		errs <- workers.Wait()
		close(sim.results)
	}()

	sim.ResultHandler()
	err := <-errs

	result := &Result{
		Config:  sim.Config,
		Tally:   sim.Tally,
		Elapsed: time.Since(start),
	}

	return result, err
}

// Thread plays the given worker's share of games and sends its tally to
// the result handler.
func (sim *Simulation) Thread(worker int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("worker", worker).Error(r)
			err = fmt.Errorf("simulate: worker %d: %v", worker, r)
		}
	}()

	// Independent PCG streams keep a seeded run reproducible regardless
	// of how the workers are scheduled.
	rng := rand.New(rand.NewPCG(sim.Config.Seed, uint64(worker)))

	logrus.WithField("worker", worker).Trace("Worker started")

	var tally Tally
	for round := 0; round < sim.Config.Rounds; round++ {
		tally.Add(sim.play(rng, sim.Config.RandomFirst))
	}

	logrus.WithFields(logrus.Fields{
		"worker": worker,
		"red":    tally.RedWins,
		"yellow": tally.YellowWins,
		"draws":  tally.Draws,
	}).Debug("Worker finished")

	sim.results <- tally
	return nil
}

// ResultHandler sums the tallies reported by the workers until the results
// channel is closed.
func (sim *Simulation) ResultHandler() {
	for tally := range sim.results {
		sim.Tally.Merge(tally)
	}
}
