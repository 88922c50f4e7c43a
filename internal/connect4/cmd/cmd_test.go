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

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"laptudirm.com/x/connect4/pkg/simulate"
)

// configHome points the XDG config directories at a fresh temporary
// directory and returns it.
func configHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSimulateCommand(t *testing.T) {
	configHome(t)

	out, err := execute(t, "simulate", "-j", "2", "-r", "50", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "result of 100 games (2 threads x 50 rounds, seed 7) :") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestSimulateInvalidFlags(t *testing.T) {
	configHome(t)

	if _, err := execute(t, "simulate", "--threads", "0"); !errors.Is(err, simulate.ErrInvalidConfig) {
		t.Errorf("got %v, want %v", err, simulate.ErrInvalidConfig)
	}
}

func TestSimulationConfig(t *testing.T) {
	home := configHome(t)

	dir := filepath.Join(home, "connect4")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	file := "threads: 3\nrounds: 40\nseed: 5\n"
	if err := os.WriteFile(filepath.Join(dir, "simulate.yaml"), []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	other := filepath.Join(t.TempDir(), "other.yaml")
	if err := os.WriteFile(other, []byte("threads: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		env  map[string]string
		args []string
		want simulate.Config
	}{
		{
			name: "discovered file",
			want: simulate.Config{Threads: 3, Rounds: 40, Seed: 5},
		},
		{
			name: "environment over file",
			env:  map[string]string{"CONNECT4_ROUNDS": "60"},
			want: simulate.Config{Threads: 3, Rounds: 60, Seed: 5},
		},
		{
			name: "flags over environment",
			env:  map[string]string{"CONNECT4_ROUNDS": "60"},
			args: []string{"-r", "80", "--random-first"},
			want: simulate.Config{Threads: 3, Rounds: 80, RandomFirst: true, Seed: 5},
		},
		{
			name: "explicit file",
			args: []string{"--config", other},
			want: simulate.Config{Threads: 6, Rounds: 100},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for key, value := range test.env {
				t.Setenv(key, value)
			}

			cmd := Simulate()
			if err := cmd.ParseFlags(test.args); err != nil {
				t.Fatal(err)
			}

			config, err := simulationConfig(cmd)
			if err != nil {
				t.Fatal(err)
			}

			if config != test.want {
				t.Errorf("got %+v, want %+v", config, test.want)
			}
		})
	}
}
