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

package common

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Name is the name of the directory connect4 keeps its files in, inside
// the user's XDG base directories.
const Name = "connect4"

// SimulationConfig is the path of the simulation config file, relative
// to the XDG config directories.
var SimulationConfig = filepath.Join(Name, "simulate.yaml")

// ConfigFile looks for the given config file in the XDG config directories,
// in order of preference, and returns its full path. ok is false if the
// file does not exist anywhere.
func ConfigFile(relPath string) (path string, ok bool) {
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		return "", false
	}

	return path, true
}

// DefaultConfigPath is where a config file would be written, the user's
// XDG config home. Nothing is created on disk.
func DefaultConfigPath(relPath string) string {
	return filepath.Join(xdg.ConfigHome, relPath)
}
