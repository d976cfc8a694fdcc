//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads rhinote settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/timburks/rhinote/types"
)

type Config struct {
	AppName       string   `yaml:"app_name"`
	Palette       []string `yaml:"palette"`
	TabWidth      int      `yaml:"tab_width"`
	LogFile       string   `yaml:"log_file"`
	PrintCommand  []string `yaml:"print_command"`
	FormatCommand []string `yaml:"format_command"`
	NoFormat      bool     `yaml:"no_format"`
	Verbose       bool     `yaml:"verbose"`
}

// accent names map to xterm 256-color indexes
var colorNames = map[string]types.Color{
	"pink":   219,
	"cyan":   159,
	"yellow": 229,
	"blue":   147,
	"green":  157,
	"red":    217,
	"white":  231,
	"grey":   252,
}

var defaultPalette = []string{"pink", "cyan", "yellow", "blue", "green", "red"}

func Default() Config {
	return Config{
		AppName:  "Rhinote",
		Palette:  append([]string(nil), defaultPalette...),
		TabWidth: 8,
		LogFile:  defaultLogFile(),
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rhinotelog"
	}
	return filepath.Join(home, ".rhinotelog")
}

// DefaultPath returns the config file read when none is named.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rhinote", "config.yaml")
}

// Load starts from the defaults, applies the YAML file at path and then the
// environment. A missing file is an error only when path was named explicitly.
// Invalid values fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Default(), fmt.Errorf("invalid config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Default(), fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg.applyEnv()
	cfg.fixInvalid()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RHINOTE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("RHINOTE_PRINT_COMMAND"); v != "" {
		c.PrintCommand = strings.Fields(v)
	}
	if v := os.Getenv("RHINOTE_FORMAT_COMMAND"); v != "" {
		c.FormatCommand = strings.Fields(v)
	}
	if v := os.Getenv("RHINOTE_NO_FORMAT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoFormat = b
		}
	}
	if v := os.Getenv("RHINOTE_PALETTE"); v != "" {
		c.Palette = strings.Split(v, ",")
	}
	if v := os.Getenv("RHINOTE_TAB_WIDTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.TabWidth = i
		}
	}
}

func (c *Config) fixInvalid() {
	if strings.TrimSpace(c.AppName) == "" {
		c.AppName = "Rhinote"
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 8
	}
	if len(c.Accents()) == 0 {
		c.Palette = append([]string(nil), defaultPalette...)
	}
	if c.LogFile == "" {
		c.LogFile = defaultLogFile()
	}
}

// Accents returns the palette as colors. Each entry is a color name or an
// xterm color index; entries that are neither are skipped.
func (c Config) Accents() []types.Color {
	accents := make([]types.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		name = strings.ToLower(strings.TrimSpace(name))
		if color, ok := colorNames[name]; ok {
			accents = append(accents, color)
			continue
		}
		if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < 256 {
			accents = append(accents, types.Color(i))
		}
	}
	return accents
}
