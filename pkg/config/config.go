// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config represents an optional relocation configuration file
type Config struct {
	Source      string `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty" hcl:"destination,optional"`
	Jobs        int    `json:"jobs,omitempty" yaml:"jobs,omitempty" hcl:"jobs,optional"`
	BufferSize  int    `json:"buffer_size,omitempty" yaml:"buffer_size,omitempty" hcl:"buffer_size,optional"`
	Link        *bool  `json:"link,omitempty" yaml:"link,omitempty" hcl:"link,optional"`
	LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`

	location string
}

// 🏭 Default returns the configuration used when no file is given
func Default() *Config {
	link := true
	return &Config{
		Link:     &link,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Location returns the path the config was loaded from, if any
func (c *Config) Location() string {
	return c.location
}

// LinkEnabled reports whether the hard-link fast path may be used
func (c *Config) LinkEnabled() bool {
	return c.Link == nil || *c.Link
}

// Level parses the configured log level, defaulting to info
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Errorf("parsing log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// 🔍 Validate validates the configuration
func Validate(ctx context.Context, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	if cfg.BufferSize < 0 {
		return errors.Errorf("buffer_size must not be negative, got %d", cfg.BufferSize)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("location", cfg.location).Msg("config validated")
	return nil
}
