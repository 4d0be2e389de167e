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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtension is used when the config does not name one
const DefaultExtension = ".png"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// 📚 Config is the batch driver configuration.
// It is loaded once before the walk and not modified afterwards.
type Config struct {
	SourceDirectory string   `json:"source_directory" yaml:"source_directory"` // Root of the walk
	RuleFile        string   `json:"config_file" yaml:"config_file"`           // match;replacement rule file
	LogDirectory    string   `json:"log_directory" yaml:"log_directory"`       // Where the batch log is written
	Extension       string   `json:"extension,omitempty" yaml:"extension,omitempty"`
	Include         []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude         []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	location string
}

// 🎯 Load loads the configuration from a file.
// Relative paths inside the file are resolved against the file's directory.
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving config path: %w", err)
	}
	cfg.location = abs
	cfg.resolve(filepath.Dir(abs))

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.SourceDirectory == "" {
		return errors.Errorf("source_directory is required")
	}
	if cfg.RuleFile == "" {
		return errors.Errorf("config_file is required")
	}
	if cfg.LogDirectory == "" {
		return errors.Errorf("log_directory is required")
	}

	cfg.SourceDirectory = filepath.Clean(cfg.SourceDirectory)
	cfg.RuleFile = filepath.Clean(cfg.RuleFile)
	cfg.LogDirectory = filepath.Clean(cfg.LogDirectory)

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}

	return nil
}

func (cfg *Config) resolve(base string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	cfg.SourceDirectory = join(cfg.SourceDirectory)
	cfg.RuleFile = join(cfg.RuleFile)
	cfg.LogDirectory = join(cfg.LogDirectory)
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	ext := cfg.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return fmt.Sprintf("%s/**/*%s [%s] -> %s", cfg.SourceDirectory, ext, cfg.RuleFile, cfg.LogDirectory)
}
