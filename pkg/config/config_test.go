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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name:     "json_absolute_paths",
			filename: "rename_path_config.json",
			config: `{
				"source_directory": "/textures",
				"config_file": "/textures/rename.csv",
				"log_directory": "/textures/logs"
			}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/textures", cfg.SourceDirectory, "source directory should match")
				assert.Equal(t, "/textures/rename.csv", cfg.RuleFile, "rule file should match")
				assert.Equal(t, "/textures/logs", cfg.LogDirectory, "log directory should match")
				assert.Equal(t, ".png", cfg.Extension, "extension should default to .png")
				assert.Equal(t, filepath.Join(dir, "rename_path_config.json"), cfg.Location(), "location should be recorded")
			},
		},
		{
			name:     "json_relative_paths",
			filename: "config.json",
			config: `{
				"source_directory": "textures",
				"config_file": "./rules/rename.csv",
				"log_directory": "logs/"
			}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "textures"), cfg.SourceDirectory)
				assert.Equal(t, filepath.Join(dir, "rules", "rename.csv"), cfg.RuleFile)
				assert.Equal(t, filepath.Join(dir, "logs"), cfg.LogDirectory)
			},
		},
		{
			name:     "json_full",
			filename: "config.JSON",
			config: `{
				"source_directory": "/textures",
				"config_file": "/textures/rename.csv",
				"log_directory": "/logs",
				"extension": ".tga",
				"include": ["materials/**"],
				"exclude": ["**/backup/**"]
			}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, ".tga", cfg.Extension)
				assert.Equal(t, []string{"materials/**"}, cfg.Include)
				assert.Equal(t, []string{"**/backup/**"}, cfg.Exclude)
			},
		},
		{
			name:     "json_unknown_field",
			filename: "config.json",
			config: `{
				"source_directory": "/textures",
				"config_file": "/textures/rename.csv",
				"log_directory": "/logs",
				"destination": "/tmp"
			}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "json_missing_source",
			filename:    "config.json",
			config:      `{"config_file": "/r.csv", "log_directory": "/logs"}`,
			wantErr:     true,
			errContains: "source_directory is required",
		},
		{
			name:        "json_missing_rule_file",
			filename:    "config.json",
			config:      `{"source_directory": "/t", "log_directory": "/logs"}`,
			wantErr:     true,
			errContains: "config_file is required",
		},
		{
			name:        "json_missing_log_directory",
			filename:    "config.json",
			config:      `{"source_directory": "/t", "config_file": "/r.csv"}`,
			wantErr:     true,
			errContains: "log_directory is required",
		},
		{
			name:     "yaml",
			filename: "config.yaml",
			config: `
source_directory: /textures
config_file: /textures/rename.csv
log_directory: /logs
exclude:
  - "**/backup/**"
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/textures", cfg.SourceDirectory)
				assert.Equal(t, "/textures/rename.csv", cfg.RuleFile)
				assert.Equal(t, "/logs", cfg.LogDirectory)
				assert.Equal(t, []string{"**/backup/**"}, cfg.Exclude)
			},
		},
		{
			name:     "yaml_unknown_field",
			filename: "config.yml",
			config: `
source_directory: /textures
config_file: /textures/rename.csv
log_directory: /logs
async: true
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "hcl",
			filename: "config.hcl",
			config: `
source_directory = "/textures"
config_file      = "/textures/rename.csv"
log_directory    = "/logs"
extension        = ".jpg"
include          = ["**/*_BaseColor*"]
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/textures", cfg.SourceDirectory)
				assert.Equal(t, ".jpg", cfg.Extension)
				assert.Equal(t, []string{"**/*_BaseColor*"}, cfg.Include)
			},
		},
		{
			name:        "hcl_missing_required",
			filename:    "config.hcl",
			config:      `source_directory = "/textures"`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			config:      `source_directory = "/textures"`,
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0o644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, afero.NewOsFs(), configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, tmpDir, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), afero.NewOsFs(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadFromMemory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/rename_path_config.yaml", []byte(`
source_directory: textures
config_file: rename.csv
log_directory: /var/log/renamerc
`), 0o644))

	cfg, err := Load(context.Background(), fs, "/cfg/rename_path_config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/cfg/textures", cfg.SourceDirectory)
	assert.Equal(t, "/cfg/rename.csv", cfg.RuleFile)
	assert.Equal(t, "/var/log/renamerc", cfg.LogDirectory)
	assert.Equal(t, "/cfg/rename_path_config.yaml", cfg.Location())

	_, err = Load(context.Background(), afero.NewOsFs(), "/cfg/rename_path_config.yaml")
	require.Error(t, err, "config should only be read from the given filesystem")
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "config.json", want: &JSONParser{}},
		{filename: "config.JSON", want: &JSONParser{}},
		{filename: "config.yaml", want: &YAMLParser{}},
		{filename: "config.yml", want: &YAMLParser{}},
		{filename: "config.hcl", want: &HCLParser{}},
		{filename: "config", want: nil},
		{filename: "config.csv", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		SourceDirectory: "/textures",
		RuleFile:        "/textures/rename.csv",
		LogDirectory:    "/logs",
	}
	assert.Equal(t, "/textures/**/*.png [/textures/rename.csv] -> /logs", cfg.String())
}
