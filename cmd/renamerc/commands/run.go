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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is read when --config is not given
const DefaultConfigFile = "rename_path_config.json"

// NewRunCmd creates the batch command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rename every matching file under the configured source directory",
		Long: `Run walks source_directory and renames every file with the configured
extension using the match;replacement rules in config_file.
It will:
1. Load and validate the rules
2. Rename files in lexical order, one at a time
3. Write a timestamped log to log_directory
4. Print a summary of renamed, skipped and failed files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx, opts.Fs, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			op := operation.NewBatchOperation(opts.Operation(), *cfg)
			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return errors.Errorf("running batch: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", DefaultConfigFile, "config file path (json, yaml or hcl)")

	return cmd
}
