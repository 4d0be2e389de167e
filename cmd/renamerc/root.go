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

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/log"
)

var (
	// Flags
	debug bool
)

// newRootOpts creates a new rootOpts backed by the real filesystem
func newRootOpts() *opts.RootOpts {
	return &opts.RootOpts{
		Fs:  afero.NewOsFs(),
		Now: time.Now,
	}
}

// newRootCmd builds the command tree; console receives user-facing output
func newRootCmd(rootOpts *opts.RootOpts, console io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "renamerc",
		Short: "Batch rename files by substring rules",
		Long: `renamerc renames files by replacing substrings of their names.
Rules come from a match;replacement file (run) or from flags (apply, preview).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(newCommandContext(cmd.Context(), console))
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewApplyCmd(rootOpts),
		commands.NewPreviewCmd(rootOpts),
		newVersionCmd(console),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// newCommandContext attaches the zerolog and console loggers once flags are parsed
func newCommandContext(ctx context.Context, console io.Writer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := setupLogging()
	ctx = logger.WithContext(ctx)
	return log.NewContext(ctx, log.New(console, logger))
}

// setupLogging configures zerolog based on flags
func setupLogging() zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}
