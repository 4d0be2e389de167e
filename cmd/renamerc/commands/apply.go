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
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/intake"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates the single-rule command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		match       string
		replacement string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "apply --match TEXT --replace TEXT FILE...",
		Short: "Apply one match/replacement rule to the given files",
		Long: `Apply offers each FILE to a working set and renames every held file by
replacing all occurrences of --match in its name with --replace.
Paths that are not regular files and duplicates are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			set := offerAll(ctx, opts, args)
			r := rule.Rule{
				Match:       strings.TrimSpace(match),
				Replacement: strings.TrimSpace(replacement),
			}

			op := operation.NewInteractiveOperation(opts.Operation(), set, r, dryRun)
			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return errors.Errorf("applying rule: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "text to find in file names")
	cmd.Flags().StringVar(&replacement, "replace", "", "text to put in its place")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only show the new names")

	return cmd
}

// offerAll builds a working set from paths and warns about the ones it refuses
func offerAll(ctx context.Context, opts *opts.RootOpts, paths []string) *intake.Set {
	logger := log.FromContext(ctx)
	set := intake.NewSet(opts.Fs)
	for _, p := range paths {
		if !set.Offer(p) {
			logger.Warningf("ignoring %s: not a new regular file", p)
		}
	}
	return set
}
