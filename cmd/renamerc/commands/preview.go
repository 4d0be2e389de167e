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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// NewPreviewCmd creates the preview command
func NewPreviewCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		match       string
		replacement string
		rulesFile   string
	)

	cmd := &cobra.Command{
		Use:   "preview (--match TEXT --replace TEXT | --rules FILE) FILE...",
		Short: "Show the names files would get without renaming them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var rules *rule.Set
			if rulesFile != "" {
				loaded, err := rule.Load(ctx, opts.Fs, rulesFile)
				if err != nil {
					return errors.Errorf("loading rules: %w", err)
				}
				rules = loaded
			} else {
				rules = rule.NewSet(rule.Rule{
					Match:       strings.TrimSpace(match),
					Replacement: strings.TrimSpace(replacement),
				})
			}

			set := offerAll(ctx, opts, args)
			op := operation.NewPreviewOperation(opts.Operation(), set.Snapshot(), rules)
			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return errors.Errorf("previewing: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "text to find in file names")
	cmd.Flags().StringVar(&replacement, "replace", "", "text to put in its place")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "match;replacement rule file")
	cmd.MarkFlagsMutuallyExclusive("rules", "match")

	return cmd
}
