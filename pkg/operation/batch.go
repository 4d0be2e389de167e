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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/intake"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/report"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewBatchOperation creates the directory-walk driver.
// cfg is copied; later changes to the caller's value are not seen.
func NewBatchOperation(opts Options, cfg config.Config) Operation {
	return &batchOperation{
		BaseOperation: NewBaseOperation(opts),
		cfg:           cfg,
	}
}

// 📦 batchOperation walks the source directory and applies the rule file
type batchOperation struct {
	BaseOperation
	cfg config.Config
}

// 🏃 Execute runs the batch
func (op *batchOperation) Execute(ctx context.Context) error {
	logger := log.FromContext(ctx)
	zlog := zerolog.Ctx(ctx)

	rules, err := rule.Load(ctx, op.Fs, op.cfg.RuleFile)
	if err != nil {
		return errors.Errorf("loading rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return errors.Errorf("validating rules in %s: %w", op.cfg.RuleFile, err)
	}

	candidates, err := intake.Discover(ctx, op.Fs, op.cfg.SourceDirectory, intake.DiscoverOptions{
		Extension: op.cfg.Extension,
		Include:   op.cfg.Include,
		Exclude:   op.cfg.Exclude,
	})
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	started := op.Now()
	logFile, err := report.Create(op.Fs, op.cfg.LogDirectory, started)
	if err != nil {
		return err
	}
	defer logFile.Close()

	zlog.Debug().
		Str("source", op.cfg.SourceDirectory).
		Int("rules", rules.Len()).
		Int("candidates", len(candidates)).
		Str("log_file", logFile.Name()).
		Msg("starting batch")

	w := report.NewWriter(logFile)
	w.Begin(started)
	logger.Header("renaming files in " + op.cfg.SourceDirectory)

	var outcomes []rename.Outcome
	if len(candidates) == 0 {
		logger.Warningf("no %s files found in %s", op.cfg.Extension, op.cfg.SourceDirectory)
	} else {
		outcomes, err = op.Engine.Apply(ctx, candidates, rules)
		if err != nil {
			return errors.Errorf("applying rules: %w", err)
		}
	}

	for _, o := range outcomes {
		logger.LogOutcome(ctx, o)
		w.Outcome(o)
	}

	op.summary = rename.Summarize(outcomes)
	dirs := report.ProcessedDirs(outcomes)
	loc := report.Locations{
		ConfigFile: op.cfg.Location(),
		RuleFile:   op.cfg.RuleFile,
		LogFile:    logFile.Name(),
	}
	w.Finish(op.summary, dirs, loc)
	logger.LogNewline()
	logger.Raw(report.RenderSummary(op.summary, dirs, loc))
	if op.summary.Failed > 0 {
		logger.Errorf("%d file(s) failed, see %s", op.summary.Failed, logFile.Name())
	}

	if err := w.Err(); err != nil {
		return err
	}
	return nil
}
