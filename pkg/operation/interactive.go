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

	"github.com/walteh/renamerc/pkg/intake"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 🖐️ NewInteractiveOperation creates the single-rule "process" action over a working set.
// With dryRun the names are only previewed and the working set is kept.
func NewInteractiveOperation(opts Options, set *intake.Set, r rule.Rule, dryRun bool) Operation {
	return &interactiveOperation{
		BaseOperation: NewBaseOperation(opts),
		set:           set,
		rule:          r,
		dryRun:        dryRun,
	}
}

type interactiveOperation struct {
	BaseOperation
	set    *intake.Set
	rule   rule.Rule
	dryRun bool
}

// 🏃 Execute applies the rule to every held candidate and clears the set
func (op *interactiveOperation) Execute(ctx context.Context) error {
	rules := rule.NewSet(op.rule)
	candidates := op.set.Snapshot()

	if op.dryRun {
		return NewPreviewOperation(op.Options, candidates, rules).Execute(ctx)
	}

	logger := log.FromContext(ctx)
	outcomes, err := op.Engine.Apply(ctx, candidates, rules)
	if err != nil {
		return errors.Errorf("renaming files: %w", err)
	}

	for _, o := range outcomes {
		logger.LogOutcome(ctx, o)
	}

	op.summary = rename.Summarize(outcomes)
	logger.Successf("%d file(s) renamed.", op.summary.Renamed)
	if op.summary.Failed > 0 {
		logger.Warningf("%d file(s) failed.", op.summary.Failed)
	}

	op.set.Clear()
	return nil
}

// 🔍 NewPreviewOperation shows what rules would do to candidates without renaming anything
func NewPreviewOperation(opts Options, candidates []intake.Candidate, rules *rule.Set) Operation {
	return &previewOperation{
		BaseOperation: NewBaseOperation(opts),
		candidates:    candidates,
		rules:         rules,
	}
}

type previewOperation struct {
	BaseOperation
	candidates []intake.Candidate
	rules      *rule.Set
}

// 🏃 Execute logs one preview line per candidate
func (op *previewOperation) Execute(ctx context.Context) error {
	logger := log.FromContext(ctx)

	previews, err := op.Engine.Plan(op.candidates, op.rules)
	if err != nil {
		return errors.Errorf("previewing: %w", err)
	}

	changed := 0
	for _, p := range previews {
		logger.LogPreview(ctx, p)
		if p.Changed() {
			changed++
		}
	}
	logger.Infof("Files to rename: %d of %d", changed, len(previews))
	return nil
}
