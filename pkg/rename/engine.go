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

package rename

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/intake"
	"github.com/walteh/renamerc/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNoCandidates is returned when Apply is called with nothing to rename
	ErrNoCandidates = errors.Base("no files to rename")

	// ErrTargetExists is recorded when the new name is already taken
	ErrTargetExists = errors.Base("target already exists")

	// ErrInvalidName is recorded when a computed name would leave its directory
	ErrInvalidName = errors.Base("new name is not a plain file name")
)

// 🔧 Engine computes and applies renames against a filesystem
type Engine struct {
	fs afero.Fs
}

// 🏭 New creates an engine over fs
func New(fs afero.Fs) *Engine {
	return &Engine{fs: fs}
}

// 🔍 Plan computes the new name of every candidate without touching the filesystem
func (e *Engine) Plan(candidates []intake.Candidate, rules *rule.Set) ([]Preview, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	previews := make([]Preview, 0, len(candidates))
	for _, c := range candidates {
		name := c.Name()
		previews = append(previews, Preview{
			Candidate: c,
			OldName:   name,
			NewName:   rules.Apply(name),
		})
	}
	return previews, nil
}

// 🏃 Apply renames every candidate whose name the rules change.
// Validation errors abort before any filesystem call; per-file errors
// are recorded as Failed outcomes and the batch continues.
func (e *Engine) Apply(ctx context.Context, candidates []intake.Candidate, rules *rule.Set) ([]Outcome, error) {
	logger := zerolog.Ctx(ctx)

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	previews, err := e.Plan(candidates, rules)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(previews))
	for _, p := range previews {
		o := e.applyOne(p)
		logger.Debug().
			Str("file", p.Candidate.Path).
			Str("outcome", o.Kind.String()).
			Str("new_name", o.NewName).
			Err(o.Err).
			Msg("rename attempt")
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func (e *Engine) applyOne(p Preview) Outcome {
	if !p.Changed() {
		return Outcome{Kind: Skipped, Candidate: p.Candidate, OldName: p.OldName}
	}

	dir := p.Candidate.Dir()
	oldPath := filepath.Join(dir, p.OldName)
	newPath := filepath.Join(dir, p.NewName)

	failed := func(err error) Outcome {
		return Outcome{Kind: Failed, Candidate: p.Candidate, OldName: p.OldName, NewName: p.NewName, Err: err}
	}

	if !plainName(p.NewName) {
		return failed(errors.Errorf("renaming %s to %q: %w", p.OldName, p.NewName, ErrInvalidName))
	}

	if taken, err := e.targetTaken(oldPath, newPath); err != nil {
		return failed(err)
	} else if taken {
		return failed(errors.Errorf("renaming %s to %s: %w", p.OldName, p.NewName, ErrTargetExists))
	}

	if err := e.fs.Rename(oldPath, newPath); err != nil {
		return failed(errors.Errorf("renaming %s to %s: %w", p.OldName, p.NewName, err))
	}

	return Outcome{Kind: Renamed, Candidate: p.Candidate, OldName: p.OldName, NewName: p.NewName}
}

// targetTaken reports whether newPath names a different existing file.
// A case-only rename on a case-insensitive volume stats as the same file.
func (e *Engine) targetTaken(oldPath, newPath string) (bool, error) {
	target, err := e.fs.Stat(newPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Errorf("checking target %s: %w", newPath, err)
	}

	source, err := e.fs.Stat(oldPath)
	if err != nil {
		return false, errors.Errorf("checking source %s: %w", oldPath, err)
	}
	return !os.SameFile(source, target), nil
}

// plainName reports whether name stays inside its directory when joined to it
func plainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
