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
	"time"

	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/rename"
)

// 🎯 Operation is one user or driver action
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by all operations
type Options struct {
	// Fs is the filesystem files are walked and renamed on
	Fs afero.Fs
	// Now returns the current time; defaults to time.Now
	Now func() time.Time
}

// 🧱 BaseOperation holds what every operation needs
type BaseOperation struct {
	Options
	Engine *rename.Engine

	summary rename.Summary
}

// 🏭 NewBaseOperation fills defaults and builds the engine
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return BaseOperation{
		Options: opts,
		Engine:  rename.New(opts.Fs),
	}
}

// Summary returns the counts of the last execution
func (op *BaseOperation) Summary() rename.Summary {
	return op.summary
}
