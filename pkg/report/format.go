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

package report

import (
	"fmt"
	"time"

	"github.com/walteh/renamerc/pkg/rename"
)

const (
	nameWidth       = 45
	bannerTimestamp = "2006-01-02 15:04:05"
)

// Formatter defines how batch log lines are rendered
type Formatter interface {
	// FormatStart formats the line opening a batch
	FormatStart(t time.Time) string

	// FormatOutcome formats one outcome
	FormatOutcome(o rename.Outcome) string

	// FormatFinish formats the line closing a batch
	FormatFinish() string
}

// DefaultFormatter provides the plain-text log layout
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatStart formats the start banner with a timestamp
func (f *DefaultFormatter) FormatStart(t time.Time) string {
	return fmt.Sprintf("=== Rename process started at %s ===", t.Format(bannerTimestamp))
}

// FormatOutcome formats an outcome as an aligned "Processing file" line with emojis
func (f *DefaultFormatter) FormatOutcome(o rename.Outcome) string {
	var status string
	switch o.Kind {
	case rename.Renamed:
		status = fmt.Sprintf("✅ renamed to → %s", o.NewName)
	case rename.Failed:
		status = fmt.Sprintf("❌ Failed: %s", o.Message())
	default:
		status = "⏭️ skipped"
	}
	return fmt.Sprintf("Processing file: %-*s%s", nameWidth, o.OldName, status)
}

// FormatFinish formats the finish banner
func (f *DefaultFormatter) FormatFinish() string {
	return "=== Rename process finished ==="
}
