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
	"github.com/walteh/renamerc/pkg/intake"
)

// 📊 Kind is the result of one rename attempt
type Kind int

const (
	KindUnknown Kind = iota
	Renamed          // File was renamed
	Skipped          // Rules left the name unchanged, nothing was touched
	Failed           // Rename was attempted and failed
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Renamed:
		return "renamed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Outcome is produced exactly once per candidate per Apply
type Outcome struct {
	Kind      Kind
	Candidate intake.Candidate
	OldName   string
	NewName   string // set for Renamed and Failed
	Err       error  // set for Failed
}

// Message returns the failure text, or an empty string
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// 🔍 Preview is a computed rename that has not been applied
type Preview struct {
	Candidate intake.Candidate
	OldName   string
	NewName   string
}

// Changed reports whether the rules alter the name
func (p Preview) Changed() bool {
	return p.OldName != p.NewName
}

// 📈 Summary counts outcomes by kind
type Summary struct {
	Renamed int
	Skipped int
	Failed  int
}

// Total returns the number of outcomes counted
func (s Summary) Total() int {
	return s.Renamed + s.Skipped + s.Failed
}

// Summarize counts outcomes
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Kind {
		case Renamed:
			s.Renamed++
		case Skipped:
			s.Skipped++
		case Failed:
			s.Failed++
		}
	}
	return s
}
