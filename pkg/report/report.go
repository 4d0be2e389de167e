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
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

const fileNameLayout = "2006_01_02_15_04"

// 📍 Locations lists the files involved in a batch
type Locations struct {
	ConfigFile string
	RuleFile   string
	LogFile    string
}

// FileName returns the batch log file name for t
func FileName(t time.Time) string {
	return t.Format(fileNameLayout) + "_rename.log"
}

// 🏭 Create creates the batch log file inside dir, creating dir if needed
func Create(fs afero.Fs, dir string, t time.Time) (afero.File, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Errorf("creating log directory: %w", err)
	}
	f, err := fs.Create(filepath.Join(dir, FileName(t)))
	if err != nil {
		return nil, errors.Errorf("creating log file: %w", err)
	}
	return f, nil
}

// ProcessedDirs returns the sorted, unique directories of the outcomes
func ProcessedDirs(outcomes []rename.Outcome) []string {
	seen := make(map[string]struct{}, len(outcomes))
	dirs := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		dir := o.Candidate.Dir()
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// 📝 Writer writes the plain-text batch log
type Writer struct {
	w         io.Writer
	formatter Formatter
	err       error
}

// NewWriter creates a log writer using the default formatter
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, formatter: NewDefaultFormatter()}
}

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Begin writes the start banner
func (r *Writer) Begin(t time.Time) {
	r.printf("%s\n\n", r.formatter.FormatStart(t))
}

// Outcome writes one outcome line
func (r *Writer) Outcome(o rename.Outcome) {
	r.printf("%s\n", r.formatter.FormatOutcome(o))
}

// Finish writes totals, processed directories and file locations
func (r *Writer) Finish(sum rename.Summary, dirs []string, loc Locations) {
	r.printf("\n%s\n", r.formatter.FormatFinish())
	r.printf("Total files renamed: %d\n", sum.Renamed)
	r.printf("Total files skipped: %d\n", sum.Skipped)
	r.printf("Total files failed: %d\n", sum.Failed)

	r.printf("\nProcessed directories:\n")
	for _, d := range dirs {
		r.printf("%s\n", d)
	}

	r.printf("\n=== File locations ===\n")
	r.printf("Config file: %s\n", loc.ConfigFile)
	r.printf("Rule file: %s\n", loc.RuleFile)
	r.printf("Log file: %s\n", loc.LogFile)
}

// Err returns the first write error, if any
func (r *Writer) Err() error {
	if r.err != nil {
		return errors.Errorf("writing batch log: %w", r.err)
	}
	return nil
}

// 📊 RenderSummary renders the console summary of a batch
func RenderSummary(sum rename.Summary, dirs []string, loc Locations) string {
	var b strings.Builder

	b.WriteString(pterm.DefaultSection.Sprint("Rename process finished"))
	b.WriteString(pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Sprintfln("Total files renamed: %d", sum.Renamed))
	b.WriteString(pterm.Info.WithPrefix(pterm.Prefix{Text: "⏭️"}).Sprintfln("Total files skipped: %d", sum.Skipped))
	if sum.Failed > 0 {
		b.WriteString(pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Sprintfln("Total files failed: %d", sum.Failed))
	}

	if len(dirs) > 0 {
		b.WriteString("\nProcessed directories:\n")
		for _, d := range dirs {
			b.WriteString(" - " + d + "\n")
		}
	}

	b.WriteString(pterm.DefaultSection.Sprint("File locations"))
	b.WriteString(fmt.Sprintf("Config file: %s\n", loc.ConfigFile))
	b.WriteString(fmt.Sprintf("Rule file: %s\n", loc.RuleFile))
	b.WriteString(fmt.Sprintf("Log file: %s\n", loc.LogFile))

	return b.String()
}
