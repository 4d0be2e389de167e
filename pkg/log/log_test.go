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

package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/intake"
	"github.com/walteh/renamerc/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

func padded(name string) string {
	return fmt.Sprintf("%-45s", name)
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_outcomes",
			op: func(t *testing.T, logger *Logger) {
				logger.LogOutcome(context.Background(), rename.Outcome{
					Kind:      rename.Renamed,
					Candidate: intake.Candidate{Path: "/tex/wood_Diffuse.png"},
					OldName:   "wood_Diffuse.png",
					NewName:   "wood_COL.png",
				})
				logger.LogOutcome(context.Background(), rename.Outcome{
					Kind:      rename.Skipped,
					Candidate: intake.Candidate{Path: "/tex/wood_Normal.png"},
					OldName:   "wood_Normal.png",
				})
				logger.LogOutcome(context.Background(), rename.Outcome{
					Kind:      rename.Failed,
					Candidate: intake.Candidate{Path: "/tex/stone_Diffuse.png"},
					OldName:   "stone_Diffuse.png",
					NewName:   "stone_COL.png",
					Err:       errors.New("target already exists"),
				})
			},
			wantLogs: []string{
				"✓ " + padded("wood_Diffuse.png") + " ➔ wood_COL.png",
				"- " + padded("wood_Normal.png") + " skipped",
				"✗ " + padded("stone_Diffuse.png") + " failed: target already exists",
			},
		},
		{
			name: "log_previews",
			op: func(t *testing.T, logger *Logger) {
				logger.LogPreview(context.Background(), rename.Preview{OldName: "wood_Diffuse.png", NewName: "wood_COL.png"})
				logger.LogPreview(context.Background(), rename.Preview{OldName: "wood_Normal.png", NewName: "wood_Normal.png"})
			},
			wantLogs: []string{
				"wood_Diffuse.png  ➔  wood_COL.png",
				"wood_Normal.png  (no change)",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("%d file(s) renamed.", 2)
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ 2 file(s) renamed.",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("renaming 3 file(s)")
			},
			wantLogs: []string{
				"renamerc • renaming 3 file(s)",
			},
		},
		{
			name: "log_newline_and_raw",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Raw("second\n")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.TestWriter{T: t}))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestOutcomeIndent(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	got := formatOutcome(rename.Outcome{Kind: rename.Skipped, OldName: "a.png"})
	assert.True(t, strings.HasPrefix(got, "    - a.png"), "outcome lines should be indented, got %q", got)
}

func TestLoggerMirrorsToZerolog(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	zbuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(zbuf).Level(zerolog.DebugLevel))

	logger.LogOutcome(context.Background(), rename.Outcome{
		Kind:      rename.Failed,
		Candidate: intake.Candidate{Path: "/tex/a_Diffuse.png"},
		OldName:   "a_Diffuse.png",
		NewName:   "a_COL.png",
		Err:       errors.New("permission denied"),
	})

	out := zbuf.String()
	assert.Contains(t, out, `"level":"warn"`, "failures should be logged as warnings")
	assert.Contains(t, out, `"outcome":"failed"`)
	assert.Contains(t, out, `"file":"/tex/a_Diffuse.png"`)
	assert.Contains(t, out, `permission denied`)
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
