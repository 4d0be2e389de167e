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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rename"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // Base width for filename
)

// 🎯 Logger prints rename results to a console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatOutcome formats a rename outcome for display
func formatOutcome(o rename.Outcome) string {
	var symbol string
	var detail string
	switch o.Kind {
	case rename.Renamed:
		symbol = color.New(color.FgGreen).Sprint("✓")
		detail = "➔ " + color.New(color.Bold).Sprint(o.NewName)
	case rename.Failed:
		symbol = color.New(color.FgRed).Sprint("✗")
		detail = color.New(color.FgRed).Sprint("failed: " + o.Message())
	default:
		symbol = color.New(color.FgYellow).Sprint("-")
		detail = color.New(color.Faint).Sprint("skipped")
	}

	return fmt.Sprintf("%*s%s %-*s %s", fileIndent, "", symbol, nameWidth, o.OldName, detail)
}

// 📝 formatPreview formats a computed name the way the live preview shows it
func formatPreview(p rename.Preview) string {
	if !p.Changed() {
		return fmt.Sprintf("%s  %s", p.OldName, color.New(color.Faint).Sprint("(no change)"))
	}
	return fmt.Sprintf("%s  ➔  %s", p.OldName, color.New(color.FgGreen).Sprint(p.NewName))
}

// 📝 LogOutcome logs one rename outcome
func (l *Logger) LogOutcome(ctx context.Context, o rename.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, formatOutcome(o))

	event := l.zlog.Debug()
	if o.Kind == rename.Failed {
		event = l.zlog.Warn()
	}
	event.
		Str("file", o.Candidate.Path).
		Str("outcome", o.Kind.String()).
		Str("old_name", o.OldName).
		Str("new_name", o.NewName).
		Err(o.Err).
		Msg("rename outcome")
}

// 📝 LogPreview logs one previewed rename
func (l *Logger) LogPreview(ctx context.Context, p rename.Preview) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, formatPreview(p))

	l.zlog.Debug().
		Str("file", p.Candidate.Path).
		Str("new_name", p.NewName).
		Bool("changed", p.Changed()).
		Msg("rename preview")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Raw writes pre-rendered text to the console unchanged
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
