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

package rule

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

const (
	separator = ";"
	bom       = "\ufeff"
)

// 📝 Parse reads a rule file with one "match;replacement" pair per line.
// Lines are split on the first separator and both sides are trimmed.
// Blank lines and lines without a separator are ignored.
func Parse(ctx context.Context, r io.Reader) (*Set, error) {
	logger := zerolog.Ctx(ctx)

	set := NewSet()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match, replacement, ok := strings.Cut(line, separator)
		if !ok {
			logger.Debug().Int("line", lineNo).Str("content", line).Msg("ignoring rule line without separator")
			continue
		}

		match = strings.TrimSpace(match)
		if match == "" {
			return nil, errors.Errorf("line %d: %w", lineNo, ErrEmptyPattern)
		}
		set.Add(match, strings.TrimSpace(replacement))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading rules: %w", err)
	}

	logger.Debug().Int("rules", set.Len()).Msg("parsed rename rules")
	return set, nil
}

// 🎯 Load parses the rule file at path
func Load(ctx context.Context, fs afero.Fs, path string) (*Set, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening rule file: %w", err)
	}
	defer f.Close()

	set, err := Parse(ctx, f)
	if err != nil {
		return nil, errors.Errorf("parsing rule file %s: %w", path, err)
	}
	return set, nil
}
