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

package intake

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtension is the file suffix the batch walk looks for
const DefaultExtension = ".png"

// 🔧 DiscoverOptions controls which files a walk offers
type DiscoverOptions struct {
	// Extension is the case-sensitive suffix a file name must end with
	Extension string

	// Include limits the walk to paths matching any of these doublestar patterns
	Include []string

	// Exclude drops paths matching any of these doublestar patterns
	Exclude []string
}

// 🔍 Discover walks root recursively and returns matching regular files in lexical order
func Discover(ctx context.Context, fs afero.Fs, root string, opts DiscoverOptions) ([]Candidate, error) {
	logger := zerolog.Ctx(ctx)

	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving root %s: %w", root, err)
	}

	set := NewSet(fs)
	err = afero.Walk(fs, absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			// unreadable entries below the root are skipped so siblings are still found
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			// links to files are renamed like files; links to directories are not followed
			target, err := fs.Stat(path)
			if err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("skipping dangling link")
				return nil
			}
			info = target
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !strings.HasSuffix(filepath.Base(path), opts.Extension) {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		if !selected(filepath.ToSlash(rel), opts) {
			logger.Debug().Str("path", rel).Msg("file filtered by pattern")
			return nil
		}

		set.Offer(path)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Str("root", absRoot).Int("candidates", set.Len()).Msg("discovered candidates")
	return set.Snapshot(), nil
}

func selected(rel string, opts DiscoverOptions) bool {
	for _, pattern := range opts.Exclude {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return false
		}
	}
	if len(opts.Include) == 0 {
		return true
	}
	for _, pattern := range opts.Include {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}
