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
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// 📄 Candidate is a file eligible for renaming in the current batch
type Candidate struct {
	// Path is the absolute, cleaned path of the file
	Path string
}

// Dir returns the directory containing the candidate
func (c Candidate) Dir() string {
	return filepath.Dir(c.Path)
}

// Name returns the base file name of the candidate
func (c Candidate) Name() string {
	return filepath.Base(c.Path)
}

// 🔌 Intake receives candidate paths from an event source (drop events, CLI arguments, a walk)
type Intake interface {
	// Offer adds path to the working set and reports whether it was accepted
	Offer(path string) bool

	// Snapshot returns the accepted candidates in first-insertion order
	Snapshot() []Candidate
}

var _ Intake = (*Set)(nil)

// 📚 Set is an ordered working set of candidates, deduplicated by full path
type Set struct {
	fs afero.Fs

	mu    sync.Mutex
	seen  map[string]struct{}
	items []Candidate
}

// 🏭 NewSet creates an empty working set backed by fs
func NewSet(fs afero.Fs) *Set {
	return &Set{
		fs:   fs,
		seen: make(map[string]struct{}),
	}
}

// 📥 Offer accepts path if it resolves to an existing regular file not already held
func (s *Set) Offer(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	info, err := s.fs.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[abs]; ok {
		return false
	}
	s.seen[abs] = struct{}{}
	s.items = append(s.items, Candidate{Path: abs})
	return true
}

// Snapshot returns a copy of the current candidates
func (s *Set) Snapshot() []Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Candidate, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of candidates held
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// 🧹 Clear empties the working set
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.seen = make(map[string]struct{})
}
