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
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptyPattern is returned when a rule has nothing to match
	ErrEmptyPattern = errors.Base("pattern cannot be empty")

	// ErrNoRules is returned when a rule set has no rules at all
	ErrNoRules = errors.Base("no rename rules")
)

// 🔄 Rule is a literal, case-sensitive substring replacement
type Rule struct {
	// Match is the text to look for in a file name
	Match string

	// Replacement is the text Match is replaced with
	Replacement string
}

// 🔍 Validate checks that the rule can be applied
func (r Rule) Validate() error {
	if r.Match == "" {
		return ErrEmptyPattern
	}
	return nil
}

// 📚 Set is an ordered collection of rules keyed by match text.
// Re-adding a match keeps its first position and replaces its replacement.
type Set struct {
	rules []Rule
	index map[string]int
}

// 🏭 NewSet creates a set from the given rules, in order
func NewSet(rules ...Rule) *Set {
	s := &Set{index: make(map[string]int, len(rules))}
	for _, r := range rules {
		s.Add(r.Match, r.Replacement)
	}
	return s
}

// 📝 Add inserts or updates the replacement for match
func (s *Set) Add(match, replacement string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[match]; ok {
		s.rules[i].Replacement = replacement
		return
	}
	s.index[match] = len(s.rules)
	s.rules = append(s.rules, Rule{Match: match, Replacement: replacement})
}

// Rules returns a copy of the rules in insertion order
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of rules
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// 🔍 Validate checks that the set is non-empty and every rule has a pattern
func (s *Set) Validate() error {
	if s.Len() == 0 {
		return ErrNoRules
	}
	for i, r := range s.rules {
		if err := r.Validate(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// 🎯 ComputeNewName applies rules to filename in order.
// Each rule sees the name as rewritten by the rules before it.
func ComputeNewName(filename string, rules []Rule) string {
	current := filename
	for _, r := range rules {
		if r.Match == "" || !strings.Contains(current, r.Match) {
			continue
		}
		current = strings.ReplaceAll(current, r.Match, r.Replacement)
	}
	return current
}

// Apply is ComputeNewName over the rules of s
func (s *Set) Apply(filename string) string {
	if s == nil {
		return filename
	}
	return ComputeNewName(filename, s.rules)
}
