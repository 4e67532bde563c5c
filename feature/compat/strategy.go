package compat

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy decides whether two named mediums may be treated as hydraulically
// connected, and partitions mediums into compatibility groups.
//
// Implementations never fail on an unrecognized medium: an unmapped name is
// its own singleton group.
type Strategy interface {
	// AreCompatible reports whether elements of the two mediums may connect.
	AreCompatible(a, b string) bool

	// GroupID returns the compatibility group identifier for a medium.
	// Two compatible mediums share the same group ID.
	GroupID(medium string) string

	// Describe returns a human-readable explanation of the compatibility
	// decision for diagnostics and reports.
	Describe(a, b string) string
}

// PrefixStrategy treats mediums as compatible when the first token of their
// names (split on a separator) matches case-insensitively.
type PrefixStrategy struct {
	separator string
}

// NewPrefixStrategy creates a prefix strategy. An empty separator defaults
// to a single space.
func NewPrefixStrategy(separator string) *PrefixStrategy {
	if separator == "" {
		separator = " "
	}
	return &PrefixStrategy{separator: separator}
}

func (s *PrefixStrategy) prefix(medium string) string {
	if idx := strings.Index(medium, s.separator); idx >= 0 {
		return strings.TrimSpace(medium[:idx])
	}
	return strings.TrimSpace(medium)
}

func (s *PrefixStrategy) AreCompatible(a, b string) bool {
	if a == b {
		return true
	}
	return strings.EqualFold(s.prefix(a), s.prefix(b))
}

func (s *PrefixStrategy) GroupID(medium string) string {
	return strings.ToLower(s.prefix(medium))
}

func (s *PrefixStrategy) Describe(a, b string) string {
	switch {
	case a == b:
		return fmt.Sprintf("exact match (%s)", a)
	case s.AreCompatible(a, b):
		return fmt.Sprintf("compatible prefix (%s <-> %s)", a, b)
	default:
		return fmt.Sprintf("incompatible (%s / %s)", a, b)
	}
}

// RulesStrategy decides compatibility from an explicit adjacency table
// medium -> compatible mediums. Symmetry is whatever the table encodes;
// identical names are always compatible.
type RulesStrategy struct {
	rules map[string][]string
}

// NewRulesStrategy creates a rules strategy. An empty table is a
// configuration error.
func NewRulesStrategy(rules map[string][]string) (*RulesStrategy, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("compat: explicit rules table is empty")
	}
	return &RulesStrategy{rules: rules}, nil
}

func (s *RulesStrategy) AreCompatible(a, b string) bool {
	if a == b {
		return true
	}
	for _, other := range s.rules[a] {
		if other == b {
			return true
		}
	}
	return false
}

func (s *RulesStrategy) GroupID(medium string) string {
	group := append([]string{medium}, s.rules[medium]...)
	sort.Strings(group)
	return strings.Join(group, "|")
}

func (s *RulesStrategy) Describe(a, b string) string {
	switch {
	case a == b:
		return fmt.Sprintf("exact match (%s)", a)
	case s.AreCompatible(a, b):
		return fmt.Sprintf("explicit rule (%s -> %s)", a, b)
	default:
		return fmt.Sprintf("no rule (%s / %s)", a, b)
	}
}

// PatternStrategy resolves medium names against prefix-wildcard patterns
// grouped into named buckets. Two mediums are compatible iff they resolve
// to the same bucket; an unmatched medium forms its own singleton group.
type PatternStrategy struct {
	patterns map[string][]string
}

// NewPatternStrategy creates a pattern strategy. An empty pattern table is a
// configuration error.
func NewPatternStrategy(patterns map[string][]string) (*PatternStrategy, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("compat: pattern table is empty")
	}
	return &PatternStrategy{patterns: patterns}, nil
}

func matchesPattern(medium, pattern string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(medium, strings.TrimSuffix(pattern, "*"))
	}
	return medium == pattern
}

// bucket returns the bucket name for a medium, "" if no pattern matches.
// Buckets are scanned in sorted name order so resolution is deterministic
// when patterns overlap.
func (s *PatternStrategy) bucket(medium string) string {
	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, pattern := range s.patterns[name] {
			if matchesPattern(medium, pattern) {
				return name
			}
		}
	}
	return ""
}

func (s *PatternStrategy) AreCompatible(a, b string) bool {
	if a == b {
		return true
	}
	bucketA := s.bucket(a)
	return bucketA != "" && bucketA == s.bucket(b)
}

func (s *PatternStrategy) GroupID(medium string) string {
	if bucket := s.bucket(medium); bucket != "" {
		return bucket
	}
	return medium
}

func (s *PatternStrategy) Describe(a, b string) string {
	switch {
	case a == b:
		return fmt.Sprintf("exact match (%s)", a)
	case s.AreCompatible(a, b):
		return fmt.Sprintf("pattern bucket %q (%s <-> %s)", s.bucket(a), a, b)
	default:
		return fmt.Sprintf("different buckets (%s / %s)", a, b)
	}
}
