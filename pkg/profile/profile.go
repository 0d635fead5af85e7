// Package profile defines the verbosity tiers an AGENTS document can be
// rendered at, together with the line and token budgets each tier is validated
// against. The budget table is fixed at compile time; callers read it through
// LimitsFor and never mutate it.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// Profile names a verbosity tier.
type Profile string

const (
	Compact  Profile = "compact"
	Standard Profile = "standard"
	Full     Profile = "full"
)

// DefaultProfile applies whenever a caller leaves the profile empty.
const DefaultProfile = Compact

// ErrUnknownProfile reports a profile name outside the closed set.
var ErrUnknownProfile = errors.New("profile: unknown profile")

// Limits is the size budget for one profile. A MinTokens of zero disables the
// lower token bound.
type Limits struct {
	MinLines  int `json:"minLines"`
	MaxLines  int `json:"maxLines"`
	MinTokens int `json:"minTokens"`
	MaxTokens int `json:"maxTokens"`
}

// All returns every profile ordered from least to most verbose.
func All() []Profile {
	return []Profile{Compact, Standard, Full}
}

// Parse resolves a user supplied name. Matching ignores case and surrounding
// whitespace; an empty name resolves to DefaultProfile.
func Parse(raw string) (Profile, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return DefaultProfile, nil
	}
	p := Profile(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, raw)
	}
	return p, nil
}

// Valid reports whether p is one of the known profiles.
func (p Profile) Valid() bool {
	return p.rank() >= 0
}

func (p Profile) String() string {
	return string(p)
}

// Includes reports whether content gated at other is part of p. Standard
// includes compact, full includes both.
func (p Profile) Includes(other Profile) bool {
	if !p.Valid() || !other.Valid() {
		return false
	}
	return p.rank() >= other.rank()
}

func (p Profile) rank() int {
	switch p {
	case Compact:
		return 0
	case Standard:
		return 1
	case Full:
		return 2
	default:
		return -1
	}
}

// LimitsFor returns the budget for p.
func LimitsFor(p Profile) (Limits, error) {
	switch p {
	case Compact:
		return Limits{MinLines: 50, MaxLines: 110, MinTokens: 0, MaxTokens: 900}, nil
	case Standard:
		return Limits{MinLines: 150, MaxLines: 230, MinTokens: 0, MaxTokens: 1600}, nil
	case Full:
		return Limits{MinLines: 220, MaxLines: 360, MinTokens: 0, MaxTokens: 2400}, nil
	default:
		return Limits{}, fmt.Errorf("%w: %q", ErrUnknownProfile, string(p))
	}
}
