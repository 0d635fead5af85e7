package profile_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/profile"
)

func TestLimitsFor_Table(t *testing.T) {
	want := map[profile.Profile]profile.Limits{
		profile.Compact:  {MinLines: 50, MaxLines: 110, MinTokens: 0, MaxTokens: 900},
		profile.Standard: {MinLines: 150, MaxLines: 230, MinTokens: 0, MaxTokens: 1600},
		profile.Full:     {MinLines: 220, MaxLines: 360, MinTokens: 0, MaxTokens: 2400},
	}

	got := make(map[profile.Profile]profile.Limits)
	for _, p := range profile.All() {
		limits, err := profile.LimitsFor(p)
		if err != nil {
			t.Fatalf("limits for %s: %v", p, err)
		}
		got[p] = limits
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("limits mismatch (-want +got):\n%s", diff)
	}
}

func TestLimitsFor_Unknown(t *testing.T) {
	if _, err := profile.LimitsFor("verbose"); !errors.Is(err, profile.ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]profile.Profile{
		"":           profile.DefaultProfile,
		"compact":    profile.Compact,
		" Standard ": profile.Standard,
		"FULL":       profile.Full,
	}
	for raw, want := range cases {
		got, err := profile.Parse(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %s, got %s", raw, want, got)
		}
	}

	if _, err := profile.Parse("tiny"); !errors.Is(err, profile.ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestDefaultProfileIsCompact(t *testing.T) {
	if profile.DefaultProfile != profile.Compact {
		t.Fatalf("default profile = %s, want compact", profile.DefaultProfile)
	}
}

func TestIncludes(t *testing.T) {
	if !profile.Full.Includes(profile.Standard) || !profile.Full.Includes(profile.Compact) {
		t.Fatalf("full should include standard and compact")
	}
	if profile.Compact.Includes(profile.Standard) {
		t.Fatalf("compact must not include standard")
	}
	if profile.Profile("other").Includes(profile.Compact) {
		t.Fatalf("unknown profile must not include anything")
	}
}
