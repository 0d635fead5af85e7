package tokens_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-agentsgen/pkg/tokens"
)

func TestEstimate(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"héllo wörld", 3},
		{strings.Repeat("x", 400), 100},
	}
	for _, tc := range cases {
		if got := tokens.Estimate(tc.in); got != tc.want {
			t.Fatalf("Estimate(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEstimate_Monotonic(t *testing.T) {
	prev := 0
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("word ")
		got := tokens.Estimate(b.String())
		if got < prev {
			t.Fatalf("estimate decreased from %d to %d at %d", prev, got, i)
		}
		prev = got
	}
}
