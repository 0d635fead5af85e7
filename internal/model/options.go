package model

import "github.com/goliatone/go-agentsgen/pkg/profile"

// Caps bounds list facts for one profile. A negative value keeps the whole
// list.
type Caps struct {
	Directories int
	Notes       int
	EnvVars     int
}

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Labeler func(string) string
	Caps    map[profile.Profile]Caps
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
		Caps:    defaultCaps(),
	}
}

func defaultCaps() map[profile.Profile]Caps {
	return map[profile.Profile]Caps{
		profile.Compact:  {Directories: 6, Notes: 0, EnvVars: 0},
		profile.Standard: {Directories: 12, Notes: 3, EnvVars: 8},
		profile.Full:     {Directories: -1, Notes: -1, EnvVars: -1},
	}
}

func capList[T any](items []T, limit int) []T {
	if limit < 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}
