// Package prompt asks the CLI questions interactively: which profile to
// render and where to write the result.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/profile"
)

// Settings holds the answers gathered by Run.
type Settings struct {
	Profile profile.Profile
	Output  string
}

// Run asks for the profile and output path, using current values as
// defaults. An existing output file needs confirmation before it is
// replaced; declining returns ErrAborted. An output of "-" means stdout and
// skips the check.
func Run(ctx context.Context, driver Driver, current Settings) (Settings, error) {
	if driver == nil {
		return Settings{}, errors.New("prompt: driver is required")
	}

	p, err := AskProfile(ctx, driver, current.Profile)
	if err != nil {
		return Settings{}, err
	}

	output, err := driver.Input(ctx, InputConfig{
		Message:   "Output file",
		Default:   current.Output,
		Help:      `Use "-" to print to stdout.`,
		Validator: requireValue,
	})
	if err != nil {
		return Settings{}, err
	}
	output = strings.TrimSpace(output)

	if output != "-" {
		if _, statErr := os.Stat(output); statErr == nil {
			ok, err := driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("%s exists. Overwrite?", output),
			})
			if err != nil {
				return Settings{}, err
			}
			if !ok {
				return Settings{}, ErrAborted
			}
		}
	}

	return Settings{Profile: p, Output: output}, nil
}

// AskProfile offers the three profiles with their budgets and returns the
// chosen one. current preselects an option; empty or unknown values
// preselect the default profile.
func AskProfile(ctx context.Context, driver Driver, current profile.Profile) (profile.Profile, error) {
	profiles := profile.All()
	options := make([]string, len(profiles))
	defaultIndex := 0
	for i, p := range profiles {
		options[i] = describe(p)
		if p == current || (!current.Valid() && p == profile.DefaultProfile) {
			defaultIndex = i
		}
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Profile",
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         "Larger profiles include every section of the smaller ones.",
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(profiles) {
		return "", fmt.Errorf("prompt: no profile at index %d", idx)
	}

	chosen := profiles[idx]
	if err := driver.Info(ctx, "Rendering "+describe(chosen)); err != nil {
		return "", err
	}
	return chosen, nil
}

func describe(p profile.Profile) string {
	limits, err := profile.LimitsFor(p)
	if err != nil {
		return p.String()
	}
	return fmt.Sprintf("%s (%d-%d lines, up to %d tokens)", p, limits.MinLines, limits.MaxLines, limits.MaxTokens)
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}
