// Package agentsgen renders AGENTS.md guidance documents for coding agents
// from a project detection summary and validates the result against the
// size budget of the chosen profile.
//
// Most callers need a single call:
//
//	result, err := agentsgen.RenderAgentsMd(detection, agentsgen.ProfileStandard)
//
// Use NewOrchestrator when stages need replacing.
package agentsgen

import (
	"github.com/goliatone/go-agentsgen/pkg/detect"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
	"github.com/goliatone/go-agentsgen/pkg/profile"
	"github.com/goliatone/go-agentsgen/pkg/validation"
)

// Detection aliases detect.Result.
type Detection = detect.Result

// Profile aliases profile.Profile.
type Profile = profile.Profile

// GenerationResult aliases orchestrator.GenerationResult.
type GenerationResult = orchestrator.GenerationResult

// ValidationResult aliases validation.Result.
type ValidationResult = validation.Result

// Profiles re-exported for convenience.
const (
	ProfileCompact  = profile.Compact
	ProfileStandard = profile.Standard
	ProfileFull     = profile.Full
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderAgentsMd renders and validates an AGENTS.md document using the
// built-in stages. An empty profile renders the compact variant.
func RenderAgentsMd(detection Detection, p Profile, options ...orchestrator.Option) (GenerationResult, error) {
	return orchestrator.New(options...).Generate(orchestrator.Request{
		Detection: detection,
		Profile:   p,
	})
}

// Validate checks already rendered content against the profile budgets.
func Validate(content string, p Profile) ValidationResult {
	return validation.Validate(content, p)
}
