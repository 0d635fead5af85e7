package model

import internalmodel "github.com/goliatone/go-agentsgen/internal/model"

// Context re-exports the template context map.
type Context = internalmodel.Context

type Row = internalmodel.Row
type Operation = internalmodel.Operation
type Caps = internalmodel.Caps

// ErrInvalidDetection is returned when a detection result has no usable
// project identity.
var ErrInvalidDetection = internalmodel.ErrInvalidDetection

const (
	CapabilityMonorepo = internalmodel.CapabilityMonorepo
	CapabilityFrontend = internalmodel.CapabilityFrontend
	CapabilityBackend  = internalmodel.CapabilityBackend
	CapabilityLibrary  = internalmodel.CapabilityLibrary
)

const (
	KeyProfile       = internalmodel.KeyProfile
	KeyProjectName   = internalmodel.KeyProjectName
	KeyShowStandard  = internalmodel.KeyShowStandard
	KeyShowFull      = internalmodel.KeyShowFull
	KeyCapabilities  = internalmodel.KeyCapabilities
	KeyAPIOperations = internalmodel.KeyAPIOperations
	KeyHasAPI        = internalmodel.KeyHasAPI
)

// DefaultLabeler is the label function applied to extra script names.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
