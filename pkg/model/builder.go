package model

import (
	"github.com/goliatone/go-agentsgen/internal/model"
	"github.com/goliatone/go-agentsgen/pkg/detect"
	"github.com/goliatone/go-agentsgen/pkg/profile"
)

// Builder converts detection results into template contexts.
type Builder interface {
	Build(detection detect.Result, p profile.Profile) (Context, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler func(string) string
	caps    map[profile.Profile]Caps
}

// WithLabeler overrides the label generation used for extra scripts.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithCaps overrides the list caps for one profile.
func WithCaps(p profile.Profile, caps Caps) BuilderOption {
	return func(opts *builderOptions) {
		if opts.caps == nil {
			opts.caps = make(map[profile.Profile]Caps)
		}
		opts.caps[p] = caps
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{Caps: cfg.caps}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}

	return model.New(internalOpts)
}
