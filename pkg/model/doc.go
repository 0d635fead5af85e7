// Package model defines the template context consumed by the AGENTS
// renderers. Builders reside in internal/model but return the types defined
// here. A context is a plain map: scalar strings, `has_*` flags for every
// optional section, `show_standard`/`show_full` profile flags for static
// guidance blocks, lists of label/value rows, and the nested `capabilities`
// map the template selector reads. Facts exposed at compact are always present,
// unchanged, at standard and full; list facts are shortened by per-profile
// caps rather than reformatted. Placeholder values such as "null" or "N/A" are
// dropped so templates never have to guard against them.
package model
