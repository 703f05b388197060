// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import "github.com/succinctgo/strie/internal/bp"

// buildConfig holds construction-time tuning shared by all three Build
// functions.
type buildConfig struct {
	cutoff int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{cutoff: bp.DefaultCutoff}
}

// Option tunes a Build call. The zero value of every option is the
// teacher-idiom default: Build(keys) with no options behaves exactly
// like Build(keys, WithRecursionCutoff(bp.DefaultCutoff)).
type Option func(*buildConfig)

// WithRecursionCutoff sets the bit length at or below which BpSupport
// stops recursing through pioneer levels and stores an explicit
// find-close table instead. Lower values exercise more recursion levels
// on smaller inputs, which is what property tests use it for.
func WithRecursionCutoff(n int) Option {
	return func(c *buildConfig) { c.cutoff = n }
}
