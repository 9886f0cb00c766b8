// Copyright 2026 The Bricks Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package initializer provides weight initialization strategies.
//
// Strategies implement the Initializer interface and plug into a layer via
// layers.WithWeightsInit:
//
//	conv := layers.NewConvolutional(6, 1, 5, 5,
//	    layers.WithWeightsInit(initializer.NewIsotropicGaussian(0, 0.01)))
//
// Random strategies accept an optional golang.org/x/exp/rand source for
// reproducible draws:
//
//	init := initializer.NewGlorotUniform(1)
//	init.Src = rand.NewSource(42)
package initializer

import (
	"github.com/bricks-ml/bricks/internal/initializer"
)

// Initializer is a pluggable weight initialization strategy.
type Initializer = initializer.Initializer

// Constant initializes every element to a fixed value.
type Constant = initializer.Constant

// NewConstant creates a constant-fill initializer.
func NewConstant(value float64) Constant {
	return initializer.NewConstant(value)
}

// NewZeros creates a zero-fill initializer.
func NewZeros() Constant {
	return initializer.NewZeros()
}

// Uniform draws from U(mean-width/2, mean+width/2).
type Uniform = initializer.Uniform

// NewUniform creates a uniform initializer centered on mean.
func NewUniform(mean, width float64) Uniform {
	return initializer.NewUniform(mean, width)
}

// IsotropicGaussian draws from N(mean, stddev).
type IsotropicGaussian = initializer.IsotropicGaussian

// NewIsotropicGaussian creates a gaussian initializer.
func NewIsotropicGaussian(mean, stddev float64) IsotropicGaussian {
	return initializer.NewIsotropicGaussian(mean, stddev)
}

// GlorotUniform draws from the Glorot (Xavier) uniform distribution.
type GlorotUniform = initializer.GlorotUniform

// NewGlorotUniform creates a Glorot uniform initializer.
func NewGlorotUniform(gain float64) GlorotUniform {
	return initializer.NewGlorotUniform(gain)
}
