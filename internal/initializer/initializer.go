// Package initializer provides weight initialization strategies for
// graph-attached parameters.
//
// Each strategy produces a gorgonia.InitWFn, so it plugs straight into
// gorgonia.WithInit when a layer allocates its parameter nodes. Strategies
// support float32 and float64 parameters; random strategies accept an
// optional source for reproducible draws.
package initializer

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Initializer is a pluggable weight initialization strategy.
type Initializer interface {
	// Fn returns the initialization function handed to gorgonia.WithInit.
	Fn() gorgonia.InitWFn

	fmt.Stringer
}

// Constant initializes every element to a fixed value.
type Constant struct {
	Value float64
}

// NewConstant creates a constant-fill initializer.
func NewConstant(value float64) Constant {
	return Constant{Value: value}
}

// NewZeros creates a zero-fill initializer, the usual choice for biases.
func NewZeros() Constant {
	return Constant{}
}

// Fn returns the initialization function.
func (c Constant) Fn() gorgonia.InitWFn {
	return func(dt tensor.Dtype, s ...int) interface{} {
		n := tensor.Shape(s).TotalSize()
		switch dt {
		case tensor.Float64:
			data := make([]float64, n)
			for i := range data {
				data[i] = c.Value
			}
			return data
		case tensor.Float32:
			data := make([]float32, n)
			v := float32(c.Value)
			for i := range data {
				data[i] = v
			}
			return data
		}
		panic(fmt.Sprintf("initializer: constant does not support dtype %v", dt))
	}
}

// String returns a description of the strategy.
func (c Constant) String() string {
	return fmt.Sprintf("Constant(%g)", c.Value)
}

// Uniform draws from U(mean-width/2, mean+width/2).
type Uniform struct {
	Mean  float64
	Width float64

	// Src seeds the draws; nil uses the shared global source.
	Src rand.Source
}

// NewUniform creates a uniform initializer centered on mean.
func NewUniform(mean, width float64) Uniform {
	return Uniform{Mean: mean, Width: width}
}

// Fn returns the initialization function.
func (u Uniform) Fn() gorgonia.InitWFn {
	dist := distuv.Uniform{
		Min: u.Mean - u.Width/2,
		Max: u.Mean + u.Width/2,
		Src: u.Src,
	}
	return fill(dist.Rand)
}

// String returns a description of the strategy.
func (u Uniform) String() string {
	return fmt.Sprintf("Uniform(mean=%g, width=%g)", u.Mean, u.Width)
}

// IsotropicGaussian draws from N(mean, stddev).
type IsotropicGaussian struct {
	Mean   float64
	StdDev float64

	// Src seeds the draws; nil uses the shared global source.
	Src rand.Source
}

// NewIsotropicGaussian creates a gaussian initializer.
func NewIsotropicGaussian(mean, stddev float64) IsotropicGaussian {
	return IsotropicGaussian{Mean: mean, StdDev: stddev}
}

// Fn returns the initialization function.
func (g IsotropicGaussian) Fn() gorgonia.InitWFn {
	dist := distuv.Normal{Mu: g.Mean, Sigma: g.StdDev, Src: g.Src}
	return fill(dist.Rand)
}

// String returns a description of the strategy.
func (g IsotropicGaussian) String() string {
	return fmt.Sprintf("IsotropicGaussian(mean=%g, stddev=%g)", g.Mean, g.StdDev)
}

// GlorotUniform draws from U(-bound, bound) with
//
//	bound = gain * sqrt(6 / (fanIn + fanOut))
//
// For a 4D filter tensor [filters, channels, h, w] the fans are computed
// over the receptive field: fanIn = channels*h*w, fanOut = filters*h*w.
// This keeps activation variance roughly constant across layers and is the
// default weight initialization for Convolutional.
type GlorotUniform struct {
	// Gain scales the bound; zero means 1.
	Gain float64

	// Src seeds the draws; nil uses the shared global source.
	Src rand.Source
}

// NewGlorotUniform creates a Glorot (Xavier) uniform initializer.
func NewGlorotUniform(gain float64) GlorotUniform {
	return GlorotUniform{Gain: gain}
}

// Fn returns the initialization function.
func (g GlorotUniform) Fn() gorgonia.InitWFn {
	gain := g.Gain
	if gain == 0 {
		gain = 1
	}
	return func(dt tensor.Dtype, s ...int) interface{} {
		fanIn, fanOut := fans(s)
		n := tensor.Shape(s).TotalSize()
		switch dt {
		case tensor.Float64:
			bound := gain * math.Sqrt(6/float64(fanIn+fanOut))
			dist := distuv.Uniform{Min: -bound, Max: bound, Src: g.Src}
			data := make([]float64, n)
			for i := range data {
				data[i] = dist.Rand()
			}
			return data
		case tensor.Float32:
			bound := float32(gain) * math32.Sqrt(6/float32(fanIn+fanOut))
			dist := distuv.Uniform{Min: float64(-bound), Max: float64(bound), Src: g.Src}
			data := make([]float32, n)
			for i := range data {
				data[i] = float32(dist.Rand())
			}
			return data
		}
		panic(fmt.Sprintf("initializer: glorot does not support dtype %v", dt))
	}
}

// String returns a description of the strategy.
func (g GlorotUniform) String() string {
	gain := g.Gain
	if gain == 0 {
		gain = 1
	}
	return fmt.Sprintf("GlorotUniform(gain=%g)", gain)
}

// fans computes (fanIn, fanOut) for a weight shape. For shapes with more
// than two axes the trailing axes form the receptive field.
func fans(s []int) (fanIn, fanOut int) {
	switch len(s) {
	case 0:
		return 1, 1
	case 1:
		return s[0], s[0]
	}
	receptive := 1
	for _, d := range s[2:] {
		receptive *= d
	}
	return s[1] * receptive, s[0] * receptive
}

// fill adapts a float64 sampler into an InitWFn for both float dtypes.
func fill(sample func() float64) gorgonia.InitWFn {
	return func(dt tensor.Dtype, s ...int) interface{} {
		n := tensor.Shape(s).TotalSize()
		switch dt {
		case tensor.Float64:
			data := make([]float64, n)
			for i := range data {
				data[i] = sample()
			}
			return data
		case tensor.Float32:
			data := make([]float32, n)
			for i := range data {
				data[i] = float32(sample())
			}
			return data
		}
		panic(fmt.Sprintf("initializer: unsupported dtype %v", dt))
	}
}
