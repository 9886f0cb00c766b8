package layers

import (
	"fmt"

	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// MaxPooling downsamples spatial input by taking the maximum value in each
// pooling window. It has no learnable parameters.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, (height-poolH)/stepH + 1, (width-poolW)/stepW + 1]
//
// The step defaults to the pooling size, which gives non-overlapping
// windows; a smaller step gives overlapping pooling. Partial windows at
// the border are dropped.
//
// Example:
//
//	pool := layers.NewMaxPooling(2, 2)     // halves both spatial dimensions
//	out, err := pool.Apply(x)
type MaxPooling struct {
	poolingSize [2]int
	step        [2]int
}

// PoolOpt configures a MaxPooling layer.
type PoolOpt func(*MaxPooling)

// WithPoolingStep sets the shift between pooling windows. Defaults to the
// pooling size (non-overlapping windows).
func WithPoolingStep(stepH, stepW int) PoolOpt {
	return func(m *MaxPooling) { m.step = [2]int{stepH, stepW} }
}

// NewMaxPooling creates a 2D max pooling layer with a poolH x poolW
// window.
func NewMaxPooling(poolH, poolW int, opts ...PoolOpt) *MaxPooling {
	if poolH <= 0 || poolW <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid pooling size (%d, %d)", poolH, poolW))
	}

	m := &MaxPooling{
		poolingSize: [2]int{poolH, poolW},
		step:        [2]int{poolH, poolW},
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.step[0] <= 0 || m.step[1] <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid step (%d, %d)", m.step[0], m.step[1]))
	}
	return m
}

// Apply builds the pooling over x and returns the downsampled node.
func (m *MaxPooling) Apply(x *gorgonia.Node) (*gorgonia.Node, error) {
	if err := checkImage4D("maxpool2d", x); err != nil {
		return nil, err
	}

	out, err := gorgonia.MaxPool2D(x,
		tensor.Shape{m.poolingSize[0], m.poolingSize[1]},
		[]int{0, 0}, m.step[:])
	if err != nil {
		return nil, errors.Wrap(err, "maxpool2d: can't build pooling operation")
	}
	return out, nil
}

// Params returns nil: max pooling has no learnable parameters.
func (m *MaxPooling) Params() []*gorgonia.Node {
	return nil
}

// String returns a string representation of the layer.
func (m *MaxPooling) String() string {
	return fmt.Sprintf("MaxPooling(size=(%d, %d), step=(%d, %d))",
		m.poolingSize[0], m.poolingSize[1], m.step[0], m.step[1])
}

// PoolingSize returns the pooling window size [height, width].
func (m *MaxPooling) PoolingSize() [2]int {
	return m.poolingSize
}

// Step returns the shift between pooling windows [height, width].
func (m *MaxPooling) Step() [2]int {
	return m.step
}

// OutputSize computes the output spatial size [outH, outW] for the given
// input spatial size.
func (m *MaxPooling) OutputSize(inH, inW int) [2]int {
	return PoolOutputSize(inH, inW, m.poolingSize[0], m.poolingSize[1], m.step[0], m.step[1])
}
