package layers

import (
	"fmt"

	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/bricks-ml/bricks/internal/initializer"
)

// Convolutional performs a 2D convolution.
//
// Input shape:  [batch, channels, height, width]
// Filter shape: [numFilters, numChannels, filterH, filterW]
// Output shape: [batch, numFilters, outH, outW]
//
// The output spatial size depends on the border mode. For Valid it is
// (i - f)/step + 1, for Full it is (i + f - 2)/step + 1.
//
// The filter tensor is allocated on the input's expression graph the first
// time Apply is called, initialized by the configured strategy, and then
// held as a graph input to be mutated only by an external training loop.
// The layer carries no bias unless WithBias is given.
//
// Example:
//
//	conv := layers.NewConvolutional(6, 1, 5, 5)        // 1 -> 6 channels, 5x5 filters
//	out, err := conv.Apply(x)                          // [batch, 6, 24, 24] for 28x28 input
type Convolutional struct {
	filterSize  [2]int
	numFilters  int
	numChannels int
	step        [2]int
	mode        BorderMode
	weightsInit initializer.Initializer
	useBias     bool
	name        string

	w *gorgonia.Node // [numFilters, numChannels, filterH, filterW]
	b *gorgonia.Node // [numFilters] or nil
}

// ConvOpt configures a Convolutional layer.
type ConvOpt func(*Convolutional)

// WithStep sets the convolution stride. Defaults to (1, 1).
func WithStep(stepH, stepW int) ConvOpt {
	return func(c *Convolutional) { c.step = [2]int{stepH, stepW} }
}

// WithBorderMode sets the edge policy. Defaults to Valid.
func WithBorderMode(mode BorderMode) ConvOpt {
	return func(c *Convolutional) { c.mode = mode }
}

// WithWeightsInit sets the filter initialization strategy. Defaults to
// GlorotUniform with gain 1.
func WithWeightsInit(init initializer.Initializer) ConvOpt {
	return func(c *Convolutional) { c.weightsInit = init }
}

// WithBias adds a per-filter bias term, zero-initialized and broadcast
// over the batch and spatial axes.
func WithBias() ConvOpt {
	return func(c *Convolutional) { c.useBias = true }
}

// WithName sets the name prefix of the layer's parameter nodes. Defaults
// to "conv".
func WithName(name string) ConvOpt {
	return func(c *Convolutional) { c.name = name }
}

// NewConvolutional creates a 2D convolution layer.
//
// numFilters is the number of output feature maps, numChannels the number
// of input channels (1 for grayscale input, or the previous layer's filter
// count), and filterH x filterW the filter size.
func NewConvolutional(numFilters, numChannels, filterH, filterW int, opts ...ConvOpt) *Convolutional {
	if numFilters <= 0 || numChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", numChannels, numFilters))
	}
	if filterH <= 0 || filterW <= 0 {
		panic(fmt.Sprintf("conv2d: invalid filter size h=%d, w=%d", filterH, filterW))
	}

	c := &Convolutional{
		filterSize:  [2]int{filterH, filterW},
		numFilters:  numFilters,
		numChannels: numChannels,
		step:        [2]int{1, 1},
		mode:        Valid,
		weightsInit: initializer.NewGlorotUniform(1),
		name:        "conv",
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.step[0] <= 0 || c.step[1] <= 0 {
		panic(fmt.Sprintf("conv2d: invalid step (%d, %d)", c.step[0], c.step[1]))
	}
	if c.mode != Valid && c.mode != Full {
		panic(fmt.Sprintf("conv2d: invalid border mode %d", int(c.mode)))
	}
	return c
}

// Apply builds the convolution over x and returns the feature-map node.
//
// x must be 4D [batch, channels, height, width] with the channel count the
// layer was configured for. Parameters are allocated on x's graph on the
// first call; applying the layer to a node from a different graph
// afterwards is an error.
func (c *Convolutional) Apply(x *gorgonia.Node) (*gorgonia.Node, error) {
	if err := checkImage4D("conv2d", x); err != nil {
		return nil, err
	}
	if x.Shape()[1] != c.numChannels {
		return nil, errors.Errorf("conv2d: input has %d channels, layer expects %d",
			x.Shape()[1], c.numChannels)
	}
	if c.w != nil && c.w.Graph() != x.Graph() {
		return nil, errors.New("conv2d: parameters already allocated on a different graph")
	}

	if c.w == nil {
		c.w = gorgonia.NewTensor(x.Graph(), x.Dtype(), 4,
			gorgonia.WithShape(c.numFilters, c.numChannels, c.filterSize[0], c.filterSize[1]),
			gorgonia.WithName(c.name+".w"),
			gorgonia.WithInit(c.weightsInit.Fn()))
	}

	pad := c.mode.Padding(c.filterSize[0], c.filterSize[1])
	out, err := gorgonia.Conv2d(x, c.w,
		tensor.Shape{c.filterSize[0], c.filterSize[1]},
		pad[:], c.step[:], []int{1, 1})
	if err != nil {
		return nil, errors.Wrap(err, "conv2d: can't build convolution operation")
	}

	if !c.useBias {
		return out, nil
	}

	if c.b == nil {
		c.b = gorgonia.NewTensor(x.Graph(), x.Dtype(), 1,
			gorgonia.WithShape(c.numFilters),
			gorgonia.WithName(c.name+".b"),
			gorgonia.WithInit(initializer.NewZeros().Fn()))
	}
	rb, err := gorgonia.Reshape(c.b, tensor.Shape{1, c.numFilters, 1, 1})
	if err != nil {
		return nil, errors.Wrap(err, "conv2d: can't reshape bias")
	}
	out, err = gorgonia.BroadcastAdd(out, rb, nil, []byte{0, 2, 3})
	if err != nil {
		return nil, errors.Wrap(err, "conv2d: can't add bias")
	}
	return out, nil
}

// Params returns the filter node and, when bias is enabled, the bias node.
// It returns nil before the first Apply.
func (c *Convolutional) Params() []*gorgonia.Node {
	if c.w == nil {
		return nil
	}
	if c.useBias && c.b != nil {
		return []*gorgonia.Node{c.w, c.b}
	}
	return []*gorgonia.Node{c.w}
}

// WeightNorm returns a scalar node holding the L2 norm of the filters,
// built from graph primitives so it can be fetched alongside the layer
// output for monitoring. It is an error to call it before Apply has
// allocated the filters.
func (c *Convolutional) WeightNorm() (*gorgonia.Node, error) {
	if c.w == nil {
		return nil, errors.New("conv2d: filters not allocated yet, apply the layer first")
	}
	sq, err := gorgonia.Square(c.w)
	if err != nil {
		return nil, errors.Wrap(err, "conv2d: can't square filters")
	}
	sum, err := gorgonia.Sum(sq)
	if err != nil {
		return nil, errors.Wrap(err, "conv2d: can't sum squared filters")
	}
	norm, err := gorgonia.Sqrt(sum)
	if err != nil {
		return nil, errors.Wrap(err, "conv2d: can't take square root")
	}
	return norm, nil
}

// String returns a string representation of the layer.
func (c *Convolutional) String() string {
	return fmt.Sprintf("Convolutional(filters=%d, channels=%d, filter=(%d, %d), step=(%d, %d), mode=%s, bias=%v)",
		c.numFilters, c.numChannels,
		c.filterSize[0], c.filterSize[1],
		c.step[0], c.step[1], c.mode, c.useBias)
}

// NumFilters returns the number of filters (output channels).
func (c *Convolutional) NumFilters() int {
	return c.numFilters
}

// NumChannels returns the number of input channels.
func (c *Convolutional) NumChannels() int {
	return c.numChannels
}

// FilterSize returns the filter size [height, width].
func (c *Convolutional) FilterSize() [2]int {
	return c.filterSize
}

// Step returns the stride [height, width].
func (c *Convolutional) Step() [2]int {
	return c.step
}

// Mode returns the border mode.
func (c *Convolutional) Mode() BorderMode {
	return c.mode
}

// W returns the filter node, or nil before the first Apply.
func (c *Convolutional) W() *gorgonia.Node {
	return c.w
}

// B returns the bias node, or nil when bias is disabled or not yet
// allocated.
func (c *Convolutional) B() *gorgonia.Node {
	return c.b
}

// OutputSize computes the output spatial size [outH, outW] for the given
// input spatial size.
func (c *Convolutional) OutputSize(inH, inW int) [2]int {
	return ConvOutputSize(inH, inW, c.filterSize[0], c.filterSize[1], c.step[0], c.step[1], c.mode)
}
