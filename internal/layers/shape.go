package layers

import "fmt"

// BorderMode is the edge policy applied during convolution.
//
// Valid performs no padding: the filter only visits positions where it
// fully overlaps the input, so output spatial size is
//
//	(i - f) / step + 1
//
// Full pads with filter_size-1 zeros on each side so every partial overlap
// produces an output element:
//
//	(i + f - 2) / step + 1
type BorderMode int

const (
	// Valid applies no padding (output shrinks by filter-1).
	Valid BorderMode = iota
	// Full applies maximal padding (output grows by filter-1).
	Full
)

// String returns the border mode name.
func (m BorderMode) String() string {
	switch m {
	case Valid:
		return "valid"
	case Full:
		return "full"
	}
	return fmt.Sprintf("BorderMode(%d)", int(m))
}

// Padding returns the zero padding [padH, padW] this border mode implies
// for a filter of the given size.
func (m BorderMode) Padding(filterH, filterW int) [2]int {
	switch m {
	case Valid:
		return [2]int{0, 0}
	case Full:
		return [2]int{filterH - 1, filterW - 1}
	}
	panic(fmt.Sprintf("layers: unknown border mode %d", int(m)))
}

// ConvOutputSize computes the spatial output size [outH, outW] of a 2D
// convolution, before any graph is built. Useful for sizing the layers
// that follow (e.g. the first dense layer after a Flattener).
func ConvOutputSize(inH, inW, filterH, filterW, stepH, stepW int, mode BorderMode) [2]int {
	pad := mode.Padding(filterH, filterW)
	outH := (inH+2*pad[0]-filterH)/stepH + 1
	outW := (inW+2*pad[1]-filterW)/stepW + 1
	return [2]int{outH, outW}
}

// PoolOutputSize computes the spatial output size [outH, outW] of a 2D max
// pooling. Partial windows at the border are dropped (floor division), the
// same policy the pooling kernel itself applies.
func PoolOutputSize(inH, inW, poolH, poolW, stepH, stepW int) [2]int {
	outH := (inH-poolH)/stepH + 1
	outW := (inW-poolW)/stepW + 1
	return [2]int{outH, outW}
}
