package initializer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gorgonia.org/tensor"
)

// TestConstant_Fill tests constant fill for both float dtypes.
func TestConstant_Fill(t *testing.T) {
	fn := NewConstant(0.5).Fn()

	f32 := fn(tensor.Float32, 2, 3).([]float32)
	require.Len(t, f32, 6)
	for _, v := range f32 {
		require.Equal(t, float32(0.5), v)
	}

	f64 := fn(tensor.Float64, 4).([]float64)
	require.Len(t, f64, 4)
	for _, v := range f64 {
		require.Equal(t, 0.5, v)
	}
}

// TestZeros tests the bias default.
func TestZeros(t *testing.T) {
	data := NewZeros().Fn()(tensor.Float32, 3, 3).([]float32)
	for _, v := range data {
		require.Zero(t, v)
	}
}

// TestUniform_Range tests that draws stay within the configured width.
func TestUniform_Range(t *testing.T) {
	u := NewUniform(1, 0.5)
	u.Src = rand.NewSource(1)

	data := u.Fn()(tensor.Float64, 100, 10).([]float64)
	require.Len(t, data, 1000)

	distinct := false
	for i, v := range data {
		require.GreaterOrEqual(t, v, 0.75, "draw %d below mean-width/2", i)
		require.LessOrEqual(t, v, 1.25, "draw %d above mean+width/2", i)
		if v != data[0] {
			distinct = true
		}
	}
	require.True(t, distinct, "uniform draws should not be constant")
}

// TestIsotropicGaussian_Moments tests sample mean and stddev on a large
// draw.
func TestIsotropicGaussian_Moments(t *testing.T) {
	g := NewIsotropicGaussian(2, 0.1)
	g.Src = rand.NewSource(42)

	data := g.Fn()(tensor.Float64, 100, 100).([]float64)
	require.Len(t, data, 10000)

	mean, std := stat.MeanStdDev(data, nil)
	require.InDelta(t, 2.0, mean, 0.01)
	require.InDelta(t, 0.1, std, 0.01)
}

// TestGlorotUniform_Bound tests the Glorot bound on a conv filter shape.
func TestGlorotUniform_Bound(t *testing.T) {
	g := NewGlorotUniform(1)
	g.Src = rand.NewSource(7)

	// Filter shape [6, 1, 5, 5]: fanIn = 1*25, fanOut = 6*25.
	data := g.Fn()(tensor.Float64, 6, 1, 5, 5).([]float64)
	require.Len(t, data, 150)

	bound := math.Sqrt(6.0 / float64(25+150))
	for i, v := range data {
		require.LessOrEqual(t, math.Abs(v), bound, "draw %d outside glorot bound", i)
	}
}

// TestGlorotUniform_Gain tests that the gain widens the bound.
func TestGlorotUniform_Gain(t *testing.T) {
	g := NewGlorotUniform(3)
	g.Src = rand.NewSource(7)

	data := g.Fn()(tensor.Float32, 10, 10).([]float32)
	bound := 3 * math.Sqrt(6.0/20)
	outsideUnit := false
	for _, v := range data {
		require.LessOrEqual(t, math.Abs(float64(v)), bound)
		if math.Abs(float64(v)) > math.Sqrt(6.0/20) {
			outsideUnit = true
		}
	}
	require.True(t, outsideUnit, "gain=3 draws should exceed the gain=1 bound")
}

// TestFans tests fan computation across shapes.
func TestFans(t *testing.T) {
	tests := []struct {
		shape         []int
		fanIn, fanOut int
	}{
		{[]int{10, 20}, 20, 10},
		{[]int{6, 1, 5, 5}, 25, 150},
		{[]int{16, 6, 3, 3}, 54, 144},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		fanIn, fanOut := fans(tt.shape)
		require.Equal(t, tt.fanIn, fanIn, "fanIn for %v", tt.shape)
		require.Equal(t, tt.fanOut, fanOut, "fanOut for %v", tt.shape)
	}
}

// TestStrings tests the readable forms used in layer summaries.
func TestStrings(t *testing.T) {
	require.Equal(t, "Constant(0)", NewZeros().String())
	require.Equal(t, "Uniform(mean=0, width=0.05)", NewUniform(0, 0.05).String())
	require.Equal(t, "IsotropicGaussian(mean=0, stddev=0.01)", NewIsotropicGaussian(0, 0.01).String())
	require.Equal(t, "GlorotUniform(gain=1)", NewGlorotUniform(0).String())
}
