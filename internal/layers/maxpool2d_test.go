package layers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// TestMaxPooling_Creation tests layer creation and the step default.
func TestMaxPooling_Creation(t *testing.T) {
	pool := NewMaxPooling(2, 2)

	if pool.PoolingSize() != [2]int{2, 2} {
		t.Errorf("Expected pooling size (2, 2), got %v", pool.PoolingSize())
	}
	// Step defaults to the pooling size.
	if pool.Step() != [2]int{2, 2} {
		t.Errorf("Expected default step (2, 2), got %v", pool.Step())
	}

	if params := pool.Params(); len(params) != 0 {
		t.Errorf("Expected 0 parameters (pooling has no learnable params), got %d", len(params))
	}

	require.Panics(t, func() { NewMaxPooling(0, 2) })
	require.Panics(t, func() { NewMaxPooling(2, 2, WithPoolingStep(0, 2)) })
}

// TestMaxPooling_ApplyShape tests forward output shape.
func TestMaxPooling_ApplyShape(t *testing.T) {
	g := gorgonia.NewGraph()
	x := gorgonia.NewTensor(g, tensor.Float32, 4,
		gorgonia.WithShape(2, 3, 28, 28), gorgonia.WithName("x"))

	pool := NewMaxPooling(2, 2)
	out, err := pool.Apply(x)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// (28 - 2)/2 + 1 = 14
	expected := tensor.Shape{2, 3, 14, 14}
	if !out.Shape().Eq(expected) {
		t.Errorf("Output shape: expected %v, got %v", expected, out.Shape())
	}
}

// TestMaxPooling_Values tests pooling with known values.
func TestMaxPooling_Values(t *testing.T) {
	g := gorgonia.NewGraph()
	x := gorgonia.NewTensor(g, tensor.Float32, 4,
		gorgonia.WithShape(1, 1, 4, 4), gorgonia.WithName("x"))

	pool := NewMaxPooling(2, 2)
	out, err := pool.Apply(x)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Input:
	//  1  2  3  4        Max in each 2x2 window:
	//  5  6  7  8    ->   6  8
	//  9 10 11 12        14 16
	// 13 14 15 16
	backing := make([]float32, 16)
	for i := range backing {
		backing[i] = float32(i + 1)
	}
	if err := gorgonia.Let(x, tensor.New(tensor.WithShape(1, 1, 4, 4), tensor.WithBacking(backing))); err != nil {
		t.Fatalf("Let failed: %v", err)
	}

	m := gorgonia.NewTapeMachine(g)
	defer m.Close()
	if err := m.RunAll(); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	expected := []float32{6, 8, 14, 16}
	got := out.Value().Data().([]float32)
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("Output[%d]: expected %.1f, got %.1f", i, exp, got[i])
		}
	}
}

// TestMaxPooling_OverlappingStep tests pooling with step < pooling size.
func TestMaxPooling_OverlappingStep(t *testing.T) {
	g := gorgonia.NewGraph()
	x := gorgonia.NewTensor(g, tensor.Float32, 4,
		gorgonia.WithShape(1, 1, 7, 7), gorgonia.WithName("x"))

	pool := NewMaxPooling(3, 3, WithPoolingStep(2, 2))
	out, err := pool.Apply(x)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// (7 - 3)/2 + 1 = 3
	expected := tensor.Shape{1, 1, 3, 3}
	if !out.Shape().Eq(expected) {
		t.Errorf("Output shape: expected %v, got %v", expected, out.Shape())
	}
}

// TestMaxPooling_BadRank tests input rank validation.
func TestMaxPooling_BadRank(t *testing.T) {
	g := gorgonia.NewGraph()
	x := gorgonia.NewMatrix(g, tensor.Float32,
		gorgonia.WithShape(4, 4), gorgonia.WithName("x"))

	pool := NewMaxPooling(2, 2)
	if _, err := pool.Apply(x); err == nil {
		t.Error("Expected error for 2D input, got nil")
	}
}

// TestMaxPooling_OutputSize tests the pooling shape arithmetic.
func TestMaxPooling_OutputSize(t *testing.T) {
	tests := []struct {
		poolH, poolW int
		stepH, stepW int
		inH, inW     int
		expH, expW   int
	}{
		{2, 2, 2, 2, 28, 28, 14, 14},
		{2, 2, 2, 2, 24, 24, 12, 12},
		{3, 3, 2, 2, 7, 7, 3, 3},
		{2, 2, 1, 1, 5, 5, 4, 4},
		// Partial border windows are dropped.
		{2, 2, 2, 2, 5, 5, 2, 2},
	}

	for _, tt := range tests {
		pool := NewMaxPooling(tt.poolH, tt.poolW, WithPoolingStep(tt.stepH, tt.stepW))
		got := pool.OutputSize(tt.inH, tt.inW)
		if got != [2]int{tt.expH, tt.expW} {
			t.Errorf("%dx%d pool, step (%d,%d), input %dx%d: expected (%d, %d), got %v",
				tt.poolH, tt.poolW, tt.stepH, tt.stepW,
				tt.inH, tt.inW, tt.expH, tt.expW, got)
		}
	}
}
