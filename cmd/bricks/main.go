// Package main provides the Bricks CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Bricks %s\n", version)
		return
	}

	fmt.Println("Bricks - Convolutional network bricks for Gorgonia")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Bricks:")
	fmt.Println("  Convolutional       2D convolution (valid/full border modes)")
	fmt.Println("  MaxPooling          2D max pooling")
	fmt.Println("  ConvolutionalLayer  convolution + activation + pooling")
	fmt.Println("  Flattener           [batch, ...] -> [batch, features]")
	fmt.Println("  Sequence            layer composition")
	fmt.Println("")
	fmt.Println("See examples/mnist-cnn for a complete model.")
}
