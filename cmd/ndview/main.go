// Package main provides the ndview CLI, which builds a tensor and prints it.
//
// Usage:
//
//	go run ./cmd/ndview -shape 2,3,4 -dist randn -seed 7 -transpose
//	go run ./cmd/ndview -shape 4,4 -dist range -save range.safetensors
//	go run ./cmd/ndview version
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndview/tensor"
	"github.com/pkg/errors"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("ndview %s\n", version)
		return
	}

	shapeFlag := flag.String("shape", "2,3", "Comma separated tensor shape")
	dist := flag.String("dist", "rand", "Contents: rand, randn, zeros or range")
	seed := flag.Uint64("seed", 42, "Seed for rand and randn")
	decimals := flag.Int("decimals", tensor.DefaultPrintOptions().MaxDecimals, "Maximum digits after the decimal point")
	transpose := flag.Bool("transpose", false, "Swap the last two axes before printing")
	save := flag.String("save", "", "Also write the tensor to this SafeTensors file")
	flag.Parse()

	shape, err := parseShape(*shapeFlag)
	if err != nil {
		log.Fatalf("Invalid -shape: %v", err)
	}

	x, err := build(*dist, *seed, shape)
	if err != nil {
		log.Fatalf("Failed to build tensor: %v", err)
	}

	if *transpose {
		x, err = x.T()
		if err != nil {
			log.Fatalf("Failed to transpose: %v", err)
		}
	}

	opts := tensor.DefaultPrintOptions()
	opts.MaxDecimals = *decimals
	opts.MaxExpDecimals = min(opts.MaxExpDecimals, *decimals)

	fmt.Printf("shape %v\n", x.Shape())
	fmt.Println(x.Format(opts))

	if *save != "" {
		if err := tensor.Save(*save, map[string]*tensor.Tensor{*dist: x}, map[string]string{"shape": x.Shape().String()}); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		fmt.Printf("saved to %s\n", *save)
	}

	if x.NumElements() == 0 {
		return
	}
	lo, _ := x.Min()
	hi, _ := x.Max()
	mean, _ := x.Mean()
	arg, _ := x.ArgMax()
	fmt.Printf("\nmin %g  max %g  mean %g  argmax %d\n", lo, hi, mean, arg)
}

func build(dist string, seed uint64, shape []int) (*tensor.Tensor, error) {
	switch dist {
	case "rand":
		return tensor.Rand(tensor.NewGenerator(seed), shape...)
	case "randn":
		return tensor.Randn(tensor.NewGenerator(seed), shape...)
	case "zeros":
		return tensor.Zeros(shape...)
	case "range":
		n := tensor.Shape(shape).NumElements()
		return tensor.FromSlice(tensor.ArangeN(n).Data(), shape...)
	default:
		return nil, errors.Errorf("unknown distribution %q", dist)
	}
}

func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "axis %q", p)
		}
		shape = append(shape, n)
	}
	return shape, nil
}
