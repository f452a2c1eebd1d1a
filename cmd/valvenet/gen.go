package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/network"
)

// generate builds a synthetic network from a shape spec and a rate spec.
//
//	shape: path:N | cycle:N | star:N | complete:N | grid:R:C | random:N:P
//	rates: K (constant) | LO:HI (uniform) | PZERO:LO:HI (sparse)
func generate(shape, rates string, seed int64) (*network.Network, error) {
	con, err := parseShape(shape)
	if err != nil {
		return nil, err
	}
	rateOpt, err := parseRates(rates)
	if err != nil {
		return nil, err
	}

	return builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSeed(seed), rateOpt, builder.WithZeroStart()},
		con,
	)
}

// sized maps single-parameter shapes to their constructors.
var sized = map[string]func(int) builder.Constructor{
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"star":     builder.Star,
	"complete": builder.Complete,
}

func parseShape(spec string) (builder.Constructor, error) {
	parts := strings.Split(spec, ":")
	ints := func(want int) ([]int, error) {
		if len(parts)-1 != want {
			return nil, fmt.Errorf("shape %q: want %d parameter(s)", spec, want)
		}
		out := make([]int, want)
		for i, s := range parts[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("shape %q: %w", spec, err)
			}
			out[i] = n
		}
		return out, nil
	}

	switch parts[0] {
	case "path", "cycle", "star", "complete":
		n, err := ints(1)
		if err != nil {
			return nil, err
		}
		return sized[parts[0]](n[0]), nil
	case "grid":
		rc, err := ints(2)
		if err != nil {
			return nil, err
		}
		return builder.Grid(rc[0], rc[1]), nil
	case "random":
		if len(parts) != 3 {
			return nil, fmt.Errorf("shape %q: want random:N:P", spec)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		p, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", spec)
	}
}

func parseRates(spec string) (builder.BuilderOption, error) {
	parts := strings.Split(spec, ":")
	nums := make([]float64, len(parts))
	for i, s := range parts {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("rates %q: %w", spec, err)
		}
		nums[i] = f
	}

	// option constructors panic on meaningless ranges; check first
	switch len(nums) {
	case 1:
		if nums[0] < 0 {
			return nil, fmt.Errorf("rates %q: negative rate", spec)
		}
		return builder.WithConstantRate(int(nums[0])), nil
	case 2:
		if nums[0] < 0 || nums[1] < nums[0] {
			return nil, fmt.Errorf("rates %q: want 0 ≤ LO ≤ HI", spec)
		}
		return builder.WithUniformRates(int(nums[0]), int(nums[1])), nil
	case 3:
		if nums[0] < builder.MinProbability || nums[0] > builder.MaxProbability || nums[1] < 0 || nums[2] < nums[1] {
			return nil, fmt.Errorf("rates %q: want PZERO in [0,1] and 0 ≤ LO ≤ HI", spec)
		}
		return builder.WithSparseRates(nums[0], int(nums[1]), int(nums[2])), nil
	default:
		return nil, fmt.Errorf("rates %q: want K, LO:HI or PZERO:LO:HI", spec)
	}
}
