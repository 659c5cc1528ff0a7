package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mininumpy/mininumpy/internal/creation"
	"github.com/mininumpy/mininumpy/internal/ndarray"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build arrays from shapes and ranges",
	}

	var shape []int
	filled := func(use, short string, fill func(...int) (*ndarray.Array, error)) *cobra.Command {
		c := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out, err := fill(shape...)
				if err != nil {
					return failed(err)
				}
				return a.print(cmd, out)
			},
		}
		c.Flags().IntSliceVar(&shape, "shape", nil, "array shape, e.g. 2,3 (empty for a scalar)")
		return c
	}

	cmd.AddCommand(
		filled("zeros", "Array of zeros", creation.Zeros),
		filled("ones", "Array of ones", creation.Ones),
		&cobra.Command{
			Use:   "eye N",
			Short: "N by N identity matrix",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return failed(fmt.Errorf("%w: eye size %q: %w", ndarray.ErrValue, args[0], err))
				}
				out, err := creation.Eye(n)
				if err != nil {
					return failed(err)
				}
				return a.print(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "arange START STOP [STEP]",
			Short: "Evenly stepped values in [START, STOP)",
			Long: `Evenly stepped values in [START, STOP). STEP defaults to 1.
Integer arguments build an int64 array; any decimal argument builds a float64 array.`,
			Args: cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 2 {
					args = append(args, "1")
				}
				out, err := arange(args[0], args[1], args[2])
				if err != nil {
					return failed(err)
				}
				return a.print(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "linspace START STOP NUM",
			Short: "NUM evenly spaced values in [START, STOP)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				start, stop, err := parseFloats(args[0], args[1])
				if err != nil {
					return failed(err)
				}
				num, err := strconv.Atoi(args[2])
				if err != nil {
					return failed(fmt.Errorf("%w: num %q: %w", ndarray.ErrValue, args[2], err))
				}
				out, err := creation.Linspace(start, stop, num)
				if err != nil {
					return failed(err)
				}
				return a.print(cmd, out)
			},
		},
	)
	return cmd
}

// arange builds an Int64 range when every bound is an integer and a Float64
// range otherwise.
func arange(start, stop, step string) (*ndarray.Array, error) {
	ints := make([]int64, 0, 3)
	for _, s := range []string{start, stop, step} {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			break
		}
		ints = append(ints, v)
	}
	if len(ints) == 3 {
		return creation.Arange(ints[0], ints[1], ints[2])
	}

	bounds, err := parseFloatList(start, stop, step)
	if err != nil {
		return nil, err
	}
	return creation.Arange(bounds[0], bounds[1], bounds[2])
}

func parseFloats(start, stop string) (float64, float64, error) {
	bounds, err := parseFloatList(start, stop)
	if err != nil {
		return 0, 0, err
	}
	return bounds[0], bounds[1], nil
}

func parseFloatList(ss ...string) ([]float64, error) {
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: expected a number, got %q", ndarray.ErrValue, s)
		}
		out[i] = v
	}
	return out, nil
}
