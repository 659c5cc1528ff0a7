package main

import (
	"github.com/spf13/cobra"
)

func newTransposeCmd(a *app) *cobra.Command {
	var axes []int

	cmd := &cobra.Command{
		Use:   "transpose LITERAL",
		Short: "Permute the axes of an array (reverse them by default)",
		Example: `  mnp transpose '[[1, 2, 3], [4, 5, 6]]'
  mnp transpose '[[[1, 2]], [[3, 4]]]' --axes 2,0,1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := a.parse(args[0])
			if err != nil {
				return err
			}
			out, err := arr.Transpose(axes...)
			if err != nil {
				return failed(err)
			}
			a.logger.Debug("transposed", "axes", axes, "from", arr.Shape(), "to", out.Shape())
			return a.print(cmd, out)
		},
	}
	cmd.Flags().IntSliceVar(&axes, "axes", nil, "axis permutation, e.g. 1,0,2")
	return cmd
}

func newReshapeCmd(a *app) *cobra.Command {
	var shape []int

	cmd := &cobra.Command{
		Use:     "reshape LITERAL",
		Short:   "Give an array a new shape with the same number of elements",
		Example: `  mnp reshape '[1, 2, 3, 4, 5, 6]' --shape 3,2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := a.parse(args[0])
			if err != nil {
				return err
			}
			out, err := arr.Reshape(shape...)
			if err != nil {
				return failed(err)
			}
			return a.print(cmd, out)
		},
	}
	cmd.Flags().IntSliceVar(&shape, "shape", nil, "new shape, e.g. 3,2")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}
