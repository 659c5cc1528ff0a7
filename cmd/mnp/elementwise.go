package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

var unaryOps = map[string]func(*ndarray.Array) (*ndarray.Array, error){
	"exp":  ndarray.Exp,
	"log":  ndarray.Log,
	"sqrt": ndarray.Sqrt,
	"abs": func(x *ndarray.Array) (*ndarray.Array, error) {
		return ndarray.Abs(x), nil
	},
}

var binaryOps = map[string]func(x, y *ndarray.Array) (*ndarray.Array, error){
	"add": ndarray.Add,
	"sub": ndarray.Sub,
	"mul": ndarray.Mul,
	"div": ndarray.Div,
	"pow": ndarray.Pow,
}

func newUnaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "unary {exp|log|sqrt|abs} LITERAL",
		Short:     "Apply an element-wise math function",
		Example:   `  mnp unary sqrt '[1, 4, 9]'`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"exp", "log", "sqrt", "abs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := unaryOps[args[0]]
			if !ok {
				return failed(fmt.Errorf("unknown unary operation %q", args[0]))
			}
			arr, err := a.parse(args[1])
			if err != nil {
				return err
			}
			out, err := op(arr)
			if err != nil {
				return failed(err)
			}
			return a.print(cmd, out)
		},
	}
}

func newBinaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "binary {add|sub|mul|div|pow} LHS RHS",
		Short: "Combine two arrays element-wise with broadcasting",
		Example: `  mnp binary add '[[1], [2]]' '[10, 20, 30]'
  mnp binary div '[1, 2]' '[4]'`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"add", "sub", "mul", "div", "pow"},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := binaryOps[args[0]]
			if !ok {
				return failed(fmt.Errorf("unknown binary operation %q", args[0]))
			}
			lhs, err := a.parse(args[1])
			if err != nil {
				return err
			}
			rhs, err := a.parse(args[2])
			if err != nil {
				return err
			}
			out, err := op(lhs, rhs)
			if err != nil {
				return failed(err)
			}
			a.logger.Debug("binary", "op", args[0], "lhs", lhs.Shape(), "rhs", rhs.Shape(), "out", out.Shape())
			return a.print(cmd, out)
		},
	}
}
