package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mininumpy/mininumpy/internal/ndarray"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect LITERAL",
		Short: "Show the shape, dtype and flat data of an array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := a.parse(args[0])
			if err != nil {
				return err
			}

			flat := ndarray.List(ndarray.Flatten(arr.Nested())...)
			rows := [][2]string{
				{"shape:", arr.Shape().String()},
				{"dtype:", arr.DType().String()},
				{"ndim:", fmt.Sprint(arr.NDim())},
				{"size:", fmt.Sprint(arr.Size())},
				{"data:", flat.String()},
			}

			var sb strings.Builder
			for _, row := range rows {
				sb.WriteString(labelStyle.Render(row[0]))
				sb.WriteString(row[1])
				sb.WriteByte('\n')
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
