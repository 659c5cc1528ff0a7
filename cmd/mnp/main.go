// Command mnp builds and transforms MiniNumPy arrays from the command line.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	root := newRootCmd()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
