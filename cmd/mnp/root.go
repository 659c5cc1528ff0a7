package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mininumpy/mininumpy/internal/config"
	"github.com/mininumpy/mininumpy/internal/literal"
	"github.com/mininumpy/mininumpy/internal/ndarray"
)

// app is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	policy ndarray.NumericPolicy
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "mnp"}),
	}

	root := &cobra.Command{
		Use:   "mnp",
		Short: "Build and transform n-dimensional arrays",
		Long: titleStyle.Render("mnp") + ` builds n-dimensional numeric arrays from nested literals
and applies shape and element-wise operations to them.

Literals use YAML/JSON flow syntax:
  mnp inspect '[[1, 2, 3], [4, 5, 6]]'
  mnp transpose '[[1, 2], [3, 4]]'
  mnp binary add '[[1], [2]]' '[10, 20, 30]'
  mnp build arange 0 10 2`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML, JSON or TOML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newInspectCmd(a),
		newTransposeCmd(a),
		newReshapeCmd(a),
		newUnaryCmd(a),
		newBinaryCmd(a),
		newBuildCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and applies it to the logger and to the
// array kernels.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return failed(err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return failed(err)
		}
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return failed(err)
	}
	a.logger.SetLevel(level)

	if a.policy, err = cfg.Policy(); err != nil {
		return failed(err)
	}
	ndarray.SetParallelism(cfg.ParallelSettings())
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		"file", a.cfgFile,
		"numeric_policy", a.policy,
		"parallel", cfg.Parallel.Enabled,
	)
	return nil
}

// parse reads a literal argument into an array under the configured policy.
func (a *app) parse(src string) (*ndarray.Array, error) {
	arr, err := literal.ParseArray(src, ndarray.WithNumericPolicy(a.policy))
	if err != nil {
		return nil, failed(err)
	}
	a.logger.Debug("parsed literal", "shape", arr.Shape(), "dtype", arr.DType())
	return arr, nil
}

// print writes arr in nested form.
func (a *app) print(cmd *cobra.Command, arr *ndarray.Array) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), arr.String())
	return err
}
