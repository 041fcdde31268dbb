// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/spf13/cobra"
)

// DeriveOptions holds flags for the derive command.
type DeriveOptions struct {
	*RootOptions
	Fn string
	At string
}

// NewDeriveCommand creates the derive command.
func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeriveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "derive --fn name --at x",
		Short: "Evaluate f(x) and f'(x) with dual numbers",
		Long: `Evaluate a unary function and its derivative in one pass by applying it to
the dual number x + ε (forward-mode automatic differentiation).

Example:
  hyperdemo derive --fn sin --at 0.5
  hyperdemo derive --fn atan --at pi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Fn, "fn", "f", "", "unary function name (required)")
	cmd.Flags().StringVar(&opts.At, "at", "0", "point of evaluation")
	_ = cmd.MarkFlagRequired("fn")

	return cmd
}

func runDerive(opts *DeriveOptions, cmd *cobra.Command) error {
	log := opts.logger(cmd.ErrOrStderr())

	op, err := parseOperation(opts.Fn)
	if err != nil {
		return err
	}
	if op.isBinary {
		return fmt.Errorf("derive needs a unary function, %s is binary", op)
	}
	x, err := parseReal(opts.At)
	if err != nil {
		return fmt.Errorf("--at %q: %w", opts.At, err)
	}

	value, slope, err := derive(op.unary, x)
	if err != nil {
		log.Error("derivative failed", "fn", op, "at", x, "err", err)

		return err
	}
	log.Debug("derived", "fn", op, "at", x)
	fmt.Fprintf(cmd.OutOrStdout(), "f(%v) = %v\nf'(%v) = %v\n", x, value, x, slope)

	return nil
}

// derive returns f(x) and f'(x) for the unary operation f.
func derive(f hyper.UnaryOp, x hyper.Real) (value, slope hyper.Real, err error) {
	out, err := hyper.Call(f, hyper.Variable(x))
	if err != nil {
		return 0, 0, err
	}

	return out.First, out.Second, nil
}
