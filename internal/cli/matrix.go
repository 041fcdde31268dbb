// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/hypernum/matrep"
	"github.com/spf13/cobra"
)

// MatrixOptions holds flags for the matrix command.
type MatrixOptions struct {
	*RootOptions
	Algebra string
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatrixOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "matrix [flags] a b",
		Short: "Print the real matrix of multiplication by (a, b)",
		Long: `Print L(x), the 2×2 real matrix with L(x)·y = x·y, and its determinant.
The determinant is zero exactly when x is a zero divisor.

Example:
  hyperdemo matrix --algebra split 2 2
  hyperdemo matrix 1 -2
  hyperdemo matrix -- -1 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(opts, args, cmd)
		},
	}

	// Operands may be negative; flags end at the first operand.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.Algebra, "algebra", "a", "complex", "complex|dual|split|diagonal")

	return cmd
}

func runMatrix(opts *MatrixOptions, args []string, cmd *cobra.Command) error {
	log := opts.logger(cmd.ErrOrStderr())

	ev, err := newEvaluator(opts.Algebra, false)
	if err != nil {
		return err
	}
	L, err := ev.matrix(args)
	if err != nil {
		return err
	}
	det, err := matrep.Det(L)
	if err != nil {
		return err
	}
	log.Debug("left multiplication", "algebra", opts.Algebra, "operand", args, "det", det)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, L)
	fmt.Fprintf(out, "det = %.6g\n", det)

	return nil
}
