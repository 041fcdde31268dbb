// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Algebra string
	Op      string
	Exact   bool
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [flags] a b [c d]",
		Short: "Apply one operation to pair operands",
		Long: `Apply a unary operation to (a, b) or a binary operation to (a, b) and (c, d).

Unary operations: clone neg inc dec inv conj mod half double square sqrt exp log
sin cos tan sinh cosh tanh asin acos atan. Binary operations: add sub mul div pow.

Example:
  hyperdemo eval --algebra complex --op mul 2 3 1 -1
  hyperdemo eval --algebra split --op log 2 1
  hyperdemo eval --algebra complex --op mod --exact 3 4
  hyperdemo eval --op neg -- -1 2

Flags go before the operands. Use -- when the first operand is negative.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args, cmd)
		},
	}

	// Operands may be negative; flags end at the first operand.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.Algebra, "algebra", "a", "complex", "complex|dual|split|diagonal")
	cmd.Flags().StringVarP(&opts.Op, "op", "o", "", "operation name (required)")
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "use exact decimal components instead of float64")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

func runEval(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	log := opts.logger(cmd.ErrOrStderr())

	ev, err := newEvaluator(opts.Algebra, opts.Exact)
	if err != nil {
		return err
	}
	op, err := parseOperation(opts.Op)
	if err != nil {
		return err
	}
	log.Debug("evaluating", "algebra", opts.Algebra, "op", op, "operands", args, "exact", opts.Exact)

	res, err := evaluate(ev, op, args)
	if err != nil {
		log.Error("evaluation failed", "op", op, "err", err)

		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)

	return nil
}
