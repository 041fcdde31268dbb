// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrScenarioFailed is returned by run when at least one scenario misses its expectation.
var ErrScenarioFailed = errors.New("scenario failed")

// defaultTolerance applies when a scenario sets no tol.
const defaultTolerance = 1e-9

// ScenarioFile is the top-level document read by run.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one evaluation with an optional expectation.
//
// Want compares both components within Tol. Error names the expected failure
// instead: unsupported, not-invertible, non-finite or unknown-operation.
type Scenario struct {
	Name    string    `yaml:"name"`
	Algebra string    `yaml:"algebra"`
	Op      string    `yaml:"op"`
	Exact   bool      `yaml:"exact"`
	X       []string  `yaml:"x"`
	Y       []string  `yaml:"y"`
	Want    []float64 `yaml:"want"`
	Tol     float64   `yaml:"tol"`
	Error   string    `yaml:"error"`
}

// errorNames maps scenario error names to library sentinels.
var errorNames = map[string]error{
	"unsupported":       hyper.ErrUnsupported,
	"not-invertible":    hyper.ErrNotInvertible,
	"non-finite":        hyper.ErrNonFinite,
	"unknown-operation": hyper.ErrUnknownOperation,
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Evaluate a batch of scenarios from a YAML file",
		Long: `Evaluate every scenario in a YAML file and check its expectation.

Example file:
  scenarios:
    - name: complex product
      algebra: complex
      op: mul
      x: [2, 3]
      y: [1, -1]
      want: [5, 1]
    - name: split sine
      algebra: split
      op: sin
      x: [1, 0.5]
      error: unsupported`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return runScenarios(f, cmd.OutOrStdout(), rootOpts.logger(cmd.ErrOrStderr()))
		},
	}

	return cmd
}

// LoadScenarios decodes a scenario document.
func LoadScenarios(r io.Reader) (ScenarioFile, error) {
	var sf ScenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return ScenarioFile{}, fmt.Errorf("decode scenarios: %w", err)
	}

	return sf, nil
}

// runScenarios evaluates every scenario, printing one PASS/FAIL line each.
func runScenarios(r io.Reader, out io.Writer, log *slog.Logger) error {
	sf, err := LoadScenarios(r)
	if err != nil {
		return err
	}
	log.Info("loaded scenarios", "count", len(sf.Scenarios))

	failed := 0
	for i, sc := range sf.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		got, err := sc.run()
		if verr := sc.check(got, err); verr != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, verr)
			log.Debug("scenario failed", "name", name, "err", verr)

			continue
		}
		if err != nil {
			fmt.Fprintf(out, "PASS %s: %v\n", name, err)
		} else {
			fmt.Fprintf(out, "PASS %s: %v\n", name, got)
		}
	}
	log.Info("scenarios done", "passed", len(sf.Scenarios)-failed, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(sf.Scenarios), ErrScenarioFailed)
	}

	return nil
}

func (sc Scenario) run() (result, error) {
	ev, err := newEvaluator(sc.Algebra, sc.Exact)
	if err != nil {
		return result{}, err
	}
	op, err := parseOperation(sc.Op)
	if err != nil {
		return result{}, err
	}

	return evaluate(ev, op, append(append([]string{}, sc.X...), sc.Y...))
}

// check compares an outcome with the scenario's expectation.
func (sc Scenario) check(got result, err error) error {
	if sc.Error != "" {
		want, ok := errorNames[sc.Error]
		if !ok {
			return fmt.Errorf("unknown expected error %q", sc.Error)
		}
		if !errors.Is(err, want) {
			return fmt.Errorf("want error %s, got %v (err %v)", sc.Error, got, err)
		}

		return nil
	}
	if err != nil {
		return err
	}
	if len(sc.Want) == 0 {
		return nil
	}
	if len(sc.Want) != 2 {
		return fmt.Errorf("want needs 2 components, got %d", len(sc.Want))
	}
	a, b, perr := got.floats()
	if perr != nil {
		return fmt.Errorf("result %v: %w", got, perr)
	}
	tol := sc.Tol
	if tol == 0 {
		tol = defaultTolerance
	}
	if math.Abs(a-sc.Want[0]) > tol || math.Abs(b-sc.Want[1]) > tol {
		return fmt.Errorf("got %v, want (%v, %v) within %g", got, sc.Want[0], sc.Want[1], tol)
	}

	return nil
}
