// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "hyperdemo", cmd.Use)

	for _, name := range []string{"eval", "derive", "run", "matrix"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "eval", "--op", "mul", "2", "3", "1", "-1")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "evaluating")

	_, stderr, err = execute(t, "-v", "eval", "--op", "mul", "2", "3", "1", "-1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "evaluating")
	assert.Contains(t, stderr, "algebra=complex")
	assert.False(t, strings.Contains(stderr, "\x1b["), "--no-color must strip ANSI escapes")
}
