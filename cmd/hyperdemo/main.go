// SPDX-License-Identifier: MIT

// Command hyperdemo evaluates hypercomplex expressions from the command line.
//
//	hyperdemo eval --algebra complex --op mul 2 3 1 -1
//	hyperdemo derive --fn sin --at 0.5
//	hyperdemo run scenarios.yaml
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hypernum/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hyperdemo:", err)
		os.Exit(1)
	}
}
