// SPDX-License-Identifier: MIT

package matrep_test

import (
	"fmt"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/katalvlaran/hypernum/matrep"
)

func ExampleLeftMul() {
	z := hyper.NewComplex[hyper.Real](2, 3)
	L, _ := matrep.LeftMul(z)
	det, _ := matrep.Det(L)
	fmt.Print(L)
	fmt.Printf("%.6g\n", det)
	// Output:
	// [2, -3]
	// [3, 2]
	// 13
}
