// SPDX-License-Identifier: MIT

// Package hyper_test verifies that the per-type memo table is safe for
// concurrent first use.
package hyper_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/stretchr/testify/require"
)

// deep is used by no other test, so its factory is first built here.
type deep = hyper.Diagonal[hyper.Split[hyper.Dual[hyper.Complex[hyper.Real]]]]

// TestConcurrentFactory races many goroutines on the first construction of a
// factory and checks that all of them observe the same fully built value.
func TestConcurrentFactory(t *testing.T) {
	const num = 64
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		got   = make([]*hyper.Factory[deep], num)
		dims  = make([]int, num)
	)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			<-start // release every goroutine at once
			got[id] = hyper.FactoryOf[deep]()
			dims[id] = hyper.DimensionOf[deep]()
		}(i)
	}
	close(start)
	wg.Wait()

	want := got[0]
	require.NotNil(t, want)
	for i := 1; i < num; i++ {
		require.Same(t, want, got[i], "goroutine %d saw a different factory", i)
		require.Equal(t, 16, dims[i])
	}
	// A partially built factory would miss the inner constants.
	require.Equal(t, want.Create(1, 1, 1, 1), want.AllOne())
	require.True(t, want.RealOne().Mul(want.AllOne()).Equals(want.AllOne()))
}

// TestConcurrentArithmetic runs mixed operations on shared immutable values.
func TestConcurrentArithmetic(t *testing.T) {
	x := hyper.NewComplex(hyper.NewDual[R](2, 1), hyper.NewDual[R](0, 1))
	want := x.Mul(x)

	const num = 32
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !x.Mul(x).Equals(want) {
					t.Error("product changed under concurrency")

					return
				}
				_, _ = x.Exp()
			}
		}()
	}
	wg.Wait()
}
