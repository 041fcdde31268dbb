// SPDX-License-Identifier: MIT

// Package hyper: per-type memo table.
// Factories and dimensions depend only on the concrete type, never on a value,
// so they are computed once per type and shared. Each entry is a lazy cell
// guarded by sync.Once: concurrent first callers block on the same Once and
// never observe a partially built value.
package hyper

import (
	"reflect"
	"sync"
)

// memoKind separates the independent memoised facets of one type.
type memoKind uint8

const (
	memoFactory memoKind = iota
	memoDimension
)

type memoKey struct {
	typ  reflect.Type
	kind memoKind
}

// lazyCell is a single-assignment slot; value is written exactly once inside once.Do.
type lazyCell struct {
	once  sync.Once
	value any
}

// memo maps memoKey -> *lazyCell. Entries are never removed.
var memo sync.Map

// memoize returns the cached value of kind for type V, building it on first use.
// build may itself memoize other types (an inner level); it must not request
// the same (type, kind) it is building.
func memoize[V any](typ reflect.Type, kind memoKind, build func() V) V {
	key := memoKey{typ: typ, kind: kind}
	raw, ok := memo.Load(key)
	if !ok {
		raw, _ = memo.LoadOrStore(key, new(lazyCell))
	}
	cell := raw.(*lazyCell)
	cell.once.Do(func() { cell.value = build() })

	return cell.value.(V)
}

// cachedFactory memoizes the factory of N.
func cachedFactory[N any](build func() *Factory[N]) *Factory[N] {
	return memoize(reflect.TypeOf((*N)(nil)).Elem(), memoFactory, build)
}

// cachedDimension memoizes the dimension of N.
func cachedDimension[N any](build func() int) int {
	return memoize(reflect.TypeOf((*N)(nil)).Elem(), memoDimension, build)
}
