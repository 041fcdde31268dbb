// SPDX-License-Identifier: MIT

package matrep

import (
	"fmt"
	"reflect"
)

// Flatten lists the primitive components of x in nesting order:
// First before Second at every level, so index 0 is the real part.
// Leaves must be float64-backed (hyper.Real); other leaves yield ErrUnsupportedComponent.
func Flatten[T any](x T) ([]float64, error) {
	out, err := appendLeaves(make([]float64, 0, 8), reflect.ValueOf(x))
	if err != nil {
		return nil, matrepErrorf(opFlatten, err)
	}

	return out, nil
}

// Unflatten is the inverse of Flatten: it fills a T from exactly the right
// number of components.
func Unflatten[T any](v []float64) (T, error) {
	var x T
	rest, err := fillLeaves(reflect.ValueOf(&x).Elem(), v)
	if err != nil {
		return x, matrepErrorf(opBuild, err)
	}
	if len(rest) != 0 {
		return x, matrepErrorf(opBuild, ErrDimensionMismatch)
	}

	return x, nil
}

// isPair reports whether t is a doubled number: a struct of exactly First and Second.
func isPair(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 2 &&
		t.Field(0).Name == "First" && t.Field(1).Name == "Second"
}

func appendLeaves(dst []float64, v reflect.Value) ([]float64, error) {
	switch {
	case v.Kind() == reflect.Float64:
		return append(dst, v.Float()), nil
	case isPair(v.Type()):
		dst, err := appendLeaves(dst, v.Field(0))
		if err != nil {
			return nil, err
		}

		return appendLeaves(dst, v.Field(1))
	}

	return nil, fmt.Errorf("%s: %w", v.Type(), ErrUnsupportedComponent)
}

func fillLeaves(v reflect.Value, src []float64) ([]float64, error) {
	switch {
	case v.Kind() == reflect.Float64:
		if len(src) == 0 {
			return nil, ErrDimensionMismatch
		}
		v.SetFloat(src[0])

		return src[1:], nil
	case isPair(v.Type()):
		rest, err := fillLeaves(v.Field(0), src)
		if err != nil {
			return nil, err
		}

		return fillLeaves(v.Field(1), rest)
	}

	return nil, fmt.Errorf("%s: %w", v.Type(), ErrUnsupportedComponent)
}
