// SPDX-License-Identifier: MIT

// Package hyper: canonical-constant factories.
// Every number type exposes seven distinguished values through a Factory so that
// generic code can seed new values without knowing the concrete algebra. Each
// doubling level derives its constants from the factory of the level below.
package hyper

// CreateFunc lifts four primitive scalar slots into a number of type T.
// Each flat component is indexed by the subset S of imaginary units it carries:
//   - |S| = 0            → realUnit
//   - |S| = 1            → otherUnits
//   - S = all units, ≥2  → allUnitsCombined
//   - otherwise          → someUnitsCombined
type CreateFunc[T any] func(realUnit, otherUnits, someUnitsCombined, allUnitsCombined float64) T

// Constants is the set of seven canonical values of a number type.
type Constants[T any] struct {
	Zero            T // additive identity
	RealOne         T // multiplicative identity
	SpecialOne      T // the unit introduced by the outermost level
	UnitsOne        T // 1 plus every single imaginary unit
	NonRealUnitsOne T // every single imaginary unit, without the real 1
	CombinedOne     T // product of all imaginary units
	AllOne          T // every component set to 1
}

// Factory is the immutable constant table of a number type. Obtain it through
// Number.Factory or FactoryOf; values returned by accessors are copies.
type Factory[T any] struct {
	c      Constants[T]
	create CreateFunc[T]
}

// NewFactory builds a factory from explicit constants and a Create function.
// Base scalars and external wrapper types use it to join the contract.
func NewFactory[T any](c Constants[T], create CreateFunc[T]) *Factory[T] {
	return &Factory[T]{c: c, create: create}
}

func (f *Factory[T]) Zero() T            { return f.c.Zero }
func (f *Factory[T]) RealOne() T         { return f.c.RealOne }
func (f *Factory[T]) SpecialOne() T      { return f.c.SpecialOne }
func (f *Factory[T]) UnitsOne() T        { return f.c.UnitsOne }
func (f *Factory[T]) NonRealUnitsOne() T { return f.c.NonRealUnitsOne }
func (f *Factory[T]) CombinedOne() T     { return f.c.CombinedOne }
func (f *Factory[T]) AllOne() T          { return f.c.AllOne }

// Constants returns a copy of the full constant table.
func (f *Factory[T]) Constants() Constants[T] { return f.c }

// Create lifts the four scalar slots into T; see CreateFunc for the slot layout.
func (f *Factory[T]) Create(realUnit, otherUnits, someUnitsCombined, allUnitsCombined float64) T {
	return f.create(realUnit, otherUnits, someUnitsCombined, allUnitsCombined)
}

// FactoryOf returns the factory of T without needing a value of T.
func FactoryOf[T Number[T]]() *Factory[T] {
	var zero T

	return zero.Factory()
}

// DimensionOf returns the number of primitive components of T.
func DimensionOf[T Number[T]]() int {
	var zero T

	return zero.Dimension()
}

// Lift places the primitive x on the real axis of T, e.g. Lift[Complex[Real]](math.Pi).
func Lift[T Number[T]](x float64) T {
	return FactoryOf[T]().Create(x, 0, 0, 0)
}

// doubledFactory derives the factory of a pair type D over T. The layout is
// shared by all four algebras:
//
//	Zero=(0,0) RealOne=(1,0) SpecialOne=(0,1)
//	UnitsOne=(units,1) NonRealUnitsOne=(nonReal,1)
//	CombinedOne=(0,combined) AllOne=(all,all)
func doubledFactory[D any, T Number[T]](pair func(first, second T) D) *Factory[D] {
	in := FactoryOf[T]()
	innerDim := DimensionOf[T]()
	zero, one := in.Zero(), in.RealOne()

	c := Constants[D]{
		Zero:            pair(zero, zero),
		RealOne:         pair(one, zero),
		SpecialOne:      pair(zero, one),
		UnitsOne:        pair(in.UnitsOne(), one),
		NonRealUnitsOne: pair(in.NonRealUnitsOne(), one),
		CombinedOne:     pair(zero, in.CombinedOne()),
		AllOne:          pair(in.AllOne(), in.AllOne()),
	}

	create := func(r, o, s, a float64) D {
		// First keeps the subsets without the new unit; T's full set is only
		// partial here, so its slot becomes s.
		first := in.Create(r, o, s, s)
		// Second adds the new unit to every subset: sizes shift up by one.
		// With a single inner unit the inner full set is a singleton, which
		// would otherwise win over the all-units slot.
		if innerDim == 2 {
			return pair(first, in.Create(o, a, s, a))
		}

		return pair(first, in.Create(o, s, s, a))
	}

	return NewFactory(c, create)
}
