// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package scale provides type-level integers used as the scale of fixed-point numbers.
//
// A scale is a pair of types: a Base, whose Radix method returns the base,
// and an Exponent, whose Exp method returns the signed power applied to it.
// Both are expected to be zero-size struct types; their methods are called
// on the zero value and must not depend on any state.
//
// Exponents of -24..24 are predefined as N24..N1, Z0, P1..P24, as well as the
// multiples of ten up to 80 used by binary prefixes. Sum, Diff and Neg
// build new exponents from existing ones:
//
//	scale.Sum[scale.P3, scale.N3]{}.Exp() == 0
//
// Note that Sum[P3, N3] and Z0 are different Go types even though they
// denote the same number.
package scale

// Base is a type-level unsigned integer used as a radix.
type Base interface {
	Radix() uint64
}

// Exponent is a type-level signed integer.
type Exponent interface {
	Exp() int
}

// Decimal is the base 10.
type Decimal struct{}

func (Decimal) Radix() uint64 { return 10 }

// Binary is the base 2.
type Binary struct{}

func (Binary) Radix() uint64 { return 2 }

// Sum is the exponent A+B.
type Sum[A, B Exponent] struct{}

func (Sum[A, B]) Exp() int {
	var a A
	var b B
	return a.Exp() + b.Exp()
}

// Diff is the exponent A-B.
type Diff[A, B Exponent] struct{}

func (Diff[A, B]) Exp() int {
	var a A
	var b B
	return a.Exp() - b.Exp()
}

// Neg is the exponent -A.
type Neg[A Exponent] struct{}

func (Neg[A]) Exp() int {
	var a A
	return -a.Exp()
}

// RadixOf returns the radix of B.
func RadixOf[B Base]() uint64 {
	var b B
	return b.Radix()
}

// ExpOf returns the value of E.
func ExpOf[E Exponent]() int {
	var e E
	return e.Exp()
}
