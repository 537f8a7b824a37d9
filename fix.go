// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fix implements fixed-point numbers, where the scale is a part of the type.
//
// A Fix[T, B, E] represents bits × B^E, where bits is an integer of type T,
// B is a scale.Base and E is a scale.Exponent. Only bits is stored; the base
// and the exponent exist in the type alone, so values of different scales can
// not be added, subtracted or compared without an explicit Convert.
//
//	cents := fix.New[scale.Decimal, scale.N2](int64(10)) // 0.10
//	cents = cents.Add(fix.New[scale.Decimal, scale.N2](int64(20)))
//	milli := fix.Convert[scale.N3](cents) // 300 x 10^-3
//
// Multiplication and division change the exponent of the result:
// Mul of Fix[T, B, E1] and Fix[T, B, E2] is a Fix[T, B, scale.Sum[E1, E2]].
//
// Arithmetic is performed on the raw integers with Go's semantics: it wraps
// on overflow, and division by zero panics. Use the Checked* family to detect
// overflow and invalid division instead.
//
// Parse reads decimal notation, and the Decimal/FromDecimal pair converts
// to and from shopspring decimals.
package fix

import (
	"cmp"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/avdva/fix/scale"
)

// Fix is a fixed-point number representing bits × B^E.
// The zero value is zero.
type Fix[T constraints.Integer, B scale.Base, E scale.Exponent] struct {
	bits T
}

// New creates a number. Any bits form a valid value.
//
//	fix.New[scale.Decimal, scale.N3](25) // 0.025
//	fix.New[scale.Decimal, scale.P3](25) // 25 000
func New[B scale.Base, E scale.Exponent, T constraints.Integer](bits T) Fix[T, B, E] {
	return Fix[T, B, E]{bits: bits}
}

// MapBits converts the underlying bits to another type with f.
// This operation can lose precision (e.g. int64 -> uint8), the conversion
// semantics of f apply unchanged.
func MapBits[To, T constraints.Integer, B scale.Base, E scale.Exponent](v Fix[T, B, E], f func(T) To) Fix[To, B, E] {
	return Fix[To, B, E]{bits: f(v.bits)}
}

// Bits returns the underlying integer.
func (v Fix[T, B, E]) Bits() T {
	return v.bits
}

// Base returns the base of v's scale.
func (v Fix[T, B, E]) Base() uint64 {
	return scale.RadixOf[B]()
}

// Exp returns the exponent of v's scale.
func (v Fix[T, B, E]) Exp() int {
	return scale.ExpOf[E]()
}

// IsZero returns true, if v == 0.
func (v Fix[T, B, E]) IsZero() bool {
	return v.bits == 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Fix[T, B, E]) Sign() int {
	return cmp.Compare(v.bits, 0)
}

// Eq returns v == other.
func (v Fix[T, B, E]) Eq(other Fix[T, B, E]) bool {
	return v.bits == other.bits
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Fix[T, B, E]) Cmp(other Fix[T, B, E]) int {
	return cmp.Compare(v.bits, other.bits)
}

// Less returns v < other.
func (v Fix[T, B, E]) Less(other Fix[T, B, E]) bool {
	return v.bits < other.bits
}

// Min returns the smallest of the values.
func Min[T constraints.Integer, B scale.Base, E scale.Exponent](v Fix[T, B, E], others ...Fix[T, B, E]) Fix[T, B, E] {
	for _, o := range others {
		if o.bits < v.bits {
			v = o
		}
	}
	return v
}

// Max returns the largest of the values.
func Max[T constraints.Integer, B scale.Base, E scale.Exponent](v Fix[T, B, E], others ...Fix[T, B, E]) Fix[T, B, E] {
	for _, o := range others {
		if o.bits > v.bits {
			v = o
		}
	}
	return v
}

// GoString returns debug string representation, like `15x10^3`.
func (v Fix[T, B, E]) GoString() string {
	return fmt.Sprintf("%dx%d^%d", v.bits, v.Base(), v.Exp())
}

// String returns the represented number in decimal notation.
func (v Fix[T, B, E]) String() string {
	return v.Decimal().String()
}

// Format implements fmt.Formatter.
// %d prints the underlying bits, %#v the debug representation,
// %v and %s the number, %q the quoted number.
func (v Fix[T, B, E]) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			io.WriteString(fs, v.GoString())
			return
		}
		io.WriteString(fs, v.String())
	case 's':
		io.WriteString(fs, v.String())
	case 'q':
		fmt.Fprintf(fs, "%q", v.String())
	case 'd':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), v.bits)
	default:
		fmt.Fprintf(fs, "%%!%c(fix.Fix=%s)", c, v.String())
	}
}
