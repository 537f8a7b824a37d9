// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/fix/scale"
)

// Neg returns -v.
func (v Fix[T, B, E]) Neg() Fix[T, B, E] {
	return Fix[T, B, E]{bits: -v.bits}
}

// Add returns v + other.
func (v Fix[T, B, E]) Add(other Fix[T, B, E]) Fix[T, B, E] {
	return Fix[T, B, E]{bits: v.bits + other.bits}
}

// Sub returns v - other.
func (v Fix[T, B, E]) Sub(other Fix[T, B, E]) Fix[T, B, E] {
	return Fix[T, B, E]{bits: v.bits - other.bits}
}

// Rem returns v % other. If other is zero, Rem panics.
func (v Fix[T, B, E]) Rem(other Fix[T, B, E]) Fix[T, B, E] {
	return Fix[T, B, E]{bits: v.bits % other.bits}
}

// MulBits multiplies v by an unscaled integer.
func (v Fix[T, B, E]) MulBits(b T) Fix[T, B, E] {
	return Fix[T, B, E]{bits: v.bits * b}
}

// DivBits divides v by an unscaled integer. If b is zero, DivBits panics.
func (v Fix[T, B, E]) DivBits(b T) Fix[T, B, E] {
	return Fix[T, B, E]{bits: v.bits / b}
}

// RemBits returns v % b for an unscaled integer b. If b is zero, RemBits panics.
func (v Fix[T, B, E]) RemBits(b T) Fix[T, B, E] {
	return Fix[T, B, E]{bits: v.bits % b}
}

// AddAssign sets v to v + other.
func (v *Fix[T, B, E]) AddAssign(other Fix[T, B, E]) {
	v.bits += other.bits
}

// SubAssign sets v to v - other.
func (v *Fix[T, B, E]) SubAssign(other Fix[T, B, E]) {
	v.bits -= other.bits
}

// MulBitsAssign sets v to v * b.
func (v *Fix[T, B, E]) MulBitsAssign(b T) {
	v.bits *= b
}

// DivBitsAssign sets v to v / b.
func (v *Fix[T, B, E]) DivBitsAssign(b T) {
	v.bits /= b
}

// RemAssign sets v to v % other.
// other must have the same scale; to take a remainder by a number of another
// scale, convert it first or pass its bits to RemBitsAssign.
func (v *Fix[T, B, E]) RemAssign(other Fix[T, B, E]) {
	v.bits %= other.bits
}

// RemBitsAssign sets v to v % b.
func (v *Fix[T, B, E]) RemBitsAssign(b T) {
	v.bits %= b
}

// Mul returns x * y. The exponent of the result is the sum of the exponents.
//
//	(x B^E1) × (y B^E2) = (x × y) B^(E1+E2)
func Mul[T constraints.Integer, B scale.Base, E1, E2 scale.Exponent](x Fix[T, B, E1], y Fix[T, B, E2]) Fix[T, B, scale.Sum[E1, E2]] {
	return Fix[T, B, scale.Sum[E1, E2]]{bits: x.bits * y.bits}
}

// Div returns x / y truncated toward zero. The exponent of the result is
// the difference of the exponents. If y is zero, Div panics.
//
//	(x B^E1) ÷ (y B^E2) = (x ÷ y) B^(E1-E2)
func Div[T constraints.Integer, B scale.Base, E1, E2 scale.Exponent](x Fix[T, B, E1], y Fix[T, B, E2]) Fix[T, B, scale.Diff[E1, E2]] {
	return Fix[T, B, scale.Diff[E1, E2]]{bits: x.bits / y.bits}
}
