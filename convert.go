// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fix/internal/mathutil"
	"github.com/avdva/fix/scale"
)

// Convert converts v to the exponent To. The base stays the same.
//
// When moving to a larger exponent, the bits are divided by B^|E-To|,
// truncating toward zero, so the conversion may lose precision.
// When moving to a smaller exponent, the bits are multiplied by B^|E-To|;
// the multiplication wraps if the result does not fit T.
//
//	kilo := fix.New[scale.Decimal, scale.P3](5)
//	milli := fix.Convert[scale.N3](kilo) // 5_000_000
func Convert[To scale.Exponent, T constraints.Integer, B scale.Base, E scale.Exponent](v Fix[T, B, E]) Fix[T, B, To] {
	n, coarsen := convDiff[To, E]()
	base := mu.FromUnsigned[T](scale.RadixOf[B]())
	if coarsen {
		ratio, ok := mu.CheckedPow(base, n)
		if !ok {
			return Fix[T, B, To]{bits: quoByHuge(v.bits, scale.RadixOf[B](), n)}
		}
		return Fix[T, B, To]{bits: v.bits / ratio}
	}
	return Fix[T, B, To]{bits: v.bits * mu.Pow(base, n)}
}

// CheckedConvert is like Convert, but returns false instead of wrapping,
// if the result does not fit T, or if the base is zero and To is greater than E.
func CheckedConvert[To scale.Exponent, T constraints.Integer, B scale.Base, E scale.Exponent](v Fix[T, B, E]) (Fix[T, B, To], bool) {
	n, coarsen := convDiff[To, E]()
	base := mu.FromUnsigned[T](scale.RadixOf[B]())
	ratio, ok := mu.CheckedPow(base, n)
	if coarsen {
		if !ok {
			return Fix[T, B, To]{bits: quoByHuge(v.bits, scale.RadixOf[B](), n)}, true
		}
		q, ok := mu.QuoChecked(v.bits, ratio)
		return Fix[T, B, To]{bits: q}, ok
	}
	if v.bits == 0 {
		return Fix[T, B, To]{}, true
	}
	if !ok {
		return Fix[T, B, To]{}, false
	}
	p, ok := mu.MulChecked(v.bits, ratio)
	return Fix[T, B, To]{bits: p}, ok
}

// convDiff returns |From-To| and whether the conversion moves to a larger exponent.
func convDiff[To, From scale.Exponent]() (n uint32, coarsen bool) {
	diff := scale.ExpOf[From]() - scale.ExpOf[To]()
	return uint32(mu.AbsInt(diff)), diff <= 0
}

// quoByHuge returns x / radix^n for radix^n that doesn't fit T.
// The quotient is zero unless x is the minimum of a signed T and
// radix^n equals its absolute value.
func quoByHuge[T constraints.Integer](x T, radix uint64, n uint32) T {
	if !mu.IsSigned[T]() || x != mu.MinOf[T]() {
		return 0
	}
	if r, ok := mu.CheckedPow(radix, n); ok && r == uint64(mu.MaxOf[T]())+1 {
		return ^T(0)
	}
	return 0
}
