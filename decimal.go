// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fix/internal/mathutil"
	"github.com/avdva/fix/scale"
)

var bigTen = big.NewInt(10)

// Decimal returns v as a decimal number.
// The result is exact for the base 10 and for non-negative exponents;
// otherwise the division by B^-E is rounded to decimal.DivisionPrecision digits.
func (v Fix[T, B, E]) Decimal() decimal.Decimal {
	radix, e := v.Base(), v.Exp()
	if radix == 10 {
		return decimal.NewFromBigInt(toBig(v.bits), int32(e))
	}
	d := decimal.NewFromBigInt(toBig(v.bits), 0)
	factor := decimal.NewFromBigInt(bigPow(new(big.Int).SetUint64(radix), mu.AbsInt(e)), 0)
	if e >= 0 {
		return d.Mul(factor)
	}
	if factor.IsZero() {
		return decimal.Zero
	}
	return d.DivRound(factor, int32(decimal.DivisionPrecision))
}

// Float64 returns the nearest float64 value for v.
func (v Fix[T, B, E]) Float64() float64 {
	f, _ := v.Decimal().Float64()
	return f
}

// FromDecimal returns d as a Fix[T, B, E].
// Digits below B^E are truncated toward zero.
// Returns ErrRange, if the result does not fit T.
func FromDecimal[T constraints.Integer, B scale.Base, E scale.Exponent](d decimal.Decimal) (Fix[T, B, E], error) {
	return fromScaled[T, B, E](d.Coefficient(), int(d.Exponent()))
}

// fromScaled returns num × 10^x as a Fix[T, B, E], truncated toward zero.
// num is modified.
func fromScaled[T constraints.Integer, B scale.Base, E scale.Exponent](num *big.Int, x int) (Fix[T, B, E], error) {
	den := big.NewInt(1)
	if x >= 0 {
		num.Mul(num, bigPow(bigTen, x))
	} else {
		den.Mul(den, bigPow(bigTen, -x))
	}
	radix := new(big.Int).SetUint64(scale.RadixOf[B]())
	if e := scale.ExpOf[E](); e >= 0 {
		den.Mul(den, bigPow(radix, e))
	} else {
		num.Mul(num, bigPow(radix, -e))
	}
	if den.Sign() == 0 {
		return Fix[T, B, E]{}, ErrRange
	}
	bits, ok := fromBig[T](num.Quo(num, den))
	if !ok {
		return Fix[T, B, E]{}, ErrRange
	}
	return Fix[T, B, E]{bits: bits}, nil
}

// MustFromDecimal is like FromDecimal, but panics on error.
// Use for package variable initialization and test code.
func MustFromDecimal[T constraints.Integer, B scale.Base, E scale.Exponent](d decimal.Decimal) Fix[T, B, E] {
	v, err := FromDecimal[T, B, E](d)
	if err != nil {
		panic(err)
	}
	return v
}

func bigPow(x *big.Int, n int) *big.Int {
	return new(big.Int).Exp(x, big.NewInt(int64(n)), nil)
}

func toBig[T constraints.Integer](x T) *big.Int {
	if mu.IsSigned[T]() {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

func fromBig[T constraints.Integer](x *big.Int) (T, bool) {
	if mu.IsSigned[T]() {
		if !x.IsInt64() {
			return 0, false
		}
		i := x.Int64()
		if int64(T(i)) != i {
			return 0, false
		}
		return T(i), true
	}
	if x.Sign() < 0 || !x.IsUint64() {
		return 0, false
	}
	u := x.Uint64()
	if uint64(T(u)) != u {
		return 0, false
	}
	return T(u), true
}
