// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil provides integer helpers that are generic over
// every Go integer width.
package mathutil

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// BitSize returns the width of T in bits.
func BitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// MinOf returns the smallest value of T.
func MinOf[T constraints.Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	var m T = 1
	return m << (BitSize[T]() - 1)
}

// MaxOf returns the largest value of T.
func MaxOf[T constraints.Integer]() T {
	return ^MinOf[T]()
}

// FromUnsigned converts an unsigned constant into T.
// Values that don't fit T are truncated to its width, as Go conversions do.
func FromUnsigned[T constraints.Integer](u uint64) T {
	return T(u)
}

// Pow returns x^n. The multiplication wraps on overflow,
// so the result is x^n modulo 2^BitSize[T]().
func Pow[T constraints.Integer](x T, n uint32) T {
	if x == 10 && int(n) < len(decimalFactorTable) {
		return T(decimalFactorTable[n])
	}
	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// CheckedPow returns x^n and false, if the result doesn't fit T.
func CheckedPow[T constraints.Integer](x T, n uint32) (T, bool) {
	result := T(1)
	for ; n > 0; n-- {
		var ok bool
		if result, ok = MulChecked(result, x); !ok {
			return 0, false
		}
	}
	return result, true
}

// AddChecked returns a + b and false, if the sum overflows T.
func AddChecked[T constraints.Integer](a, b T) (T, bool) {
	s := a + b
	if IsSigned[T]() {
		if (b > 0 && s < a) || (b < 0 && s > a) {
			return 0, false
		}
		return s, true
	}
	if s < a {
		return 0, false
	}
	return s, true
}

// SubChecked returns a - b and false, if the difference overflows T.
func SubChecked[T constraints.Integer](a, b T) (T, bool) {
	d := a - b
	if IsSigned[T]() {
		if (b > 0 && d > a) || (b < 0 && d < a) {
			return 0, false
		}
		return d, true
	}
	if b > a {
		return 0, false
	}
	return d, true
}

// MulChecked returns a * b and false, if the product overflows T.
func MulChecked[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if IsSigned[T]() {
		// MinOf * -1 wraps back to MinOf and passes the division check below.
		minimum, minusOne := MinOf[T](), ^T(0)
		if (a == minusOne && b == minimum) || (b == minusOne && a == minimum) {
			return 0, false
		}
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// QuoChecked returns a / b truncated toward zero.
// Returns false for a zero divisor and for MinOf / -1.
func QuoChecked[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if IsSigned[T]() && b == ^T(0) && a == MinOf[T]() {
		return 0, false
	}
	return a / b, true
}

// RemChecked returns a % b and false for a zero divisor.
func RemChecked[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

// NegChecked returns -a and false, if it doesn't fit T.
// For unsigned types only zero can be negated.
func NegChecked[T constraints.Integer](a T) (T, bool) {
	if IsSigned[T]() {
		if a == MinOf[T]() {
			return 0, false
		}
		return -a, true
	}
	if a != 0 {
		return 0, false
	}
	return 0, true
}
