// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fix/internal/mathutil"
	"github.com/avdva/fix/scale"
)

// CheckedAdder is implemented by types with an addition that reports overflow.
type CheckedAdder[V any] interface {
	CheckedAdd(V) (V, bool)
}

// CheckedSubtracter is implemented by types with a subtraction that reports overflow.
type CheckedSubtracter[V any] interface {
	CheckedSub(V) (V, bool)
}

// CheckedMultiplier multiplies L by R with overflow checking.
// Unlike CheckedAdder, the result type may differ from the operand types.
type CheckedMultiplier[L, R, Out any] interface {
	CheckedMul(L, R) (Out, bool)
}

// CheckedDivider divides L by R, reporting division by zero and overflow.
type CheckedDivider[L, R, Out any] interface {
	CheckedDiv(L, R) (Out, bool)
}

// CheckedAdd returns v + other and false, if the sum overflows T.
func (v Fix[T, B, E]) CheckedAdd(other Fix[T, B, E]) (Fix[T, B, E], bool) {
	s, ok := mu.AddChecked(v.bits, other.bits)
	return Fix[T, B, E]{bits: s}, ok
}

// CheckedSub returns v - other and false, if the difference overflows T.
func (v Fix[T, B, E]) CheckedSub(other Fix[T, B, E]) (Fix[T, B, E], bool) {
	d, ok := mu.SubChecked(v.bits, other.bits)
	return Fix[T, B, E]{bits: d}, ok
}

// CheckedNeg returns -v and false, if -v can't be represented by T.
func (v Fix[T, B, E]) CheckedNeg() (Fix[T, B, E], bool) {
	n, ok := mu.NegChecked(v.bits)
	return Fix[T, B, E]{bits: n}, ok
}

// CheckedRem returns v % other and false, if other is zero.
func (v Fix[T, B, E]) CheckedRem(other Fix[T, B, E]) (Fix[T, B, E], bool) {
	return v.CheckedRemBits(other.bits)
}

// CheckedMulBits returns v * b and false, if the product overflows T.
func (v Fix[T, B, E]) CheckedMulBits(b T) (Fix[T, B, E], bool) {
	p, ok := mu.MulChecked(v.bits, b)
	return Fix[T, B, E]{bits: p}, ok
}

// CheckedDivBits returns v / b and false, if b is zero or the quotient overflows T.
func (v Fix[T, B, E]) CheckedDivBits(b T) (Fix[T, B, E], bool) {
	q, ok := mu.QuoChecked(v.bits, b)
	return Fix[T, B, E]{bits: q}, ok
}

// CheckedRemBits returns v % b and false, if b is zero.
func (v Fix[T, B, E]) CheckedRemBits(b T) (Fix[T, B, E], bool) {
	r, ok := mu.RemChecked(v.bits, b)
	return Fix[T, B, E]{bits: r}, ok
}

// CheckedMulDiv returns v * num / den truncated toward zero.
// The intermediate product is not limited by T, so only the final result must fit.
// Returns false if den is zero or the result overflows T.
func (v Fix[T, B, E]) CheckedMulDiv(num, den T) (Fix[T, B, E], bool) {
	if den == 0 {
		return Fix[T, B, E]{}, false
	}
	m1, neg1 := magnitude(v.bits)
	m2, neg2 := magnitude(num)
	m3, neg3 := magnitude(den)
	hi, lo := bits.Mul64(m1, m2)
	if hi >= m3 {
		return Fix[T, B, E]{}, false
	}
	q, _ := bits.Div64(hi, lo, m3)
	res, ok := fromMagnitude[T](q, neg1 != neg2 != neg3)
	return Fix[T, B, E]{bits: res}, ok
}

// CheckedMul returns x * y and false, if the product overflows T.
func CheckedMul[T constraints.Integer, B scale.Base, E1, E2 scale.Exponent](x Fix[T, B, E1], y Fix[T, B, E2]) (Fix[T, B, scale.Sum[E1, E2]], bool) {
	p, ok := mu.MulChecked(x.bits, y.bits)
	return Fix[T, B, scale.Sum[E1, E2]]{bits: p}, ok
}

// CheckedDiv returns x / y and false, if y is zero or the quotient overflows T.
func CheckedDiv[T constraints.Integer, B scale.Base, E1, E2 scale.Exponent](x Fix[T, B, E1], y Fix[T, B, E2]) (Fix[T, B, scale.Diff[E1, E2]], bool) {
	q, ok := mu.QuoChecked(x.bits, y.bits)
	return Fix[T, B, scale.Diff[E1, E2]]{bits: q}, ok
}

// Arith multiplies and divides Fix[T, B, LE] by Fix[T, B, RE].
// It is a zero-size value implementing CheckedMultiplier and CheckedDivider,
// which lets generic code accept scale-changing operations as parameters.
type Arith[T constraints.Integer, B scale.Base, LE, RE scale.Exponent] struct{}

// Mul returns x * y, see Mul.
func (Arith[T, B, LE, RE]) Mul(x Fix[T, B, LE], y Fix[T, B, RE]) Fix[T, B, scale.Sum[LE, RE]] {
	return Mul(x, y)
}

// Div returns x / y, see Div.
func (Arith[T, B, LE, RE]) Div(x Fix[T, B, LE], y Fix[T, B, RE]) Fix[T, B, scale.Diff[LE, RE]] {
	return Div(x, y)
}

// CheckedMul returns x * y, see CheckedMul.
func (Arith[T, B, LE, RE]) CheckedMul(x Fix[T, B, LE], y Fix[T, B, RE]) (Fix[T, B, scale.Sum[LE, RE]], bool) {
	return CheckedMul(x, y)
}

// CheckedDiv returns x / y, see CheckedDiv.
func (Arith[T, B, LE, RE]) CheckedDiv(x Fix[T, B, LE], y Fix[T, B, RE]) (Fix[T, B, scale.Diff[LE, RE]], bool) {
	return CheckedDiv(x, y)
}

// CheckedSum adds all the values. It returns false on the first overflow.
// The sum of no values is the zero value of V.
func CheckedSum[V CheckedAdder[V]](values ...V) (V, bool) {
	var sum V
	if len(values) == 0 {
		return sum, true
	}
	sum = values[0]
	for _, v := range values[1:] {
		var ok bool
		if sum, ok = sum.CheckedAdd(v); !ok {
			return sum, false
		}
	}
	return sum, true
}

// CheckedDot returns the sum of xs[i] * ys[i], computed with m.
// It returns false if the slices differ in length or on overflow.
func CheckedDot[L, R any, Out CheckedAdder[Out]](m CheckedMultiplier[L, R, Out], xs []L, ys []R) (Out, bool) {
	var sum Out
	if len(xs) != len(ys) {
		return sum, false
	}
	for i := range xs {
		p, ok := m.CheckedMul(xs[i], ys[i])
		if !ok {
			return sum, false
		}
		if sum, ok = sum.CheckedAdd(p); !ok {
			return sum, false
		}
	}
	return sum, true
}

// Must returns v, if ok is true, and panics with ErrOverflow otherwise.
//
//	sum := fix.Must(a.CheckedAdd(b))
func Must[V any](v V, ok bool) V {
	if !ok {
		panic(ErrOverflow)
	}
	return v
}

// magnitude returns |x| and x's sign.
func magnitude[T constraints.Integer](x T) (uint64, bool) {
	if x < 0 {
		// -x overflows for the minimum value, but uint64 conversion handles it.
		return -uint64(int64(x)), true
	}
	return uint64(x), false
}

// fromMagnitude converts a sign and a magnitude to T.
func fromMagnitude[T constraints.Integer](m uint64, neg bool) (T, bool) {
	if !mu.IsSigned[T]() {
		if neg && m != 0 {
			return 0, false
		}
		if m > uint64(mu.MaxOf[T]()) {
			return 0, false
		}
		return T(m), true
	}
	limit := uint64(mu.MaxOf[T]())
	if neg {
		if m > limit+1 {
			return 0, false
		}
		return T(-m), true
	}
	if m > limit {
		return 0, false
	}
	return T(m), true
}
