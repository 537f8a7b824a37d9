// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/fix/scale"
)

type zeroBase struct{}

func (zeroBase) Radix() uint64 { return 0 }

func TestConvert(t *testing.T) {
	a := assert.New(t)
	a.Equal(milli{bits: 15_000_000}, Convert[scale.N3](kilo{bits: 15}))
	a.Equal(kilo{bits: 15}, Convert[scale.P3](milli{bits: 15_000_000}))
	a.Equal(milli{bits: 5_000_000}, Convert[scale.N3](kilo{bits: 5}))
	a.Equal(kilo{bits: 5}, Convert[scale.P3](milli{bits: 5_000_000}))
	a.Equal(Fix[int64, scale.Decimal, scale.N3]{bits: 300}, Convert[scale.N3](cents{bits: 30}))
	a.Equal(kibi{bits: 1024}, Convert[scale.P10](mebi{bits: 1}))
	a.Equal(mebi{bits: 1}, Convert[scale.P20](kibi{bits: 1024}))
	a.Equal(kilo{bits: 15}, Convert[scale.P3](kilo{bits: 15}))
}

func TestConvertTruncates(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m milli
		u unit
	}{
		{milli{bits: 1999}, unit{bits: 1}},
		{milli{bits: -1999}, unit{bits: -1}},
		{milli{bits: 999}, unit{}},
		{milli{bits: -999}, unit{}},
		{milli{bits: 3000}, unit{bits: 3}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.u, Convert[scale.Z0](test.m))
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, bits := range []int{0, 1, -1, 15, -15, 123456, math.MaxInt32} {
		k := kilo{bits: bits}
		a.Equal(k, Convert[scale.P3](Convert[scale.N3](k)), bits)
		b := Fix[int, scale.Binary, scale.P3]{bits: bits}
		a.Equal(b, Convert[scale.P3](Convert[scale.N4](b)), bits)
	}
}

func TestConvertHugeRatio(t *testing.T) {
	a := assert.New(t)
	// 10^6 does not fit uint8, every uint8 rounds down to 0.
	a.Equal(kiloU8{}, Convert[scale.P3](Fix[uint8, scale.Decimal, scale.N3]{bits: 200}))
	a.Equal(Fix[uint8, scale.Decimal, scale.P24]{}, Convert[scale.P24](Fix[uint8, scale.Decimal, scale.Z0]{bits: 255}))

	type i8 = Fix[int8, scale.Binary, scale.Z0]
	type i8P7 = Fix[int8, scale.Binary, scale.P7]
	a.Equal(i8P7{bits: -1}, Convert[scale.P7](i8{bits: math.MinInt8}))
	a.Equal(i8P7{}, Convert[scale.P7](i8{bits: math.MinInt8 + 1}))
	a.Equal(i8P7{}, Convert[scale.P7](i8{bits: math.MaxInt8}))
	a.Equal(Fix[int8, scale.Binary, scale.P8]{}, Convert[scale.P8](i8{bits: math.MinInt8}))
}

func TestConvertWraps(t *testing.T) {
	a := assert.New(t)
	// 1000 = 3*256 + 232
	a.Equal(Fix[uint8, scale.Decimal, scale.Z0]{bits: 232}, Convert[scale.Z0](kiloU8{bits: 1}))
	a.Equal(Fix[int8, scale.Decimal, scale.Z0]{bits: -24}, Convert[scale.Z0](Fix[int8, scale.Decimal, scale.P3]{bits: 1}))
}

func TestCheckedConvert(t *testing.T) {
	a := assert.New(t)
	type u8 = Fix[uint8, scale.Decimal, scale.Z0]
	type u8N2 = Fix[uint8, scale.Decimal, scale.N2]
	tests := []struct {
		v   u8
		res u8N2
		ok  bool
	}{
		{u8{bits: 0}, u8N2{}, true},
		{u8{bits: 2}, u8N2{bits: 200}, true},
		{u8{bits: 3}, u8N2{}, false},
		{u8{bits: 200}, u8N2{}, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := CheckedConvert[scale.N2](test.v)
			a.Equal(test.ok, ok)
			if ok {
				a.Equal(test.res, res)
			}
		})
	}

	v, ok := CheckedConvert[scale.P1](u8{bits: 255})
	a.True(ok)
	a.Equal(Fix[uint8, scale.Decimal, scale.P1]{bits: 25}, v)

	big, ok := CheckedConvert[scale.N3](kiloU8{})
	a.True(ok)
	a.Equal(Fix[uint8, scale.Decimal, scale.N3]{}, big)

	_, ok = CheckedConvert[scale.N3](kiloU8{bits: 1})
	a.False(ok)

	huge, ok := CheckedConvert[scale.P24](u8{bits: 255})
	a.True(ok)
	a.True(huge.IsZero())

	m, ok := CheckedConvert[scale.N3](kilo{bits: 15})
	a.True(ok)
	a.Equal(milli{bits: 15_000_000}, m)

	_, ok = CheckedConvert[scale.N18](Fix[int64, scale.Decimal, scale.Z0]{bits: 10})
	a.False(ok)
	_, ok = CheckedConvert[scale.N18](Fix[int64, scale.Decimal, scale.Z0]{bits: -10})
	a.False(ok)
	neg, ok := CheckedConvert[scale.N18](Fix[int64, scale.Decimal, scale.Z0]{bits: -9})
	a.True(ok)
	a.Equal(int64(-9e18), neg.Bits())
}

func TestConvertZeroBase(t *testing.T) {
	a := assert.New(t)
	v := Fix[int, zeroBase, scale.Z0]{bits: 5}
	_, ok := CheckedConvert[scale.P1](v)
	a.False(ok)
	a.Panics(func() {
		Convert[scale.P1](v)
	})
	same, ok := CheckedConvert[scale.Z0](v)
	a.True(ok)
	a.Equal(v, same)
	a.Equal(Fix[int, zeroBase, scale.N1]{}, Convert[scale.N1](v))
	r, ok := CheckedConvert[scale.N1](v)
	a.True(ok)
	a.True(r.IsZero())
}

func BenchmarkConvert(b *testing.B) {
	v := Fix[int64, scale.Decimal, scale.N2]{bits: 123456789}
	var dummy int64
	for i := 0; i < b.N; i++ {
		dummy += Convert[scale.N8](v).Bits() + Convert[scale.Z0](v).Bits()
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
