// Copyright 2020 Aleksandr Demakin. All rights reserved.

package iec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/fix"
	"github.com/avdva/fix/aliases/iec"
	"github.com/avdva/fix/scale"
)

func TestConvert(t *testing.T) {
	a := assert.New(t)
	a.Equal(iec.NewKibi(int64(1024)), fix.Convert[scale.P10](iec.NewMebi(int64(1))))
	a.Equal(iec.NewMebi(int64(1)), fix.Convert[scale.P20](iec.NewKibi(int64(1536))))
	a.Equal(iec.NewUnit(uint64(3<<30)), fix.Convert[scale.Z0](iec.NewGibi(uint64(3))))
	a.Equal(iec.NewExbi(uint64(1)), fix.Convert[scale.P60](iec.NewPebi(uint64(1024))))
}

func TestArith(t *testing.T) {
	a := assert.New(t)
	a.Equal(iec.NewKibi(5), iec.NewKibi(2).Add(iec.NewKibi(3)))
	a.Equal(iec.NewMebi(6), fix.Convert[scale.P20](fix.Mul(iec.NewKibi(2), iec.NewKibi(3))))
	a.Equal(iec.NewKibi(4), fix.Convert[scale.P10](fix.Div(iec.NewMebi(8), iec.NewKibi(2))))
	a.Equal("3072", iec.NewKibi(3).String())
	a.Equal("3x2^10", fmt.Sprintf("%#v", iec.NewKibi(3)))
}

func TestScales(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		exp int
		v   interface{ Exp() int }
	}{
		{0, iec.NewUnit(0)},
		{10, iec.NewKibi(0)},
		{20, iec.NewMebi(0)},
		{30, iec.NewGibi(0)},
		{40, iec.NewTebi(0)},
		{50, iec.NewPebi(0)},
		{60, iec.NewExbi(0)},
		{70, iec.NewZebi(0)},
		{80, iec.NewYobi(0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.exp, test.v.Exp())
			a.Equal(uint64(2), test.v.(interface{ Base() uint64 }).Base())
		})
	}
}

func TestHugeExponent(t *testing.T) {
	a := assert.New(t)
	// 2^70 doesn't fit uint64, so converting to Zebi loses everything.
	a.True(fix.Convert[scale.P70](iec.NewUnit(uint64(1) << 63)).IsZero())
	_, ok := fix.CheckedConvert[scale.Z0](iec.NewZebi(uint64(1)))
	a.False(ok)
	v, ok := fix.CheckedConvert[scale.Z0](iec.NewZebi(uint64(0)))
	a.True(ok)
	a.True(v.IsZero())
}
