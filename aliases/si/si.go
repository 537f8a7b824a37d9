// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package si provides fixed-point types with SI prefix scales, from yocto (10^-24) to yotta (10^24).
package si

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/fix"
	"github.com/avdva/fix/scale"
)

// Yocto is a fixed-point number with the scale 10^-24.
type Yocto[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N24]

// NewYocto returns bits × 10^-24.
func NewYocto[T constraints.Integer](bits T) Yocto[T] {
	return fix.New[scale.Decimal, scale.N24](bits)
}

// Zepto is a fixed-point number with the scale 10^-21.
type Zepto[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N21]

// NewZepto returns bits × 10^-21.
func NewZepto[T constraints.Integer](bits T) Zepto[T] {
	return fix.New[scale.Decimal, scale.N21](bits)
}

// Atto is a fixed-point number with the scale 10^-18.
type Atto[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N18]

// NewAtto returns bits × 10^-18.
func NewAtto[T constraints.Integer](bits T) Atto[T] {
	return fix.New[scale.Decimal, scale.N18](bits)
}

// Femto is a fixed-point number with the scale 10^-15.
type Femto[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N15]

// NewFemto returns bits × 10^-15.
func NewFemto[T constraints.Integer](bits T) Femto[T] {
	return fix.New[scale.Decimal, scale.N15](bits)
}

// Pico is a fixed-point number with the scale 10^-12.
type Pico[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N12]

// NewPico returns bits × 10^-12.
func NewPico[T constraints.Integer](bits T) Pico[T] {
	return fix.New[scale.Decimal, scale.N12](bits)
}

// Nano is a fixed-point number with the scale 10^-9.
type Nano[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N9]

// NewNano returns bits × 10^-9.
func NewNano[T constraints.Integer](bits T) Nano[T] {
	return fix.New[scale.Decimal, scale.N9](bits)
}

// Micro is a fixed-point number with the scale 10^-6.
type Micro[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N6]

// NewMicro returns bits × 10^-6.
func NewMicro[T constraints.Integer](bits T) Micro[T] {
	return fix.New[scale.Decimal, scale.N6](bits)
}

// Milli is a fixed-point number with the scale 10^-3.
type Milli[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N3]

// NewMilli returns bits × 10^-3.
func NewMilli[T constraints.Integer](bits T) Milli[T] {
	return fix.New[scale.Decimal, scale.N3](bits)
}

// Centi is a fixed-point number with the scale 10^-2.
type Centi[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N2]

// NewCenti returns bits × 10^-2.
func NewCenti[T constraints.Integer](bits T) Centi[T] {
	return fix.New[scale.Decimal, scale.N2](bits)
}

// Deci is a fixed-point number with the scale 10^-1.
type Deci[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.N1]

// NewDeci returns bits × 10^-1.
func NewDeci[T constraints.Integer](bits T) Deci[T] {
	return fix.New[scale.Decimal, scale.N1](bits)
}

// Unit is a fixed-point number of ones.
type Unit[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.Z0]

// NewUnit returns bits as a Unit.
func NewUnit[T constraints.Integer](bits T) Unit[T] {
	return fix.New[scale.Decimal, scale.Z0](bits)
}

// Deca is a fixed-point number with the scale 10^1.
type Deca[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P1]

// NewDeca returns bits × 10^1.
func NewDeca[T constraints.Integer](bits T) Deca[T] {
	return fix.New[scale.Decimal, scale.P1](bits)
}

// Hecto is a fixed-point number with the scale 10^2.
type Hecto[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P2]

// NewHecto returns bits × 10^2.
func NewHecto[T constraints.Integer](bits T) Hecto[T] {
	return fix.New[scale.Decimal, scale.P2](bits)
}

// Kilo is a fixed-point number with the scale 10^3.
type Kilo[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P3]

// NewKilo returns bits × 10^3.
func NewKilo[T constraints.Integer](bits T) Kilo[T] {
	return fix.New[scale.Decimal, scale.P3](bits)
}

// Mega is a fixed-point number with the scale 10^6.
type Mega[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P6]

// NewMega returns bits × 10^6.
func NewMega[T constraints.Integer](bits T) Mega[T] {
	return fix.New[scale.Decimal, scale.P6](bits)
}

// Giga is a fixed-point number with the scale 10^9.
type Giga[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P9]

// NewGiga returns bits × 10^9.
func NewGiga[T constraints.Integer](bits T) Giga[T] {
	return fix.New[scale.Decimal, scale.P9](bits)
}

// Tera is a fixed-point number with the scale 10^12.
type Tera[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P12]

// NewTera returns bits × 10^12.
func NewTera[T constraints.Integer](bits T) Tera[T] {
	return fix.New[scale.Decimal, scale.P12](bits)
}

// Peta is a fixed-point number with the scale 10^15.
type Peta[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P15]

// NewPeta returns bits × 10^15.
func NewPeta[T constraints.Integer](bits T) Peta[T] {
	return fix.New[scale.Decimal, scale.P15](bits)
}

// Exa is a fixed-point number with the scale 10^18.
type Exa[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P18]

// NewExa returns bits × 10^18.
func NewExa[T constraints.Integer](bits T) Exa[T] {
	return fix.New[scale.Decimal, scale.P18](bits)
}

// Zetta is a fixed-point number with the scale 10^21.
type Zetta[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P21]

// NewZetta returns bits × 10^21.
func NewZetta[T constraints.Integer](bits T) Zetta[T] {
	return fix.New[scale.Decimal, scale.P21](bits)
}

// Yotta is a fixed-point number with the scale 10^24.
type Yotta[T constraints.Integer] = fix.Fix[T, scale.Decimal, scale.P24]

// NewYotta returns bits × 10^24.
func NewYotta[T constraints.Integer](bits T) Yotta[T] {
	return fix.New[scale.Decimal, scale.P24](bits)
}
