// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package iec provides fixed-point types with IEC binary prefix scales, from kibi (2^10) to yobi (2^80).
package iec

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/fix"
	"github.com/avdva/fix/scale"
)

// Unit is a fixed-point number of ones.
type Unit[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.Z0]

// NewUnit returns bits as a Unit.
func NewUnit[T constraints.Integer](bits T) Unit[T] {
	return fix.New[scale.Binary, scale.Z0](bits)
}

// Kibi is a fixed-point number with the scale 2^10.
type Kibi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P10]

// NewKibi returns bits × 2^10.
func NewKibi[T constraints.Integer](bits T) Kibi[T] {
	return fix.New[scale.Binary, scale.P10](bits)
}

// Mebi is a fixed-point number with the scale 2^20.
type Mebi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P20]

// NewMebi returns bits × 2^20.
func NewMebi[T constraints.Integer](bits T) Mebi[T] {
	return fix.New[scale.Binary, scale.P20](bits)
}

// Gibi is a fixed-point number with the scale 2^30.
type Gibi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P30]

// NewGibi returns bits × 2^30.
func NewGibi[T constraints.Integer](bits T) Gibi[T] {
	return fix.New[scale.Binary, scale.P30](bits)
}

// Tebi is a fixed-point number with the scale 2^40.
type Tebi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P40]

// NewTebi returns bits × 2^40.
func NewTebi[T constraints.Integer](bits T) Tebi[T] {
	return fix.New[scale.Binary, scale.P40](bits)
}

// Pebi is a fixed-point number with the scale 2^50.
type Pebi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P50]

// NewPebi returns bits × 2^50.
func NewPebi[T constraints.Integer](bits T) Pebi[T] {
	return fix.New[scale.Binary, scale.P50](bits)
}

// Exbi is a fixed-point number with the scale 2^60.
type Exbi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P60]

// NewExbi returns bits × 2^60.
func NewExbi[T constraints.Integer](bits T) Exbi[T] {
	return fix.New[scale.Binary, scale.P60](bits)
}

// Zebi is a fixed-point number with the scale 2^70.
type Zebi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P70]

// NewZebi returns bits × 2^70.
func NewZebi[T constraints.Integer](bits T) Zebi[T] {
	return fix.New[scale.Binary, scale.P70](bits)
}

// Yobi is a fixed-point number with the scale 2^80.
type Yobi[T constraints.Integer] = fix.Fix[T, scale.Binary, scale.P80]

// NewYobi returns bits × 2^80.
func NewYobi[T constraints.Integer](bits T) Yobi[T] {
	return fix.New[scale.Binary, scale.P80](bits)
}
