// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avdva/fix"
	"github.com/avdva/fix/scale"
)

type (
	price  = fix.Fix[int64, scale.Decimal, scale.N5]
	volume = fix.Fix[int64, scale.Decimal, scale.N1]
	amount = fix.Fix[int64, scale.Decimal, scale.Sum[scale.N5, scale.N1]]
)

type level struct {
	Price price
	Size  volume
}

func Example_vwap() {
	obook := []level{
		{fix.New[scale.Decimal, scale.N5](int64(123450)), fix.New[scale.Decimal, scale.N1](int64(33))},
		{fix.New[scale.Decimal, scale.N5](int64(123500)), fix.New[scale.Decimal, scale.N1](int64(14))},
		{fix.New[scale.Decimal, scale.N5](int64(123570)), fix.New[scale.Decimal, scale.N1](int64(40))},
		{fix.New[scale.Decimal, scale.N5](int64(123571)), fix.New[scale.Decimal, scale.N1](int64(25))},
		{fix.New[scale.Decimal, scale.N5](int64(123582)), fix.New[scale.Decimal, scale.N1](int64(15))},
	}

	vw, vol := vwap(obook, fix.New[scale.Decimal, scale.N1](int64(100)))
	fmt.Printf("vwap for order book is %s with volume %s\n", vw, vol)

	vw, vol = vwap(obook, fix.New[scale.Decimal, scale.N1](int64(150)))
	fmt.Printf("vwap for order book is %s with volume %s\n", vw, vol)

	// Output:
	// vwap for order book is 1.2352073 with volume 10
	// vwap for order book is 1.2353271 with volume 12.7
}

func vwap(obook []level, desired volume) (fix.Fix[int64, scale.Decimal, scale.Diff[scale.N8, scale.N1]], volume) {
	var tier volume
	var spent amount
	for _, it := range obook {
		left := desired.Sub(tier)
		if left.Sign() <= 0 {
			break
		}
		sz := fix.Min(it.Size, left)
		tier = tier.Add(sz)
		spent = spent.Add(fix.Mul(it.Price, sz))
	}
	return fix.Div(fix.Convert[scale.N8](spent), tier), tier
}

func ExampleConvert() {
	cents := fix.New[scale.Decimal, scale.N2](int64(10))
	cents = cents.Add(fix.New[scale.Decimal, scale.N2](int64(20)))
	milli := fix.Convert[scale.N3](cents)
	fmt.Println(cents, milli.Bits())
	fmt.Printf("%#v\n", milli)

	// Output:
	// 0.3 300
	// 300x10^-3
}

func ExampleFix_CheckedAdd() {
	v := fix.New[scale.Decimal, scale.P3](uint8(250))
	ten := fix.New[scale.Decimal, scale.P3](uint8(10))
	_, ok := v.CheckedAdd(ten)
	fmt.Println(ok, v.Add(ten))

	// Output:
	// false 4000
}

func ExampleFromDecimal() {
	v, err := fix.FromDecimal[int64, scale.Decimal, scale.N2](decimal.RequireFromString("12.345"))
	fmt.Println(v, err)

	_, err = fix.FromDecimal[int8, scale.Decimal, scale.Z0](decimal.NewFromInt(1000))
	fmt.Println(err)

	// Output:
	// 12.34 <nil>
	// fix: value out of range
}

func ExampleParse() {
	v := fix.MustParse[int64, scale.Decimal, scale.N2]("-12.345")
	fmt.Println(v, v.Bits())

	_, err := fix.Parse[int64, scale.Decimal, scale.N2]("1.2.3")
	fmt.Println(err)

	// Output:
	// -12.34 -1234
	// fix: invalid syntax: unexpected delimiter at pos 4
}
