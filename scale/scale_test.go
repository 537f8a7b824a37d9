package scale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponents(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		e   Exponent
		exp int
	}{
		{Z0{}, 0},
		{P1{}, 1},
		{N1{}, -1},
		{P3{}, 3},
		{N3{}, -3},
		{P24{}, 24},
		{N24{}, -24},
		{Sum[P3, N3]{}, 0},
		{Sum[P3, P3]{}, 6},
		{Diff[P3, N3]{}, 6},
		{Diff[N2, N2]{}, 0},
		{Neg[P9]{}, -9},
		{Neg[Neg[P9]]{}, 9},
		{Sum[Diff[P6, P3], Neg[P1]]{}, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.exp, test.e.Exp())
		})
	}
}

func TestOf(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(10), RadixOf[Decimal]())
	a.Equal(uint64(2), RadixOf[Binary]())
	a.Equal(-12, ExpOf[N12]())
	a.Equal(-7, ExpOf[Diff[N4, P3]]())
}
