// Copyright 2020 Aleksandr Demakin. All rights reserved.

package scale

// Z0 is the zero exponent.
type Z0 struct{}

func (Z0) Exp() int { return 0 }

// P1 is the exponent 1.
type P1 struct{}

func (P1) Exp() int { return 1 }

// N1 is the exponent -1.
type N1 struct{}

func (N1) Exp() int { return -1 }

// P2 is the exponent 2.
type P2 struct{}

func (P2) Exp() int { return 2 }

// N2 is the exponent -2.
type N2 struct{}

func (N2) Exp() int { return -2 }

// P3 is the exponent 3.
type P3 struct{}

func (P3) Exp() int { return 3 }

// N3 is the exponent -3.
type N3 struct{}

func (N3) Exp() int { return -3 }

// P4 is the exponent 4.
type P4 struct{}

func (P4) Exp() int { return 4 }

// N4 is the exponent -4.
type N4 struct{}

func (N4) Exp() int { return -4 }

// P5 is the exponent 5.
type P5 struct{}

func (P5) Exp() int { return 5 }

// N5 is the exponent -5.
type N5 struct{}

func (N5) Exp() int { return -5 }

// P6 is the exponent 6.
type P6 struct{}

func (P6) Exp() int { return 6 }

// N6 is the exponent -6.
type N6 struct{}

func (N6) Exp() int { return -6 }

// P7 is the exponent 7.
type P7 struct{}

func (P7) Exp() int { return 7 }

// N7 is the exponent -7.
type N7 struct{}

func (N7) Exp() int { return -7 }

// P8 is the exponent 8.
type P8 struct{}

func (P8) Exp() int { return 8 }

// N8 is the exponent -8.
type N8 struct{}

func (N8) Exp() int { return -8 }

// P9 is the exponent 9.
type P9 struct{}

func (P9) Exp() int { return 9 }

// N9 is the exponent -9.
type N9 struct{}

func (N9) Exp() int { return -9 }

// P10 is the exponent 10.
type P10 struct{}

func (P10) Exp() int { return 10 }

// N10 is the exponent -10.
type N10 struct{}

func (N10) Exp() int { return -10 }

// P11 is the exponent 11.
type P11 struct{}

func (P11) Exp() int { return 11 }

// N11 is the exponent -11.
type N11 struct{}

func (N11) Exp() int { return -11 }

// P12 is the exponent 12.
type P12 struct{}

func (P12) Exp() int { return 12 }

// N12 is the exponent -12.
type N12 struct{}

func (N12) Exp() int { return -12 }

// P13 is the exponent 13.
type P13 struct{}

func (P13) Exp() int { return 13 }

// N13 is the exponent -13.
type N13 struct{}

func (N13) Exp() int { return -13 }

// P14 is the exponent 14.
type P14 struct{}

func (P14) Exp() int { return 14 }

// N14 is the exponent -14.
type N14 struct{}

func (N14) Exp() int { return -14 }

// P15 is the exponent 15.
type P15 struct{}

func (P15) Exp() int { return 15 }

// N15 is the exponent -15.
type N15 struct{}

func (N15) Exp() int { return -15 }

// P16 is the exponent 16.
type P16 struct{}

func (P16) Exp() int { return 16 }

// N16 is the exponent -16.
type N16 struct{}

func (N16) Exp() int { return -16 }

// P17 is the exponent 17.
type P17 struct{}

func (P17) Exp() int { return 17 }

// N17 is the exponent -17.
type N17 struct{}

func (N17) Exp() int { return -17 }

// P18 is the exponent 18.
type P18 struct{}

func (P18) Exp() int { return 18 }

// N18 is the exponent -18.
type N18 struct{}

func (N18) Exp() int { return -18 }

// P19 is the exponent 19.
type P19 struct{}

func (P19) Exp() int { return 19 }

// N19 is the exponent -19.
type N19 struct{}

func (N19) Exp() int { return -19 }

// P20 is the exponent 20.
type P20 struct{}

func (P20) Exp() int { return 20 }

// N20 is the exponent -20.
type N20 struct{}

func (N20) Exp() int { return -20 }

// P21 is the exponent 21.
type P21 struct{}

func (P21) Exp() int { return 21 }

// N21 is the exponent -21.
type N21 struct{}

func (N21) Exp() int { return -21 }

// P22 is the exponent 22.
type P22 struct{}

func (P22) Exp() int { return 22 }

// N22 is the exponent -22.
type N22 struct{}

func (N22) Exp() int { return -22 }

// P23 is the exponent 23.
type P23 struct{}

func (P23) Exp() int { return 23 }

// N23 is the exponent -23.
type N23 struct{}

func (N23) Exp() int { return -23 }

// P24 is the exponent 24.
type P24 struct{}

func (P24) Exp() int { return 24 }

// N24 is the exponent -24.
type N24 struct{}

func (N24) Exp() int { return -24 }

// P30 is the exponent 30.
type P30 struct{}

func (P30) Exp() int { return 30 }

// N30 is the exponent -30.
type N30 struct{}

func (N30) Exp() int { return -30 }

// P40 is the exponent 40.
type P40 struct{}

func (P40) Exp() int { return 40 }

// N40 is the exponent -40.
type N40 struct{}

func (N40) Exp() int { return -40 }

// P50 is the exponent 50.
type P50 struct{}

func (P50) Exp() int { return 50 }

// N50 is the exponent -50.
type N50 struct{}

func (N50) Exp() int { return -50 }

// P60 is the exponent 60.
type P60 struct{}

func (P60) Exp() int { return 60 }

// N60 is the exponent -60.
type N60 struct{}

func (N60) Exp() int { return -60 }

// P70 is the exponent 70.
type P70 struct{}

func (P70) Exp() int { return 70 }

// N70 is the exponent -70.
type N70 struct{}

func (N70) Exp() int { return -70 }

// P80 is the exponent 80.
type P80 struct{}

func (P80) Exp() int { return 80 }

// N80 is the exponent -80.
type N80 struct{}

func (N80) Exp() int { return -80 }
