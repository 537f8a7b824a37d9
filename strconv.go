// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fix/internal/mathutil"
	"github.com/avdva/fix/scale"
)

const (
	delim = '.'
	// parsed numbers with more digits above the scale step than this are out of range,
	// and with more digits below it are zero.
	maxParseDigits = 2048
)

type posError struct {
	pos int
	msg string
}

func newPosError(msg string, pos int) *posError {
	return &posError{msg: msg, pos: pos}
}

func (pe *posError) Error() string {
	return fmt.Sprintf("%s: %s at pos %d", ErrSyntax.Error(), pe.msg, pe.pos)
}

func (pe *posError) Unwrap() error {
	return ErrSyntax
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses a number in decimal notation, like `12.345`, `-1.5e3` or `"+0.25"`.
// Surrounding spaces and double quotes are ignored.
// Digits below B^E are truncated toward zero.
// Returns ErrSyntax for malformed input, and ErrRange, if the number does not fit T.
func Parse[T constraints.Integer, B scale.Base, E scale.Exponent](s string) (Fix[T, B, E], error) {
	digits, e, neg, err := parse(s)
	if err != nil {
		return Fix[T, B, E]{}, err
	}
	if len(digits) == 0 {
		return Fix[T, B, E]{}, nil
	}
	mag := len(digits) + e - scaleDigits[B, E]()
	if mag > maxParseDigits {
		return Fix[T, B, E]{}, ErrRange
	}
	if mag < -maxParseDigits {
		// far below any representable step.
		return Fix[T, B, E]{}, nil
	}
	if scale.RadixOf[B]() == 10 && len(digits) < 20 {
		if v, ok, err := parseDecimal[T, B, E](digits, e, neg); ok {
			return v, err
		}
	}
	num, _ := new(big.Int).SetString(digits, 10)
	if neg {
		num.Neg(num)
	}
	return fromScaled[T, B, E](num, e)
}

// MustParse is like Parse, but panics on error.
// Use for package variable initialization and test code.
func MustParse[T constraints.Integer, B scale.Base, E scale.Exponent](s string) Fix[T, B, E] {
	v, err := Parse[T, B, E](s)
	if err != nil {
		panic(err)
	}
	return v
}

// scaleDigits returns the decimal order of B^E.
func scaleDigits[B scale.Base, E scale.Exponent]() int {
	exp, radix := scale.ExpOf[E](), scale.RadixOf[B]()
	switch {
	case radix == 10:
		return exp
	case radix < 2:
		return 0
	default:
		return int(float64(exp) * math.Log10(float64(radix)))
	}
}

// parseDecimal converts digits × 10^e for the base 10 without allocations.
// It returns false, if the intermediate value doesn't fit uint64.
func parseDecimal[T constraints.Integer, B scale.Base, E scale.Exponent](digits string, e int, neg bool) (Fix[T, B, E], bool, error) {
	m, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Fix[T, B, E]{}, false, nil
	}
	switch shift := e - scale.ExpOf[E](); {
	case shift >= 0:
		if mu.DecimalDigits(m)+shift > 19 {
			return Fix[T, B, E]{}, false, nil
		}
		m *= mu.Pow10(shift)
	case -shift < 20:
		m /= mu.Pow10(-shift)
	default:
		m = 0
	}
	bits, ok := fromMagnitude[T](m, neg)
	if !ok {
		return Fix[T, B, E]{}, true, ErrRange
	}
	return Fix[T, B, E]{bits: bits}, true, nil
}

func parse(s string) (digits string, e int, neg bool, err error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return "", 0, false, newPosError("empty input", offset+1)
	}
	digits, e, err = doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		err = addPosErrorOffset(err, offset+1)
	}
	return digits, e, neg, err
}

// doParse parses given decimal string.
// returns a string without leading and trailing zeros, and an exponent
func doParse(s string) (result string, e int, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	result, eFromDelim := removeTrailingZerosString(result, delimPos)
	return result, e + eFromDelim, nil
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func removeLeadingZeros(s string) (result string, delimPos, e int, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos := -1, -1
	sawDigit := false
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			sawDigit = true
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			if !sawDigit {
				return "", 0, 0, newPosError("missing digits before exponent", i)
			}
			parsed, err := strconv.ParseInt(s[i+1:], 10, 32)
			if err != nil {
				return "", 0, 0, newPosError("bad exponent", i+1)
			}
			e = int(parsed)
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimiter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if !sawDigit {
		return "", 0, 0, newPosError("no digits", 0)
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, 0, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZerosString(s string, delimPos int) (result string, e int) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, delimPos - len(s)
}
