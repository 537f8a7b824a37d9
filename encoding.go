// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fix/internal/mathutil"
)

// All encodings carry only the underlying bits. The base and the exponent
// are not serialized, so the decoding side must use the same type.

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeNumber
)

const (
	// JSONModeNumber marshals the bits as a json number, like `1500`.
	JSONModeNumber = iota
	// JSONModeString marshals the bits as a string, like `"1500"`.
	// Useful for consumers, which parse json numbers as float64.
	JSONModeString
)

// MarshalJSON marshals the bits according to current JSONMode.
func (v Fix[T, B, E]) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeString {
		data := append([]byte{'"'}, v.appendBits(nil)...)
		return append(data, '"'), nil
	}
	return v.appendBits(nil), nil
}

// UnmarshalJSON unmarshals a number or a string with an integer.
// null is a no-op.
func (v *Fix[T, B, E]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return v.UnmarshalText(data)
}

// MarshalText implements encoding.TextMarshaler.
func (v Fix[T, B, E]) MarshalText() ([]byte, error) {
	return v.appendBits(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Fix[T, B, E]) UnmarshalText(data []byte) error {
	bits, err := parseBits[T](string(data))
	if err != nil {
		return err
	}
	v.bits = bits
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The bits are written in big-endian order, using the size of T.
func (v Fix[T, B, E]) MarshalBinary() ([]byte, error) {
	size := mu.BitSize[T]() / 8
	data := binary.BigEndian.AppendUint64(nil, uint64(v.bits))
	return data[8-size:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Fix[T, B, E]) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	size := mu.BitSize[T]() / 8
	if len(data) != size {
		return Error.New("expected %d bytes, got %d", size, len(data))
	}
	var buf [8]byte
	copy(buf[8-size:], data)
	v.bits = T(binary.BigEndian.Uint64(buf[:]))
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Fix[T, B, E]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if mu.IsSigned[T]() {
		return enc.EncodeInt(int64(v.bits))
	}
	return enc.EncodeUint(uint64(v.bits))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Fix[T, B, E]) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	defer Error.WrapP(&err)

	if mu.IsSigned[T]() {
		i, err := dec.DecodeInt64()
		if err != nil {
			return oops.Trace(err)
		}
		if int64(T(i)) != i {
			return ErrRange
		}
		v.bits = T(i)
		return nil
	}
	u, err := dec.DecodeUint64()
	if err != nil {
		return oops.Trace(err)
	}
	if uint64(T(u)) != u {
		return ErrRange
	}
	v.bits = T(u)
	return nil
}

func (v Fix[T, B, E]) appendBits(dst []byte) []byte {
	if mu.IsSigned[T]() {
		return strconv.AppendInt(dst, int64(v.bits), 10)
	}
	return strconv.AppendUint(dst, uint64(v.bits), 10)
}

func parseBits[T constraints.Integer](s string) (_ T, err error) {
	defer Error.WrapP(&err)

	if mu.IsSigned[T]() {
		var i int64
		if i, err = strconv.ParseInt(s, 10, mu.BitSize[T]()); err == nil {
			return T(i), nil
		}
	} else {
		var u uint64
		if u, err = strconv.ParseUint(s, 10, mu.BitSize[T]()); err == nil {
			return T(u), nil
		}
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrRange
	}
	return 0, ErrSyntax
}
