// Package hexcodec converts sequences of unsigned integral values to
// hexadecimal text and back. Unlike encoding/hex it is not limited to
// bytes: each element encodes to 2*sizeof(T) uppercase digits, so a
// []uint32 element becomes 8 digits.
package hexcodec

import (
	"errors"
	"fmt"
	"unsafe"
)

// Decode failures form a closed set: the input either contains a non-hex
// symbol or ends mid-element. Both are reported to the caller, never
// silently defaulted. Use errors.Is to test for them.
var (
	ErrNonHexInput    = errors.New("hexcodec: non-hex input")
	ErrNotEnoughInput = errors.New("hexcodec: not enough input")
)

// Unsigned constrains the element types the codec accepts.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

const digits = "0123456789ABCDEF"

// Encode renders src as uppercase hex, 2*sizeof(T) digits per element,
// most significant nibble first.
func Encode[T Unsigned](src []T) string {
	var zero T
	width := 2 * int(unsafe.Sizeof(zero))

	out := make([]byte, 0, len(src)*width)
	for _, v := range src {
		for shift := 4 * (width - 1); shift >= 0; shift -= 4 {
			out = append(out, digits[(uint64(v)>>shift)&0xF])
		}
	}
	return string(out)
}

// Decode parses hex text produced by Encode (either digit case accepted).
// It returns ErrNonHexInput if a symbol is not a hex digit and
// ErrNotEnoughInput if the input ends before completing an element.
func Decode[T Unsigned](s string) ([]T, error) {
	var zero T
	width := 2 * int(unsafe.Sizeof(zero))

	if len(s)%width != 0 {
		return nil, fmt.Errorf("%w: %d symbols, want a multiple of %d", ErrNotEnoughInput, len(s), width)
	}

	out := make([]T, 0, len(s)/width)
	for i := 0; i < len(s); i += width {
		var v uint64
		for j := 0; j < width; j++ {
			n, ok := nibble(s[i+j])
			if !ok {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrNonHexInput, s[i+j], i+j)
			}
			v = v<<4 | uint64(n)
		}
		out = append(out, T(v))
	}
	return out, nil
}

// EncodeString hex-encodes the bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// DecodeString is the inverse of EncodeString.
func DecodeString(s string) (string, error) {
	b, err := Decode[byte](s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
