// Package varint implements the LEB128-style variable-length integer
// encoding used for every numeric field in an fsdb database: little-endian,
// 7 payload bits per byte plus a high continuation bit, terminated by a
// byte whose continuation bit is clear.
package varint

import "fmt"

// maxBytes is the number of 7-bit groups needed to cover a uint64: nine full
// groups (63 bits) plus one group holding the top bit.
const maxBytes = 10

// ErrUnterminated is returned when a stream ends before a terminating byte
// (continuation bit clear) is seen.
var ErrUnterminated = fmt.Errorf("varint: unterminated sequence")

// ErrOverflow is returned when a decoded value would not fit in 64 bits.
var ErrOverflow = fmt.Errorf("varint: value overflows 64 bits")

// Append encodes v and appends its bytes to dst, returning the extended
// slice. Encoding zero produces a single zero byte; encoding is canonical,
// meaning no byte beyond the one needed to carry the value's highest set
// bit is ever emitted with its continuation bit set.
func Append(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			dst = append(dst, b|0x80)
			continue
		}
		return append(dst, b)
	}
}

// Encode is a convenience wrapper around Append that allocates a fresh
// slice sized for the common case.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, maxBytes), v)
}

// Size reports the number of bytes Append would emit for v, without
// allocating.
func Size(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// byteReader is the minimal interface Decode needs: a single-byte reader.
// *bufio.Reader and fsdb's internal cursor both satisfy it.
type byteReader interface {
	ReadByte() (byte, error)
}

// Decode reads one varint from r. It returns ErrUnterminated if the
// underlying reader runs out of bytes before a terminating byte is seen,
// and ErrOverflow if the value would require more than 64 bits.
func Decode(r byteReader) (uint64, error) {
	var v uint64
	var shift uint
	for i := 0; i < maxBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrUnterminated
		}
		if shift == 63 && b > 1 {
			return 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
	return 0, ErrOverflow
}

// DecodeBytes decodes a single varint from the start of buf, returning the
// value and the number of bytes consumed. It is used by callers that hold a
// full buffer (as opposed to a stream) and want to avoid the byteReader
// indirection.
func DecodeBytes(buf []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < len(buf) && i < maxBytes; i++ {
		b := buf[i]
		if shift == 63 && b > 1 {
			return 0, 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	if len(buf) >= maxBytes {
		return 0, 0, ErrOverflow
	}
	return 0, 0, ErrUnterminated
}
