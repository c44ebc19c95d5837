// Package endian selects the byte order of encoded records and moves Q16.16
// columns in and out of byte slices.
//
// Records are little-endian unless the encoder is asked for big-endian
// output, in which case the header carries format.FlagBigEndian and the
// decoder picks the matching engine:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendInt32s(engine, buf, raw)
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness returns the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine matches the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Select returns the big-endian engine when bigEndian is set and the
// little-endian engine otherwise.
func Select(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// AppendInt32s appends every value of src as four bytes in engine order.
func AppendInt32s(engine EndianEngine, dst []byte, src []int32) []byte {
	dst = growBy(dst, 4*len(src))
	for _, v := range src {
		dst = engine.AppendUint32(dst, uint32(v))
	}

	return dst
}

// ReadInt32s decodes n values from the front of src and returns them with the
// unread remainder of src.
func ReadInt32s(engine EndianEngine, src []byte, n int) ([]int32, []byte, error) {
	if n < 0 || len(src) < 4*n {
		return nil, src, fmt.Errorf("endian: need %d bytes for %d values, have %d", 4*n, n, len(src))
	}

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(engine.Uint32(src[4*i:]))
	}

	return out, src[4*n:], nil
}

func growBy(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
