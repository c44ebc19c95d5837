// Package hash derives content identities for fixed-point sample data.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Columns computes the xxHash64 of int32 columns laid out back to back in
// little-endian order, independent of the host byte order. Each column is
// prefixed with its length so that ([a b], [c]) and ([a], [b c]) differ.
func Columns(cols ...[]int32) uint64 {
	d := xxhash.New()

	var buf [4]byte
	for _, col := range cols {
		binary.LittleEndian.PutUint32(buf[:], uint32(len(col)))
		_, _ = d.Write(buf[:])
		for _, v := range col {
			binary.LittleEndian.PutUint32(buf[:], uint32(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
