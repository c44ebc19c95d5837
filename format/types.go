// Package format defines the identifiers shared by the record codec and the
// compression layer.
package format

// CompressionType identifies the codec applied to a record payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Record layout constants.
const (
	// Magic opens every encoded record.
	Magic = "FXFT"
	// Version is the current record layout version.
	Version uint8 = 1
	// HeaderSize is the fixed size of the record header in bytes.
	HeaderSize = 24
)

// Flags is the record header flag byte.
type Flags uint8

const (
	// FlagHasFit marks a record that carries fitted coefficients.
	FlagHasFit Flags = 1 << 0
	// FlagBigEndian marks a record whose header and payload are big-endian.
	FlagBigEndian Flags = 1 << 1

	knownFlags = FlagHasFit | FlagBigEndian
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Valid reports whether f only uses defined bits.
func (f Flags) Valid() bool {
	return f&^knownFlags == 0
}

// Valid reports whether c is a defined compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
