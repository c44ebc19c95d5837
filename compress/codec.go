package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/fxfit/format"
)

// MaxDecodedSize bounds the output of every Decompress. The largest record
// payload is a little over 256 KiB, so anything past this is corrupt input.
const MaxDecodedSize = 1 << 20

// ErrDecodedTooLarge is returned when a payload would decode past
// MaxDecodedSize.
var ErrDecodedTooLarge = errors.New("compress: decoded size exceeds limit")

// Compressor compresses an encoded record payload.
//
// The returned slice is owned by the caller and the input is not modified.
// NoOpCompressor is the exception: it returns its input unchanged.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Corrupted input or input produced by another algorithm yields an error.
// Output larger than MaxDecodedSize yields ErrDecodedTooLarge.
// Implementations in this package are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compressed payload.
type CompressionStats struct {
	// Algorithm identifies the codec.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int64
	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize, or 0 for an empty
// payload. Values above 1 mean the codec expanded the payload, which is
// common for the few hundred bytes of a small sample set.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type: %s (0x%02x)", compressionType, uint8(compressionType))
}

// Compress runs data through the codec for compressionType and reports the
// sizes involved.
func Compress(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	stats := CompressionStats{Algorithm: compressionType, OriginalSize: int64(len(data))}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, stats, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, stats, fmt.Errorf("compress: %s: %w", compressionType, err)
	}
	stats.CompressedSize = int64(len(out))

	return out, stats, nil
}
