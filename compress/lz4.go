package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4.Compressor keeps a hash table that is worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor applies LZ4 block compression. Blocks carry no length
// prefix; Decompress grows its buffer until the block fits.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns an LZ4Compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into one LZ4 block. Empty input yields nil.
//
// Incompressible input makes CompressBlock report zero bytes written; the
// block is then stored with an uncompressed literal run so Decompress can
// still reverse it.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block. Empty input yields nil.
//
// The output size is not stored, so decoding starts with four times the
// input size and doubles on lz4.ErrInvalidSourceShortBuffer up to
// MaxDecodedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := min(len(data)*4, MaxDecodedSize); ; size = min(size*2, MaxDecodedSize) {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if size == MaxDecodedSize {
			return nil, fmt.Errorf("lz4: block does not decode into %d bytes: %w", MaxDecodedSize, ErrDecodedTooLarge)
		}
	}
}

// literalBlock encodes data as a single LZ4 sequence with no match, which is
// a valid block for any input.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)

	if n < 15 {
		return append(append(out, byte(n<<4)), data...)
	}

	out = append(out, 0xF0)
	rem := n - 15
	for rem >= 255 {
		out = append(out, 255)
		rem -= 255
	}
	out = append(out, byte(rem))

	return append(out, data...)
}
