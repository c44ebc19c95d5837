//go:build cgo && gozstd

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress encodes data as a single zstd frame through libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes a zstd frame through libzstd. Empty input yields nil.
//
// The frame is streamed through a reader capped one byte past
// MaxDecodedSize, so a frame without a content size cannot grow the output
// unbounded.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := io.ReadAll(io.LimitReader(zr, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) > MaxDecodedSize {
		return nil, fmt.Errorf("zstd: %w", ErrDecodedTooLarge)
	}

	return out, nil
}
