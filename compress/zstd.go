package compress

// ZstdCompressor applies Zstandard compression.
//
// The default build uses the pure Go klauspost/compress/zstd implementation
// with pooled encoders and decoders. Building with cgo and the gozstd tag
// switches to the valyala/gozstd bindings; both produce standard zstd frames,
// so records written by one build decode with the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor returns a ZstdCompressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
