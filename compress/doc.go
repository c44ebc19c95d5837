// Package compress provides the payload codecs of encoded records.
//
// A record payload is a handful of int32 columns: the X and Y samples and,
// optionally, the fitted coefficients. The record package encodes the
// columns first and then hands the bytes to one of these codecs, selected by
// the format.CompressionType stored in the record header.
//
// # Codecs
//
//   - format.CompressionNone: NoOpCompressor, payload stored as is.
//   - format.CompressionZstd: ZstdCompressor, best ratio on long sample sets.
//   - format.CompressionS2: S2Compressor, fast with a moderate ratio.
//   - format.CompressionLZ4: LZ4Compressor, fastest decoding.
//
// Small sample sets rarely shrink. Eight Q16.16 pairs occupy 64 bytes and
// every codec except NoOp adds framing to that, so None is the record
// default and compression pays off for sample sets in the thousands.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// Compress is a shortcut that also reports sizes:
//
//	packed, stats, err := compress.Compress(format.CompressionZstd, payload)
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Build tags
//
// Zstandard uses the pure Go github.com/klauspost/compress/zstd by default.
// Building with cgo enabled and the gozstd tag switches to
// github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool caches and are safe for
// concurrent use.
package compress
