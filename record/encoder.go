package record

import (
	"fmt"
	"io"

	"github.com/arloliu/fxfit/compress"
	"github.com/arloliu/fxfit/endian"
	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/format"
	"github.com/arloliu/fxfit/internal/options"
	"github.com/arloliu/fxfit/internal/pool"
)

// fitFields is the number of int32 values in the fit trailer.
const fitFields = 4

// Encode serializes rec. The samples are validated first.
//
// Parameters:
//   - rec: Samples and optional fit
//   - opts: Compression and byte order
//
// Returns:
//   - []byte: The encoded record, owned by the caller
//   - error: regression.ErrInvalidSamples, an option error or a codec error
func Encode(rec Record, opts ...EncoderOption) ([]byte, error) {
	data, _, err := EncodeWithStats(rec, opts...)

	return data, err
}

// EncodeWithStats is Encode that also reports how the payload compressed.
// The stats cover the payload only; the header adds format.HeaderSize bytes.
func EncodeWithStats(rec Record, opts ...EncoderOption) ([]byte, compress.CompressionStats, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, compress.CompressionStats{}, err
	}

	if err := rec.Samples.Validate(); err != nil {
		return nil, compress.CompressionStats{}, err
	}

	h := Header{
		Version:     format.Version,
		Compression: cfg.compression,
		Count:       uint32(rec.Samples.Len()),
		ID:          rec.Samples.ID(),
	}
	if cfg.bigEndian {
		h.Flags |= format.FlagBigEndian
	}
	if rec.Fit != nil {
		h.Flags |= format.FlagHasFit
	}
	engine := h.Engine()

	payload := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(payload)

	payload.Grow(payloadSize(rec.Samples.Len(), rec.Fit != nil))
	payload.B = appendColumn(engine, payload.B, rec.Samples.X)
	payload.B = appendColumn(engine, payload.B, rec.Samples.Y)
	if rec.Fit != nil {
		payload.B = endian.AppendInt32s(engine, payload.B, []int32{
			rec.Fit.Coefficients.Theta0.Bits(),
			rec.Fit.Coefficients.Theta1.Bits(),
			rec.Fit.Determinant.Bits(),
			rec.Fit.Reciprocal.Bits(),
		})
	}

	packed, stats, err := compress.Compress(cfg.compression, payload.Bytes())
	if err != nil {
		return nil, stats, fmt.Errorf("record: %w", err)
	}
	h.PayloadLength = uint32(len(packed))

	out := make([]byte, 0, format.HeaderSize+len(packed))
	out = h.appendTo(out)
	out = append(out, packed...)

	return out, stats, nil
}

// EncodeTo writes the encoded record to w and returns the bytes written.
func EncodeTo(w io.Writer, rec Record, opts ...EncoderOption) (int, error) {
	data, err := Encode(rec, opts...)
	if err != nil {
		return 0, err
	}

	return w.Write(data)
}

func appendColumn(engine endian.EndianEngine, dst []byte, col []fixed.Fixed) []byte {
	raw, cleanup := pool.GetInt32Slice(len(col))
	defer cleanup()

	for i, v := range col {
		raw[i] = v.Bits()
	}

	return endian.AppendInt32s(engine, dst, raw)
}

func payloadSize(n int, hasFit bool) int {
	size := 2 * 4 * n
	if hasFit {
		size += 4 * fitFields
	}

	return size
}
