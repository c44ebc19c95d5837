package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/fxfit/compress"
	"github.com/arloliu/fxfit/endian"
	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/format"
	"github.com/arloliu/fxfit/regression"
)

// Decode parses a complete record. data must hold exactly one record.
//
// Returns:
//   - Record: Samples and, if the fit flag is set, the stored fit
//   - error: ErrCorruptRecord wrapping the first failed check
func Decode(data []byte) (Record, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return Record{}, err
	}

	body := data[format.HeaderSize:]
	if uint64(len(body)) != uint64(h.PayloadLength) {
		return Record{}, corruptf("payload length %d, header says %d", len(body), h.PayloadLength)
	}

	return decodePayload(h, body)
}

// DecodeFrom reads one record from r. It reads exactly the header and the
// payload length the header names, so records can be concatenated in a
// stream. io.EOF is returned unchanged when r is empty.
func DecodeFrom(r io.Reader) (Record, error) {
	head := make([]byte, format.HeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}

		return Record{}, corruptf("reading header: %v", err)
	}

	h, err := DecodeHeader(head)
	if err != nil {
		return Record{}, err
	}
	if h.PayloadLength > maxPayloadLength(h) {
		return Record{}, corruptf("payload length %d too large for %d samples", h.PayloadLength, h.Count)
	}

	body := make([]byte, h.PayloadLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return Record{}, corruptf("reading payload: %v", err)
	}

	return decodePayload(h, body)
}

func decodePayload(h Header, body []byte) (Record, error) {
	if h.Count < regression.MinSampleCount || h.Count > regression.MaxSampleCount {
		return Record{}, corruptf("sample count %d out of range", h.Count)
	}
	n := int(h.Count)

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Record{}, corruptf("%v", err)
	}
	payload, err := codec.Decompress(body)
	if err != nil {
		return Record{}, fmt.Errorf("%w: decompressing %s payload: %w", ErrCorruptRecord, h.Compression, err)
	}
	if want := payloadSize(n, h.HasFit()); len(payload) != want {
		return Record{}, corruptf("payload holds %d bytes, want %d", len(payload), want)
	}

	engine := h.Engine()
	x, rest, err := readColumn(engine, payload, n)
	if err != nil {
		return Record{}, err
	}
	y, rest, err := readColumn(engine, rest, n)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Samples: regression.Samples{X: x, Y: y}}
	if id := rec.Samples.ID(); id != h.ID {
		return Record{}, corruptf("sample-set ID 0x%016x, header says 0x%016x", id, h.ID)
	}

	if h.HasFit() {
		fit, _, err := readColumn(engine, rest, fitFields)
		if err != nil {
			return Record{}, err
		}
		rec.Fit = &Fit{
			Coefficients: regression.Coefficients{Theta0: fit[0], Theta1: fit[1]},
			Determinant:  fit[2],
			Reciprocal:   fit[3],
		}
	}

	return rec, nil
}

func readColumn(engine endian.EndianEngine, src []byte, n int) ([]fixed.Fixed, []byte, error) {
	raw, rest, err := endian.ReadInt32s(engine, src, n)
	if err != nil {
		return nil, src, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}

	col := make([]fixed.Fixed, n)
	for i, v := range raw {
		col[i] = fixed.FromBits(v)
	}

	return col, rest, nil
}

// maxPayloadLength bounds the stored payload of a stream record before it is
// allocated. Codecs expand incompressible input by a small margin only.
func maxPayloadLength(h Header) uint32 {
	raw := payloadSize(int(min(h.Count, regression.MaxSampleCount)), h.HasFit())

	return uint32(raw + raw/8 + 1024)
}
