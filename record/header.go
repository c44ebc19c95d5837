package record

import (
	"fmt"

	"github.com/arloliu/fxfit/endian"
	"github.com/arloliu/fxfit/format"
)

// Header is the fixed-size record header.
type Header struct {
	Version     uint8
	Flags       format.Flags
	Compression format.CompressionType
	// Count is the number of samples.
	Count uint32
	// ID is the xxHash64 identity of the sample set.
	ID uint64
	// PayloadLength is the stored payload size in bytes.
	PayloadLength uint32
}

// Engine returns the byte order the record was written in.
func (h Header) Engine() endian.EndianEngine {
	return endian.Select(h.Flags.Has(format.FlagBigEndian))
}

// HasFit reports whether the payload carries fitted coefficients.
func (h Header) HasFit() bool {
	return h.Flags.Has(format.FlagHasFit)
}

// appendTo appends the serialized header to dst.
func (h Header) appendTo(dst []byte) []byte {
	engine := h.Engine()

	dst = append(dst, format.Magic...)
	dst = append(dst, h.Version, byte(h.Flags), byte(h.Compression), 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint64(dst, h.ID)
	dst = engine.AppendUint32(dst, h.PayloadLength)

	return dst
}

// DecodeHeader parses and validates the header at the start of data without
// touching the payload.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < format.HeaderSize {
		return Header{}, corruptf("need %d header bytes, have %d", format.HeaderSize, len(data))
	}
	if string(data[:4]) != format.Magic {
		return Header{}, corruptf("bad magic %q", data[:4])
	}

	h := Header{
		Version:     data[4],
		Flags:       format.Flags(data[5]),
		Compression: format.CompressionType(data[6]),
	}
	if h.Version != format.Version {
		return Header{}, corruptf("unsupported version %d", h.Version)
	}
	if !h.Flags.Valid() {
		return Header{}, corruptf("unknown flags 0x%02x", uint8(h.Flags))
	}
	if !h.Compression.Valid() {
		return Header{}, corruptf("unknown compression type 0x%02x", uint8(h.Compression))
	}
	if data[7] != 0 {
		return Header{}, corruptf("reserved byte is 0x%02x", data[7])
	}

	engine := h.Engine()
	h.Count = engine.Uint32(data[8:12])
	h.ID = engine.Uint64(data[12:20])
	h.PayloadLength = engine.Uint32(data[20:24])

	return h, nil
}

func corruptf(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptRecord, fmt.Sprintf(msg, args...))
}
