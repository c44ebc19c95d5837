// Package record encodes sample sets, and optionally the line fitted to
// them, into a compact self-checking binary record.
//
// # Layout
//
// A record is a 24-byte header followed by a payload:
//
//	offset  size  field
//	0       4     magic "FXFT"
//	4       1     version (1)
//	5       1     flags: bit 0 has fit, bit 1 big-endian
//	6       1     compression type (format.CompressionType)
//	7       1     reserved, zero
//	8       4     sample count
//	12      8     sample-set ID, xxHash64 of the raw X and Y bits
//	20      4     payload length in bytes, after compression
//
// The payload holds the X column and the Y column as raw Q16.16 int32 bits
// and, when the fit flag is set, θ0, θ1, D and s. Multi-byte fields use the
// byte order named by the flags, little-endian by default. The ID is always
// computed over the little-endian form so it does not depend on the record's
// byte order.
//
// # Usage
//
//	result, err := regression.Fit(ctx, samples)
//	...
//	data, err := record.Encode(record.FromResult(result),
//	    record.WithCompression(format.CompressionZstd))
//	...
//	rec, err := record.Decode(data)
//	if errors.Is(err, record.ErrCorruptRecord) {
//	    // truncated, tampered with or not a record at all
//	}
//
// Decode checks every header field, the payload length and the ID. Verify
// goes one step further and refits the decoded samples to confirm the stored
// coefficients.
package record
