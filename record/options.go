package record

import (
	"fmt"

	"github.com/arloliu/fxfit/format"
	"github.com/arloliu/fxfit/internal/options"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

func defaultEncoderConfig() encoderConfig {
	return encoderConfig{compression: format.CompressionNone}
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is
// format.CompressionNone.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if !c.Valid() {
			return fmt.Errorf("record: invalid compression type 0x%02x", uint8(c))
		}
		cfg.compression = c

		return nil
	})
}

// WithBigEndian writes the header and payload in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}
