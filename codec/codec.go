package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/watchcharts/chartkit/compress"
	"github.com/watchcharts/chartkit/endian"
	"github.com/watchcharts/chartkit/format"
	"github.com/watchcharts/chartkit/internal/options"
	"github.com/watchcharts/chartkit/internal/pool"
	"github.com/watchcharts/chartkit/series"
)

const (
	magic      = "CKS1"
	headerSize = len(magic) + 1
	pointSize  = 16
)

var (
	// ErrInvalidPayload is returned when a payload is truncated or has a bad header.
	ErrInvalidPayload = errors.New("invalid series payload")
	// ErrSizeMismatch is returned when the column block does not match the point count.
	ErrSizeMismatch = errors.New("series payload size mismatch")
)

var engine = endian.GetLittleEndianEngine()

// EncodeConfig holds the payload encoding parameters.
type EncodeConfig struct {
	Compression format.CompressionType
}

// EncodeOption is a functional option for EncodeConfig.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression selects the compression applied to the column block.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if !ct.IsValid() {
			return fmt.Errorf("invalid compression type: %d", uint8(ct))
		}
		cfg.Compression = ct

		return nil
	})
}

// Encode serializes s. Without options the column block is stored uncompressed.
func Encode(s series.Series, opts ...EncodeOption) ([]byte, error) {
	cfg := EncodeConfig{Compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(s) * pointSize)
	for _, p := range s {
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(p.X))
	}
	for _, p := range s {
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(p.Y))
	}

	block, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress series block: %w", err)
	}

	out := make([]byte, 0, headerSize+binary.MaxVarintLen64+len(block))
	out = append(out, magic...)
	out = append(out, byte(cfg.Compression))
	out = binary.AppendUvarint(out, uint64(len(s)))
	out = append(out, block...)

	return out, nil
}

// Decode parses a payload produced by Encode. An encoded empty series decodes to an
// empty, non-nil Series.
func Decode(data []byte) (series.Series, error) {
	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return nil, ErrInvalidPayload
	}

	ct := format.CompressionType(data[len(magic)])
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	count, n := binary.Uvarint(data[headerSize:])
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad point count", ErrInvalidPayload)
	}

	block, err := codec.Decompress(data[headerSize+n:])
	if err != nil {
		return nil, fmt.Errorf("decompress series block: %w", err)
	}

	if count > uint64(len(block))/pointSize || uint64(len(block)) != count*pointSize {
		return nil, fmt.Errorf("%w: %d points, %d bytes", ErrSizeMismatch, count, len(block))
	}

	s := make(series.Series, count)
	yOff := int(count) * 8
	for i := range s {
		s[i].X = math.Float64frombits(engine.Uint64(block[i*8:]))
		s[i].Y = math.Float64frombits(engine.Uint64(block[yOff+i*8:]))
	}

	return s, nil
}
