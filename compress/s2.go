package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses payloads with S2, a faster Snappy-compatible format.
//
// Payloads are encoded with s2.EncodeBetter: a stashed series is written once per
// SetData and read on every redraw, so the slower, tighter encoding pays off.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data into a single S2 block. It returns nil for empty input.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, s2.ErrTooLarge
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

// Decompress decodes an S2 block. The block header records the decoded length; blocks
// claiming more than maxDecompressedSize are rejected before any allocation.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxDecompressedSize {
		return nil, fmt.Errorf("s2 block too large: %d bytes", n)
	}

	return s2.Decode(make([]byte, n), data)
}
