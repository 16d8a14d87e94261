package compress

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/watchcharts/chartkit/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// columnPayload mimics an encoded series: a column of slowly rising float64 values.
func columnPayload(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := range n {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(1000+float64(i)*0.5))
	}

	return buf
}

func randomPayload(n int) []byte {
	rng := rand.New(rand.NewSource(42))
	buf := make([]byte, n)
	rng.Read(buf)

	return buf
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "series")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0x7f), "series")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid series compression")
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"column": columnPayload(4096),
		"random": randomPayload(2048),
		"tiny":   {0x42},
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				input := bytes.Clone(payload)
				packed, err := codec.Compress(input)
				require.NoError(t, err)
				require.Equal(t, payload, input, "input must not be modified")

				unpacked, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, payload, unpacked)
			})
		}
	}
}

func TestCodecs_CompressColumns(t *testing.T) {
	payload := columnPayload(8192)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(packed), len(payload), ct.String())
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, packed)

		unpacked, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, unpacked)
	}
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte("definitely not a compressed frame")

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestS2Compressor_RejectsOversizedBlock(t *testing.T) {
	// A block header claiming 1 GiB of output, followed by junk.
	block := binary.AppendUvarint(nil, 1<<30)
	block = append(block, 0x00, 0x01, 0x02)

	_, err := NewS2Compressor().Decompress(block)
	require.Error(t, err)
	require.Contains(t, err.Error(), "too large")
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte{1, 2, 3}
	c := NewNoOpCompressor()

	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func BenchmarkCodecs(b *testing.B) {
	payload := columnPayload(16 * 1024)
	for _, ct := range allTypes {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				packed, _ := codec.Compress(payload)
				_, _ = codec.Decompress(packed)
			}
		})
	}
}
