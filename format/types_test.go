package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0x9).String())
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{" s2 ", CompressionS2},
		{"Lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		got, err := ParseCompressionType(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCompressionType("gzip")
	require.Error(t, err)
}

func TestCompressionType_Text(t *testing.T) {
	var c CompressionType
	require.NoError(t, c.UnmarshalText([]byte("zstd")))
	require.Equal(t, CompressionZstd, c)

	text, err := CompressionLZ4.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "lz4", string(text))

	_, err = CompressionType(0).MarshalText()
	require.Error(t, err)
	require.Error(t, c.UnmarshalText([]byte("brotli")))
}
