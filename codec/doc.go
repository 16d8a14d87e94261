// Package codec serializes a series.Series into a compact binary payload.
//
// # Payload Layout
//
//	+-------+-------------+-------------+-------------------------------+
//	| magic | compression | count       | column block (maybe compressed)|
//	| 4B    | 1B          | uvarint     | count*8B X, then count*8B Y    |
//	+-------+-------------+-------------+-------------------------------+
//
// The magic is "CKS1". Coordinates are stored as little-endian IEEE 754 bits, so NaN and
// infinities survive a round trip unchanged. X and Y are stored as separate columns, which
// compresses noticeably better than interleaved pairs for time-ordered data.
//
//	payload, err := codec.Encode(s, codec.WithCompression(format.CompressionZstd))
//	s, err = codec.Decode(payload)
package codec
