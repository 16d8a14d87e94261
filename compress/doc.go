// Package compress provides the compression codecs applied to encoded series payloads.
//
// A stashed full-resolution series can be large (a chart with 100k points per dataset
// stores 1.6 MB of raw float64 columns), so the store layer compresses payloads before
// writing them to a remote backend. Supported algorithms:
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// All codecs are stateless values and safe for concurrent use. Zstd and LZ4 pool their
// internal encoders.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
package compress
