package jtl

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression algorithm names
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
	CompressionLZ4  = "lz4"
)

// Compressed file extensions
const (
	ExtGzip = ".gz"
	ExtZstd = ".zst"
	ExtLZ4  = ".lz4"
)

// DetectAlgorithmFromPath returns the compression algorithm implied by the file extension.
func DetectAlgorithmFromPath(filePath string) string {
	lower := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lower, ExtGzip):
		return CompressionGzip
	case strings.HasSuffix(lower, ExtZstd):
		return CompressionZstd
	case strings.HasSuffix(lower, ExtLZ4):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// newDecoder wraps r with a stream decoder for algorithm.
// The returned close func releases decoder resources, not r itself.
func newDecoder(r io.Reader, algorithm string) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch algorithm {
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip decompression failed: %w", err)
		}
		return gz, gz.Close, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd decompression failed: %w", err)
		}
		return dec, func() error {
			dec.Close()
			return nil
		}, nil

	case CompressionLZ4:
		return lz4.NewReader(r), noop, nil

	default:
		return r, noop, nil
	}
}
