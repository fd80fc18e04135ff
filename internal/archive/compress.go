// Package archive reads and writes export bundles, optionally compressed
// with gzip, xz or zstd.
package archive

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression names a compression format.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gz"
	CompressionXZ   Compression = "xz"
	CompressionZstd Compression = "zst"
)

// SplitCompression returns the compression named by path's extension and
// the path without that extension.
func SplitCompression(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz":
		return CompressionGzip, strings.TrimSuffix(path, filepath.Ext(path))
	case ".xz":
		return CompressionXZ, strings.TrimSuffix(path, filepath.Ext(path))
	case ".zst":
		return CompressionZstd, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CompressionNone, path
}

// Compress compresses data with c. CompressionNone returns data unchanged.
func Compress(data []byte, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	var writer io.WriteCloser
	var err error

	switch c {
	case CompressionGzip:
		writer = gzip.NewWriter(&buf)
	case CompressionXZ:
		writer, err = xz.NewWriter(&buf)
	case CompressionZstd:
		writer, err = zstd.NewWriter(&buf)
	default:
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Detect identifies the compression of data by its magic bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, []byte{0x1f, 0x8b}):
		return CompressionGzip
	case bytes.HasPrefix(data, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}):
		return CompressionXZ
	case bytes.HasPrefix(data, []byte{0x28, 0xb5, 0x2f, 0xfd}):
		return CompressionZstd
	}
	return CompressionNone
}

// Decompress decompresses data, detecting the format from its header.
// Uncompressed data is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	switch Detect(data) {
	case CompressionGzip:
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)

	case CompressionXZ:
		reader, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(reader)

	case CompressionZstd:
		decoder, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		return io.ReadAll(decoder)
	}

	return data, nil
}
