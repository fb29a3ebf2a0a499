package blast

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/iamciera/BioRanges/core/errors"
)

// CompressionType represents the compression format of a report file.
type CompressionType string

const (
	// CompressionNone is a plain XML report.
	CompressionNone CompressionType = "none"
	// CompressionGzip is a gzip-compressed report.
	CompressionGzip CompressionType = "gzip"
	// CompressionXZ is an xz-compressed report.
	CompressionXZ CompressionType = "xz"
)

// DetectCompression detects the compression type of a report file from its
// magic bytes. Files without a known compression signature are treated as
// plain XML.
func DetectCompression(path string) (CompressionType, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.NewIO("open", path, err)
	}
	defer file.Close()

	// Read magic bytes
	magic := make([]byte, 6)
	n, err := file.Read(magic)
	if err != nil && err != io.EOF {
		return "", errors.NewIO("read magic bytes", path, err)
	}

	// Check for gzip magic (1f 8b)
	if n >= 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return CompressionGzip, nil
	}

	// Check for XZ magic (fd 37 7a 58 5a 00)
	if n >= 6 && magic[0] == 0xfd && magic[1] == 0x37 && magic[2] == 0x7a &&
		magic[3] == 0x58 && magic[4] == 0x5a && magic[5] == 0x00 {
		return CompressionXZ, nil
	}

	return CompressionNone, nil
}

// reportReader decompresses a report file transparently and closes the
// underlying file with the decompressor.
type reportReader struct {
	io.Reader
	file *os.File
	gz   *gzip.Reader
}

func (r *reportReader) Close() error {
	if r.gz != nil {
		if err := r.gz.Close(); err != nil {
			r.file.Close()
			return err
		}
	}
	return r.file.Close()
}

// Open opens a report file for reading, decompressing gzip and xz input
// transparently based on the detected magic bytes.
func Open(path string) (io.ReadCloser, error) {
	compression, err := DetectCompression(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}

	switch compression {
	case CompressionGzip:
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, errors.NewIO("gzip", path, err)
		}
		return &reportReader{Reader: gzReader, file: file, gz: gzReader}, nil
	case CompressionXZ:
		xzReader, err := xz.NewReader(file)
		if err != nil {
			file.Close()
			return nil, errors.NewIO("xz", path, err)
		}
		return &reportReader{Reader: xzReader, file: file}, nil
	default:
		return file, nil
	}
}
