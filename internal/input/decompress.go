package input

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress sniffs the start of r and wraps it in a decompressor when it
// is a gzip or zstd stream. The name of the detected compression is
// returned, or an empty string if the data is not compressed.
func decompress(r io.Reader) (io.ReadCloser, string, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, "", err
		}
		return gr, "gzip", nil
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, "", err
		}
		return zr.IOReadCloser(), "zstd", nil
	default:
		return io.NopCloser(br), "", nil
	}
}
