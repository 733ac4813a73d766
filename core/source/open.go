// core/source/open.go
package source

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns the byte stream for path. "-" selects stdin.
//
// With decompress=false the stored bytes are returned untouched: an entropy
// measurement must default to the file as it sits on disk. With
// decompress=true, gzip input is detected by magic number (1F 8B) and read
// through a decoder; non-gzip input passes through unchanged.
func Open(path string, decompress bool) (io.ReadCloser, error) {
	if path == "-" {
		if !decompress {
			return io.NopCloser(os.Stdin), nil
		}
		return sniffGzip(io.NopCloser(os.Stdin))
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !decompress {
		return fh, nil
	}
	rc, err := sniffGzip(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// sniffGzip peeks at the stream head and layers a gzip reader only when the
// magic bytes are present. Works on non-seekable inputs (stdin).
func sniffGzip(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	sig, err := br.Peek(2)
	if err == nil && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, gerr := gzip.NewReader(br)
		if gerr != nil {
			return nil, gerr
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
	}
	// Too short for a header or not gzip: hand back the buffered bytes.
	return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
}
