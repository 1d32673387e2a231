package admix

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
)

// Byte code signature from https://stackoverflow.com/a/19127748/199475
var gzipSig = []byte{0x1f, 0x8b, 0x08}

// MaybeDecompressReadCloserFromFile sniffs the file for a gzip signature and
// returns a reader over the decompressed stream if one is found, or over the
// raw file otherwise. Closing the returned reader does not close the
// underlying file; callers close both.
func MaybeDecompressReadCloserFromFile(f *os.File) (io.ReadCloser, error) {
	buff := make([]byte, len(gzipSig))
	if _, err := io.ReadFull(f, buff); err != nil {
		// Too short to carry a signature, so certainly not compressed
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
		return f, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	if bytes.Equal(buff, gzipSig) {
		return gzip.NewReader(f)
	}

	return f, nil
}
