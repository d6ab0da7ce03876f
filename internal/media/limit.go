package media

import (
	"fmt"
	"io"
)

// TooLargeError is returned by a limited reader once more than MaxBytes
// have been read.
type TooLargeError struct {
	MaxBytes int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file exceeds the limit of %s", FormatBytes(e.MaxBytes))
}

// LimitReader wraps r so that reading past maxBytes fails with
// *TooLargeError instead of silently truncating.
func LimitReader(r io.Reader, maxBytes int64) io.Reader {
	return &limitReader{r: r, max: maxBytes, left: maxBytes}
}

type limitReader struct {
	r    io.Reader
	max  int64
	left int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// one byte past the limit is enough to know it was exceeded
	if int64(len(p)) > l.left+1 {
		p = p[:l.left+1]
	}
	n, err := l.r.Read(p)
	if int64(n) <= l.left {
		l.left -= int64(n)
		return n, err
	}
	n = int(l.left)
	l.left = 0
	return n, &TooLargeError{MaxBytes: l.max}
}

// ReadAll reads r up to maxBytes.
func ReadAll(r io.Reader, maxBytes int64) ([]byte, error) {
	return io.ReadAll(LimitReader(r, maxBytes))
}
