// Package security provides safety guards for reading untrusted input.
package security

import (
	"fmt"
	"io"
)

// LimitedReader wraps an io.Reader and limits the total bytes that can be
// read. This prevents decompression bomb attacks when importing bundles.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
