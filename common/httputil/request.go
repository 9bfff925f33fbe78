package httputil

import (
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodySize caps request bodies read by ReadBody (1 MiB).
const DefaultMaxBodySize = 1 << 20

// ReadBody reads and returns the request body, enforcing maxSize.
// A maxSize of 0 applies DefaultMaxBodySize.
func ReadBody(r *http.Request, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}

	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	if int64(len(body)) > maxSize {
		return nil, fmt.Errorf("request body exceeds %d bytes", maxSize)
	}
	return body, nil
}
