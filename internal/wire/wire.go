// Package wire defines the byte-level contract between the mock parser
// server and its clients: a fixed terminator marking end of request and a
// fixed JSON payload returned as the reply.
package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	// Terminator marks the end of a client request.
	Terminator = "\n<<END>>\n"

	// Response is the canned parser reply sent for every request.
	Response = `{"kind":"Program","children":[]}`

	// DefaultAddr is where the mock parser listens unless overridden.
	DefaultAddr = "127.0.0.1:46000"

	// ChunkSize is the per-read buffer size used while accumulating a request.
	ChunkSize = 4096
)

// Terminated reports whether buf ends with the request terminator.
func Terminated(buf []byte) bool {
	return bytes.HasSuffix(buf, []byte(Terminator))
}

// ReadRequest accumulates bytes from r until the buffer ends with the
// terminator or the peer closes its side. A close before the terminator is
// not an error: the accumulated bytes are returned as the request.
func ReadRequest(r io.Reader) ([]byte, error) {
	var data []byte
	chunk := make([]byte, ChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			data = append(data, chunk[:n]...)
			if Terminated(data) {
				return data, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return data, nil
			}
			return data, fmt.Errorf("failed to read request: %w", err)
		}
	}
}
