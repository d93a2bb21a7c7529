// Package client is a thin wrapper around the parser backend's wire
// contract: it ships source text to the endpoint, terminator-framed, and
// returns the JSON reply.
package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/ogreyling/parsemock/internal/logging"
	"github.com/ogreyling/parsemock/internal/wire"
)

const defaultDialTimeout = 5 * time.Second

// Client sends requests to a parser endpoint.
type Client struct {
	// Addr is the endpoint address. Empty means wire.DefaultAddr.
	Addr string

	// DialTimeout bounds connection establishment. Zero means a 5s default.
	DialTimeout time.Duration
}

// New returns a client for the default mock parser address.
func New() *Client {
	return &Client{Addr: wire.DefaultAddr}
}

func (c *Client) addr() string {
	if c.Addr == "" {
		return wire.DefaultAddr
	}
	return c.Addr
}

func (c *Client) dialTimeout() time.Duration {
	if c.DialTimeout <= 0 {
		return defaultDialTimeout
	}
	return c.DialTimeout
}

// Send writes payload to the endpoint, appending the wire terminator when
// the payload does not already end with it, then half-closes the write side
// and reads the reply to EOF.
func (c *Client) Send(ctx context.Context, payload []byte) ([]byte, error) {
	log := logging.Get(ctx)

	dialer := net.Dialer{Timeout: c.dialTimeout()}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr())
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", c.addr(), err)
	}
	defer func() { _ = conn.Close() }()
	log.Debug().Str("addr", c.addr()).Int("bytes", len(payload)).Msg("sending request")

	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}
	if !wire.Terminated(payload) {
		if _, err := conn.Write([]byte(wire.Terminator)); err != nil {
			return nil, fmt.Errorf("failed to write terminator: %w", err)
		}
	}

	// Half-close so a server reading to EOF also completes.
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.CloseWrite(); err != nil {
			return nil, fmt.Errorf("failed to close write side: %w", err)
		}
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read reply: %w", err)
	}
	log.Debug().Int("bytes", len(reply)).Msg("reply received")
	return reply, nil
}

// SendFile reads path through fs and sends its contents.
func (c *Client) SendFile(ctx context.Context, fs afero.Fs, path string) ([]byte, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return c.Send(ctx, content)
}

// DownloadToTemp fetches url and writes the body to a temp file on fs,
// returning the file's path. The caller removes the file when done.
func DownloadToTemp(ctx context.Context, fs afero.Fs, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	tmp, err := afero.TempFile(fs, "", "parsemock-download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = tmp.Close() }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = fs.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write download to %s: %w", tmp.Name(), err)
	}
	logging.Get(ctx).Debug().Str("url", url).Str("path", tmp.Name()).Msg("download complete")
	return tmp.Name(), nil
}
