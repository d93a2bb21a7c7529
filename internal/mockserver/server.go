// Package mockserver implements a one-shot TCP stand-in for the parser
// backend. It serves exactly one connection: read until the wire terminator
// (or peer close), write the canned JSON reply, then shut down.
package mockserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/ogreyling/parsemock/internal/logging"
	"github.com/ogreyling/parsemock/internal/wire"
)

// Server is a single-use mock parser endpoint. The zero value is not
// usable; create one with New or fill in Addr explicitly.
type Server struct {
	// Addr is the listen address. Tests typically bind "127.0.0.1:0" and
	// read the real port back via Addr().
	Addr string

	// Response overrides the canned reply. Nil means wire.Response.
	Response []byte

	// AcceptTimeout, when non-zero, makes Serve poll for a connection so
	// the context can cancel a server no client ever dials.
	AcceptTimeout time.Duration

	// Capture, when non-nil, receives a copy of the request bytes read
	// from the client. Useful for asserting on what a wrapper sent.
	Capture io.Writer

	listener net.Listener
}

// New returns a server bound to the default mock parser address.
func New() *Server {
	return &Server{Addr: wire.DefaultAddr}
}

// Listen binds the server's address. It must be called before Serve unless
// ListenAndServe is used.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.Addr, err)
	}
	s.listener = ln
	return nil
}

// BoundAddr returns the address the listener is bound to, or nil before
// Listen succeeds.
func (s *Server) BoundAddr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts exactly one connection, answers it, and closes both the
// connection and the listener. It never accepts a second connection: after
// Serve returns, further dials are refused.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("serve called before listen")
	}
	log := logging.Get(ctx)
	defer func() { _ = s.listener.Close() }()

	conn, err := s.accept(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("accepted connection")

	req, err := wire.ReadRequest(conn)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(req)).Bool("terminated", wire.Terminated(req)).Msg("request read")

	if s.Capture != nil {
		if _, err := s.Capture.Write(req); err != nil {
			return fmt.Errorf("failed to capture request: %w", err)
		}
	}

	resp := s.Response
	if resp == nil {
		resp = []byte(wire.Response)
	}
	if _, err := conn.Write(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	log.Debug().Int("bytes", len(resp)).Msg("response written")
	return nil
}

// ListenAndServe binds the address and serves the single connection.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// accept blocks for the one connection. With AcceptTimeout set it polls,
// re-checking ctx between attempts so tests can stop a server cleanly when
// no client ever shows up.
func (s *Server) accept(ctx context.Context) (net.Conn, error) {
	if s.AcceptTimeout <= 0 {
		conn, err := s.listener.Accept()
		if err != nil {
			return nil, fmt.Errorf("failed to accept: %w", err)
		}
		return conn, nil
	}

	tcpListener, ok := s.listener.(*net.TCPListener)
	if !ok {
		return nil, fmt.Errorf("accept timeout unsupported for %T", s.listener)
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("server stopped before a client connected: %w", err)
		}
		if err := tcpListener.SetDeadline(time.Now().Add(s.AcceptTimeout)); err != nil {
			return nil, fmt.Errorf("failed to set accept deadline: %w", err)
		}
		conn, err := tcpListener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return nil, fmt.Errorf("failed to accept: %w", err)
		}
		return conn, nil
	}
}
