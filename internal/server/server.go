// Package server implements the TCP accept loop and per-connection
// read/write loop that sit outside the protocol core: for each
// accepted connection it reads a fixed-size buffer, decodes one
// top-level RESP array, dispatches it, and writes back the encoded
// reply.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/arcedb/arcedb/internal/command"
	"github.com/arcedb/arcedb/internal/resp"
	"github.com/arcedb/arcedb/internal/storage"
)

// Config configures a Server.
type Config struct {
	Addr       string
	ReadBuffer int
}

// Server accepts connections on a TCP listener and serves RESP
// requests against a shared, explicitly-owned storage.Database.
type Server struct {
	cfg Config
	log *zap.SugaredLogger
	db  *storage.Database

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

// New constructs a Server. db is the process-wide database handle; it
// outlives every connection the server serves.
func New(cfg Config, db *storage.Database, log *zap.SugaredLogger) *Server {
	if cfg.ReadBuffer <= 0 {
		cfg.ReadBuffer = 4096
	}
	return &Server{cfg: cfg, db: db, log: log}
}

// Addr returns the bound listener address. Valid only after Serve has
// started listening; useful in tests that bind to ":0".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Serve binds the listener and runs the accept loop until ctx is
// cancelled, at which point it closes the listener, waits for every
// accepted connection's handler to return, and returns. Cancellation
// does not close open connections, so Serve returns only once their
// clients have disconnected.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.log.Infow("listening", "addr", ln.Addr().String())

	go func() {
		<-ctx.Done()
		s.log.Info("shutting down, closing listener")
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				s.wg.Wait()
				return nil
			default:
				s.log.Warnw("accept failed", "error", err)
				return err
			}
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

func (s *Server) handleConn(conn net.Conn) {
	remote := conn.RemoteAddr().String()
	connLog := s.log.With("remote_addr", remote)
	connLog.Debug("connection accepted")

	defer func() {
		if r := recover(); r != nil {
			connLog.Errorw("panic in connection handler", "panic", r)
		}
		conn.Close()
		connLog.Debug("connection closed")
	}()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetNoDelay(true)
	}

	buf := make([]byte, s.cfg.ReadBuffer)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				connLog.Debugw("read failed", "error", err)
			}
			return
		}
		if n == 0 {
			return
		}

		request, _, err := resp.Decode(buf[:n])
		if err != nil {
			connLog.Debugw("decode failed, closing connection", "error", err)
			return
		}

		reply := command.Dispatch(request, s.db)

		if _, err := conn.Write(resp.Encode(reply)); err != nil {
			connLog.Debugw("write failed", "error", err)
			return
		}
	}
}
