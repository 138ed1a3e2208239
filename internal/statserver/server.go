package statserver

import (
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"

	"unistat-gateway/internal/sysinfo"
)

// requestBufSize bounds the single best-effort read of the inbound request.
// The request is diagnostic only; it is never parsed.
const requestBufSize = 4096

// StatsProvider supplies a fresh memory sample per response.
type StatsProvider interface {
	Memory() (sysinfo.MemStats, error)
}

// Server answers every TCP connection with one HTML stats page and closes.
// One goroutine per connection, no limit, no deadlines; a hung peer ties up
// only its own handler.
type Server struct {
	Addr  string
	Stats StatsProvider

	mu sync.Mutex
	ln net.Listener
}

func New(addr string, stats StatsProvider) *Server {
	return &Server{Addr: addr, Stats: stats}
}

// ListenAndServe binds Addr and runs the accept loop. A bind failure is
// returned immediately; the caller decides whether that is fatal.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections until ln is closed. Accept errors are logged and
// the loop continues; only a closed listener ends it.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	log.Printf("stats server listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("accept: %v", err)
			continue
		}
		go s.handle(conn)
	}
}

// Close closes the listener, unblocking Serve. Connections already handed to
// a handler finish on their own.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// handle owns conn for its whole lifetime. Read phase and write phase are
// independently fallible: a failed read still gets a response attempt.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	connectionsTotal.Inc()

	s.readRequest(conn)
	s.writeResponse(conn)
}

func (s *Server) readRequest(conn net.Conn) {
	buf := make([]byte, requestBufSize)
	n, err := conn.Read(buf)
	if err != nil {
		readErrorsTotal.Inc()
		log.Printf("read %s: %v", conn.RemoteAddr(), err)
		return
	}
	log.Printf("request from %s:\n%s", conn.RemoteAddr(), strings.ToValidUTF8(string(buf[:n]), "\uFFFD"))
}

func (s *Server) writeResponse(conn net.Conn) {
	mem, err := s.Stats.Memory()
	if err != nil {
		writeErrorsTotal.Inc()
		log.Printf("stats sample for %s: %v", conn.RemoteAddr(), err)
		return
	}
	memTotalKBGauge.Set(float64(mem.TotalKB))
	memUsedKBGauge.Set(float64(mem.UsedKB))

	// One write of the full response; a short or failed write is terminal
	// for this connection.
	if _, err := conn.Write(BuildResponse(mem).Bytes()); err != nil {
		writeErrorsTotal.Inc()
		log.Printf("write %s: %v", conn.RemoteAddr(), err)
		return
	}
	responsesTotal.Inc()
	log.Printf("response sent to %s", conn.RemoteAddr())
}
