// Package ipctest runs an in-process i3 IPC server for tests.
package ipctest

import (
	"bufio"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/yourusername/i4/internal/ipc"
	"github.com/yourusername/i4/internal/models"
)

// Request is one message received by the server
type Request struct {
	Type    models.MessageType
	Payload string
}

// HandlerFunc answers a request with a reply payload
type HandlerFunc func(req Request) []byte

// Server listens on a temporary unix socket
type Server struct {
	Path string

	listener net.Listener
	handler  HandlerFunc

	mu       sync.Mutex
	requests []Request
	wg       sync.WaitGroup
}

// NewServer starts a server that answers every request with handler.
// The server is closed when the test ends.
func NewServer(t testing.TB, handler HandlerFunc) *Server {
	t.Helper()

	// Unix socket paths are short; t.TempDir() can exceed the limit.
	dir, err := os.MkdirTemp("", "i4")
	if err != nil {
		t.Fatalf("failed to create socket dir: %v", err)
	}
	path := filepath.Join(dir, "ipc.sock")

	l, err := net.Listen("unix", path)
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to listen on %s: %v", path, err)
	}

	s := &Server{Path: path, listener: l, handler: handler}
	s.wg.Add(1)
	go s.serve()

	t.Cleanup(func() {
		l.Close()
		s.wg.Wait()
		os.RemoveAll(dir)
	})
	return s
}

// Requests returns the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	r := bufio.NewReader(conn)
	for {
		msgType, payload, err := ipc.ReadMessage(r)
		if err != nil {
			return
		}
		req := Request{Type: msgType, Payload: string(payload)}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		if _, err := conn.Write(ipc.EncodeMessage(msgType, s.handler(req))); err != nil {
			return
		}
	}
}

// Static returns a handler that serves fixed payloads per message type.
// RUN_COMMAND defaults to a single success result.
func Static(replies map[models.MessageType]string) HandlerFunc {
	return func(req Request) []byte {
		if body, ok := replies[req.Type]; ok {
			return []byte(body)
		}
		if req.Type == models.MsgRunCommand {
			return []byte(`[{"success":true}]`)
		}
		return []byte(`{}`)
	}
}
