package ipc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/yourusername/i4/internal/models"
)

// Magic prefixes every i3 IPC message
const Magic = "i3-ipc"

// maxPayload guards against reading garbage lengths from a wrong socket
const maxPayload = 64 << 20

// headerSize is magic + uint32 length + uint32 type
const headerSize = len(Magic) + 8

// ErrBadMagic is returned when a reply does not start with the i3 magic string
var ErrBadMagic = errors.New("invalid i3-ipc magic")

// Connection manages the Unix domain socket connection to the window manager
type Connection struct {
	socketPath string
	conn       net.Conn
	reader     *bufio.Reader
	timeout    time.Duration
}

// NewConnection creates a new connection instance
func NewConnection(socketPath string, timeout time.Duration) *Connection {
	return &Connection{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Connect establishes the Unix domain socket connection
func (c *Connection) Connect() error {
	var err error
	c.conn, err = net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	c.reader = bufio.NewReader(c.conn)
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// IsConnected returns true if the connection is established
func (c *Connection) IsConnected() bool {
	return c.conn != nil
}

// SendRequest writes one message and waits for the reply of the same type.
// Events that arrive in between are discarded.
func (c *Connection) SendRequest(ctx context.Context, msgType models.MessageType, payload []byte) ([]byte, error) {
	// Apply timeout if not already set
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	deadline, _ := ctx.Deadline()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set write deadline: %w", err)
	}
	if _, err := c.conn.Write(EncodeMessage(msgType, payload)); err != nil {
		return nil, fmt.Errorf("failed to write %s request: %w", msgType, err)
	}

	// Read response with context cancellation support
	respChan := make(chan []byte, 1)
	errChan := make(chan error, 1)

	go func() {
		if err := c.conn.SetReadDeadline(deadline); err != nil {
			errChan <- fmt.Errorf("failed to set read deadline: %w", err)
			return
		}

		for {
			replyType, body, err := ReadMessage(c.reader)
			if err != nil {
				if errors.Is(err, os.ErrDeadlineExceeded) {
					err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
				}
				errChan <- fmt.Errorf("failed to read %s reply: %w", msgType, err)
				return
			}
			if replyType.IsEvent() {
				continue
			}
			if replyType != msgType {
				errChan <- fmt.Errorf("expected %s reply, got %s", msgType, replyType)
				return
			}
			respChan <- body
			return
		}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("request cancelled or timed out: %w", ctx.Err())
	case err := <-errChan:
		return nil, err
	case resp := <-respChan:
		return resp, nil
	}
}

// EncodeMessage frames a payload: magic, length, type, payload.
// Integers use the host byte order, as the protocol requires.
func EncodeMessage(msgType models.MessageType, payload []byte) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(payload)))
	buf.WriteString(Magic)
	var header [8]byte
	binary.NativeEndian.PutUint32(header[0:4], uint32(len(payload)))
	binary.NativeEndian.PutUint32(header[4:8], uint32(msgType))
	buf.Write(header[:])
	buf.Write(payload)
	return buf.Bytes()
}

// ReadMessage reads one framed message
func ReadMessage(r io.Reader) (models.MessageType, []byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	if string(header[:len(Magic)]) != Magic {
		return 0, nil, ErrBadMagic
	}

	size := binary.NativeEndian.Uint32(header[len(Magic) : len(Magic)+4])
	msgType := models.MessageType(binary.NativeEndian.Uint32(header[len(Magic)+4:]))
	if size > maxPayload {
		return 0, nil, fmt.Errorf("reply payload of %d bytes exceeds limit", size)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, fmt.Errorf("short payload: %w", err)
	}
	return msgType, body, nil
}
