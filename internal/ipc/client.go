package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yourusername/i4/internal/models"
)

const (
	DefaultTimeout = 5 * time.Second
)

// Client talks to i3 (or sway) over its IPC socket
type Client struct {
	conn *Connection
}

// NewClient creates a new client. socketPath must already be resolved,
// see ResolveSocketPath.
func NewClient(socketPath string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		conn: NewConnection(socketPath, timeout),
	}
}

// Connect establishes connection to the window manager
func (c *Client) Connect() error {
	return c.conn.Connect()
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// request is a helper to send a request and get the reply payload
func (c *Client) request(ctx context.Context, msgType models.MessageType, payload []byte) ([]byte, error) {
	if !c.conn.IsConnected() {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}

	return c.conn.SendRequest(ctx, msgType, payload)
}

// GetTreeRaw returns the GET_TREE reply as sent by the window manager
func (c *Client) GetTreeRaw(ctx context.Context) ([]byte, error) {
	return c.request(ctx, models.MsgGetTree, nil)
}

// GetTree retrieves and decodes the complete layout tree
func (c *Client) GetTree(ctx context.Context) (*models.Node, error) {
	data, err := c.GetTreeRaw(ctx)
	if err != nil {
		return nil, err
	}
	return models.ParseTree(data)
}

// GetVersion retrieves the window manager version
func (c *Client) GetVersion(ctx context.Context) (*models.Version, error) {
	data, err := c.request(ctx, models.MsgGetVersion, nil)
	if err != nil {
		return nil, err
	}

	var v models.Version
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse version reply: %w", err)
	}
	return &v, nil
}

// RunCommand sends a command string and returns one result per command
func (c *Client) RunCommand(ctx context.Context, command string) ([]models.CommandResult, error) {
	data, err := c.request(ctx, models.MsgRunCommand, []byte(command))
	if err != nil {
		return nil, err
	}

	var results []models.CommandResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse command reply: %w", err)
	}

	if msg := models.CommandError(results); msg != "" {
		return results, fmt.Errorf("command %q failed: %s", command, msg)
	}

	return results, nil
}
