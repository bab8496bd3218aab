package ipc_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/i4/internal/ipc"
	"github.com/yourusername/i4/internal/ipc/ipctest"
	"github.com/yourusername/i4/internal/models"
)

const sampleTree = `{
  "id": 1, "name": "root", "type": "root", "focused": false,
  "rect": {"x": 0, "y": 0, "width": 1920, "height": 1080},
  "nodes": [
    {"id": 2, "name": "eDP-1", "type": "output", "focused": false, "nodes": [
      {"id": 3, "name": "1", "type": "workspace", "focused": false, "nodes": [
        {"id": 4, "name": "term", "type": "con", "window": 12345, "focused": true, "nodes": []}
      ]}
    ]}
  ]
}`

func TestEncodeReadMessage(t *testing.T) {
	frame := ipc.EncodeMessage(models.MsgRunCommand, []byte("focus left"))
	assert.True(t, bytes.HasPrefix(frame, []byte(ipc.Magic)))
	assert.Len(t, frame, len(ipc.Magic)+8+len("focus left"))

	msgType, payload, err := ipc.ReadMessage(bytes.NewReader(frame))
	require.NoError(t, err)
	assert.Equal(t, models.MsgRunCommand, msgType)
	assert.Equal(t, "focus left", string(payload))
}

func TestReadMessage_BadMagic(t *testing.T) {
	frame := ipc.EncodeMessage(models.MsgGetTree, nil)
	copy(frame, "xx-ipc")

	_, _, err := ipc.ReadMessage(bytes.NewReader(frame))
	assert.True(t, errors.Is(err, ipc.ErrBadMagic))
}

func TestReadMessage_ShortPayload(t *testing.T) {
	frame := ipc.EncodeMessage(models.MsgGetTree, []byte(`{"id":1}`))

	_, _, err := ipc.ReadMessage(bytes.NewReader(frame[:len(frame)-2]))
	assert.Error(t, err)
}

func TestClient_GetTree(t *testing.T) {
	srv := ipctest.NewServer(t, ipctest.Static(map[models.MessageType]string{
		models.MsgGetTree: sampleTree,
	}))

	c := ipc.NewClient(srv.Path, time.Second)
	defer c.Close()

	root, err := c.GetTree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.NodeRoot, root.Type)
	require.Len(t, root.Nodes, 1)
	term := root.Nodes[0].Nodes[0].Nodes[0]
	assert.True(t, term.IsWindow())
	assert.True(t, term.Focused)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, models.MsgGetTree, reqs[0].Type)
}

func TestClient_GetVersion(t *testing.T) {
	srv := ipctest.NewServer(t, ipctest.Static(map[models.MessageType]string{
		models.MsgGetVersion: `{"major":4,"minor":23,"patch":0,"human_readable":"4.23 (2023-10-29)"}`,
	}))

	c := ipc.NewClient(srv.Path, time.Second)
	defer c.Close()

	v, err := c.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, v.Major)
	assert.Equal(t, 23, v.Minor)
	assert.Equal(t, "4.23 (2023-10-29)", v.HumanReadable)
}

func TestClient_RunCommand(t *testing.T) {
	srv := ipctest.NewServer(t, ipctest.Static(nil))

	c := ipc.NewClient(srv.Path, time.Second)
	defer c.Close()

	results, err := c.RunCommand(context.Background(), "[con_id=4] focus")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, models.MsgRunCommand, reqs[0].Type)
	assert.Equal(t, "[con_id=4] focus", reqs[0].Payload)
}

func TestClient_RunCommandFailure(t *testing.T) {
	srv := ipctest.NewServer(t, ipctest.Static(map[models.MessageType]string{
		models.MsgRunCommand: `[{"success":false,"error":"No window matches given criteria"}]`,
	}))

	c := ipc.NewClient(srv.Path, time.Second)
	defer c.Close()

	_, err := c.RunCommand(context.Background(), "[con_id=99] focus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No window matches given criteria")
}

func TestClient_ReusesConnection(t *testing.T) {
	srv := ipctest.NewServer(t, ipctest.Static(map[models.MessageType]string{
		models.MsgGetTree: sampleTree,
	}))

	c := ipc.NewClient(srv.Path, time.Second)
	defer c.Close()

	_, err := c.GetTree(context.Background())
	require.NoError(t, err)
	_, err = c.RunCommand(context.Background(), "nop")
	require.NoError(t, err)

	assert.Len(t, srv.Requests(), 2)
}

func TestClient_ConnectFailure(t *testing.T) {
	c := ipc.NewClient("/nonexistent/i4-test.sock", time.Second)
	defer c.Close()

	_, err := c.GetTree(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestClient_ContextTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := ipctest.NewServer(t, func(req ipctest.Request) []byte {
		<-block
		return []byte(`{}`)
	})
	defer close(block)

	c := ipc.NewClient(srv.Path, time.Second)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetTree(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
