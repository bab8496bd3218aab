package server

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/i4/internal/models"
	"github.com/yourusername/i4/internal/tree"
)

type fakeSource struct {
	root  *models.Node
	err   error
	calls int
}

func (f *fakeSource) GetTree(ctx context.Context) (*models.Node, error) {
	f.calls++
	return f.root, f.err
}

func handle(v int64) *int64 { return &v }

func sampleRoot() *models.Node {
	content := &models.Node{ID: 10, Name: "content", Type: models.NodeCon, Focus: []int64{12, 11}, Nodes: []*models.Node{
		{ID: 11, Name: "1", Type: models.NodeWorkspace, Nodes: []*models.Node{
			{ID: 20, Name: "hidden", Type: models.NodeCon, Window: handle(1)},
		}},
		{ID: 12, Name: "2", Type: models.NodeWorkspace, Nodes: []*models.Node{
			{ID: 21, Name: "shown", Type: models.NodeCon, Window: handle(2), Focused: true},
			{ID: 22, Name: "also shown", Type: models.NodeCon, Window: handle(3)},
		}},
	}}
	return &models.Node{ID: 1, Type: models.NodeRoot, Nodes: []*models.Node{
		{ID: 2, Name: "eDP-1", Type: models.NodeOutput, Nodes: []*models.Node{content}},
	}}
}

func TestFetch(t *testing.T) {
	src := &fakeSource{root: sampleRoot()}

	snap, err := Fetch(context.Background(), src, tree.Options{})
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("expected exactly one GET_TREE, got %d", src.calls)
	}

	focused, err := snap.Focused()
	if err != nil {
		t.Fatalf("Focused() unexpected error: %v", err)
	}
	if focused.ID() != 21 {
		t.Errorf("Focused() = %d, want 21", focused.ID())
	}

	if got := len(snap.Windows()); got != 3 {
		t.Errorf("Windows() returned %d windows, want 3", got)
	}

	visible := snap.VisibleWindows()
	if len(visible) != 2 || visible[0].ID() != 21 || visible[1].ID() != 22 {
		t.Errorf("VisibleWindows() = %v, want [21 22]", visible)
	}
}

func TestFetch_Error(t *testing.T) {
	boom := errors.New("connection refused")
	src := &fakeSource{err: boom}

	_, err := Fetch(context.Background(), src, tree.Options{})
	if !errors.Is(err, boom) {
		t.Errorf("Fetch() error = %v, want wrapped %v", err, boom)
	}
}

func TestSnapshot_NoFocus(t *testing.T) {
	root := sampleRoot()
	root.Nodes[0].Nodes[0].Nodes[1].Nodes[0].Focused = false

	snap := NewSnapshot(root, tree.Options{})
	if _, err := snap.Focused(); !errors.Is(err, tree.ErrNoFocus) {
		t.Errorf("Focused() error = %v, want ErrNoFocus", err)
	}
}
