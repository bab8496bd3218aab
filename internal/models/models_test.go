package models

import (
	"testing"
)

const sampleTree = `{
  "id": 1, "type": "root", "name": "root",
  "nodes": [{
    "id": 2, "type": "output", "name": "eDP-1", "focus": [3],
    "nodes": [{
      "id": 3, "type": "workspace", "name": "1", "layout": "splith",
      "nodes": [
        {"id": 10, "type": "con", "name": "vim", "window": 4194307, "focused": true,
         "rect": {"x": 0, "y": 20, "width": 960, "height": 1060},
         "window_properties": {"class": "Alacritty", "instance": "alacritty", "title": "vim main.go"},
         "marks": ["edit"]},
        {"id": 11, "type": "con", "name": "", "layout": "stacked", "nodes": []}
      ],
      "floating_nodes": [
        {"id": 12, "type": "floating_con", "nodes": [
          {"id": 13, "type": "con", "name": "pavucontrol", "window": 4194400}
        ]}
      ]
    }]
  }]
}`

func TestParseTree(t *testing.T) {
	root, err := ParseTree([]byte(sampleTree))
	if err != nil {
		t.Fatalf("ParseTree failed: %v", err)
	}

	if root.Type != NodeRoot {
		t.Errorf("root type = %q, want root", root.Type)
	}
	if len(root.Nodes) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Nodes))
	}

	ws := root.Nodes[0].Nodes[0]
	if ws.Type != NodeWorkspace || ws.Layout != "splith" {
		t.Errorf("workspace = %q/%q", ws.Type, ws.Layout)
	}
	if len(ws.FloatingNodes) != 1 || ws.FloatingNodes[0].Type != NodeFloatingContainer {
		t.Errorf("floating nodes not decoded: %+v", ws.FloatingNodes)
	}

	vim := ws.Nodes[0]
	if !vim.IsWindow() {
		t.Error("vim should be a window")
	}
	if vim.Window == nil || *vim.Window != 4194307 {
		t.Errorf("window handle = %v", vim.Window)
	}
	if vim.Title() != "vim main.go" {
		t.Errorf("Title() = %q", vim.Title())
	}
	if vim.Class() != "Alacritty" {
		t.Errorf("Class() = %q", vim.Class())
	}
	if got := vim.Rect.String(); got != "960x1060@(0,20)" {
		t.Errorf("Rect.String() = %q", got)
	}

	split := ws.Nodes[1]
	if split.IsWindow() {
		t.Error("split without a window handle is not a window")
	}
	if split.Title() != "" || split.Class() != "" {
		t.Errorf("split title/class = %q/%q", split.Title(), split.Class())
	}
}

func TestParseTree_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"id": 1,`},
		{"not a root", `{"id": 1, "type": "workspace"}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTree([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNodeType_Valid(t *testing.T) {
	for _, nt := range []NodeType{NodeRoot, NodeOutput, NodeWorkspace, NodeCon, NodeDockArea, NodeFloatingContainer} {
		if !nt.Valid() {
			t.Errorf("%q should be valid", nt)
		}
	}
	if NodeType("window").Valid() {
		t.Error(`"window" is not a node type`)
	}
}

func TestMessageType_String(t *testing.T) {
	tests := []struct {
		msgType MessageType
		want    string
	}{
		{MsgRunCommand, "RUN_COMMAND"},
		{MsgGetTree, "GET_TREE"},
		{MsgGetVersion, "GET_VERSION"},
		{MessageType(1<<31 | 3), "EVENT"},
		{MessageType(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.msgType.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint32(tt.msgType), got, tt.want)
		}
	}
	if MsgGetTree.IsEvent() {
		t.Error("GET_TREE is not an event")
	}
}

func TestCommandError(t *testing.T) {
	tests := []struct {
		name    string
		results []CommandResult
		want    string
	}{
		{"all succeeded", []CommandResult{{Success: true}, {Success: true}}, ""},
		{"empty", nil, ""},
		{"one failure", []CommandResult{{Success: true}, {Error: "no such container"}}, "no such container"},
		{"unnamed failures", []CommandResult{{ParseError: true}, {Error: "x"}}, "command failed; x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandError(tt.results); got != tt.want {
				t.Errorf("CommandError() = %q, want %q", got, tt.want)
			}
		})
	}
}
