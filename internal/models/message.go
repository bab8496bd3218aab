package models

import "strings"

// MessageType identifies an i3 IPC request or reply
type MessageType uint32

const (
	MsgRunCommand    MessageType = 0
	MsgGetWorkspaces MessageType = 1
	MsgSubscribe     MessageType = 2
	MsgGetOutputs    MessageType = 3
	MsgGetTree       MessageType = 4
	MsgGetMarks      MessageType = 5
	MsgGetBarConfig  MessageType = 6
	MsgGetVersion    MessageType = 7
)

// eventMask is set on replies that are asynchronous events
const eventMask MessageType = 1 << 31

// IsEvent returns true if the type carries the event bit
func (t MessageType) IsEvent() bool {
	return t&eventMask != 0
}

// String returns the protocol name of the message type
func (t MessageType) String() string {
	switch t {
	case MsgRunCommand:
		return "RUN_COMMAND"
	case MsgGetWorkspaces:
		return "GET_WORKSPACES"
	case MsgSubscribe:
		return "SUBSCRIBE"
	case MsgGetOutputs:
		return "GET_OUTPUTS"
	case MsgGetTree:
		return "GET_TREE"
	case MsgGetMarks:
		return "GET_MARKS"
	case MsgGetBarConfig:
		return "GET_BAR_CONFIG"
	case MsgGetVersion:
		return "GET_VERSION"
	default:
		if t.IsEvent() {
			return "EVENT"
		}
		return "UNKNOWN"
	}
}

// CommandResult is one entry of a RUN_COMMAND reply
type CommandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CommandError joins the error messages of all failed results.
// Returns an empty string if every command succeeded.
func CommandError(results []CommandResult) string {
	var msgs []string
	for _, r := range results {
		if r.Success {
			continue
		}
		msg := r.Error
		if msg == "" {
			msg = "command failed"
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// Version is the GET_VERSION reply
type Version struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}
