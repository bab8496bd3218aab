package ipc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoSocket is returned when no IPC socket path can be determined
var ErrNoSocket = errors.New("cannot find window manager IPC socket")

// socketEnv lists the environment variables consulted, in order
var socketEnv = []string{"I3SOCK", "SWAYSOCK"}

// socketPathCommand asks a running i3 for its socket path
var socketPathCommand = []string{"i3", "--get-socketpath"}

// ResolveSocketPath returns explicit if set, then the first of $I3SOCK and
// $SWAYSOCK, then the answer of `i3 --get-socketpath`.
func ResolveSocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, name := range socketEnv {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}

	if len(socketPathCommand) == 0 {
		return "", ErrNoSocket
	}
	out, err := exec.Command(socketPathCommand[0], socketPathCommand[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNoSocket, strings.Join(socketPathCommand, " "), err)
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", ErrNoSocket
	}
	return path, nil
}
