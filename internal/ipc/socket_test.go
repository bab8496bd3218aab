package ipc

import (
	"errors"
	"testing"
)

func TestResolveSocketPath(t *testing.T) {
	saved := socketPathCommand
	socketPathCommand = []string{"i4-test-no-such-binary"}
	defer func() { socketPathCommand = saved }()

	tests := []struct {
		name     string
		explicit string
		i3sock   string
		swaysock string
		want     string
		wantErr  bool
	}{
		{"explicit wins", "/run/explicit.sock", "/run/i3.sock", "/run/sway.sock", "/run/explicit.sock", false},
		{"I3SOCK before SWAYSOCK", "", "/run/i3.sock", "/run/sway.sock", "/run/i3.sock", false},
		{"SWAYSOCK", "", "", "/run/sway.sock", "/run/sway.sock", false},
		{"nothing found", "", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("I3SOCK", tt.i3sock)
			t.Setenv("SWAYSOCK", tt.swaysock)

			got, err := ResolveSocketPath(tt.explicit)
			if tt.wantErr {
				if !errors.Is(err, ErrNoSocket) {
					t.Errorf("ResolveSocketPath() error = %v, want ErrNoSocket", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveSocketPath() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveSocketPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
