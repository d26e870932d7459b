package messages

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/designkit/internal/types"
)

func TestStatusCmds(t *testing.T) {
	tests := []struct {
		name string
		cmd  func(string, ...any) tea.Cmd
		want types.MessageType
	}{
		{name: "error", cmd: ErrorCmd, want: types.MessageTypeError},
		{name: "success", cmd: SuccessCmd, want: types.MessageTypeSuccess},
		{name: "info", cmd: InfoCmd, want: types.MessageTypeInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.cmd("copied %d bytes", 12)().(types.StatusMsg)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg.Type)
			assert.Equal(t, "copied 12 bytes", msg.Message)
		})
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")

	err := WrapError(base, "write settings %s", "/tmp/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "write settings /tmp/x: disk full", err.Error())
}
