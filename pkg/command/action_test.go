package command_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

func TestRunAction(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   string
	}{
		{
			name:   "nil result",
			result: nil,
			want:   "[CommandTest]: Test action... complete!\n",
		},
		{
			name:   "map result",
			result: map[string]any{"result": "ohai!"},
			want:   "[CommandTest]: Test action... complete!\n---> Results:\n    result: ohai!\n",
		},
		{
			name:   "map result is sorted",
			result: map[string]int{"b": 2, "a": 1},
			want:   "[CommandTest]: Test action... complete!\n---> Results:\n    a: 1\n    b: 2\n",
		},
		{
			name:   "truthy non-map result",
			result: "ohai!",
			want:   "[CommandTest]: Test action... complete!\n---> Results:\nohai!\n",
		},
		{
			name:   "false result",
			result: false,
			want:   "[CommandTest]: Test action... complete!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newTestCommand(t, &out)

			err := cmd.RunAction("Test action", func() (any, error) {
				return tt.result, nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunAction_Error(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")

	err := command.RunAction(newUI(&out), "Test action", func() (any, error) {
		return "ignored", boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "[CommandTest]: Test action... error!\n", out.String())
}
