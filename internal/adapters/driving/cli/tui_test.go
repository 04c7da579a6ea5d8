package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWatcher records when Watch starts and stops.
type blockingWatcher struct {
	started chan struct{}
	stopped chan struct{}
}

func (w *blockingWatcher) Watch(ctx context.Context) error {
	close(w.started)
	<-ctx.Done()
	close(w.stopped)
	return ctx.Err()
}

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_HelpOutput(t *testing.T) {
	out, _, err := executeCommand(t, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "interactive terminal user interface")
	assert.Contains(t, out, "Controls:")
}

func TestTUICmd_MissingServices(t *testing.T) {
	setupTestServices(t, nil)

	_, _, err := executeCommand(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestStartLinkWatcher(t *testing.T) {
	t.Run("no watcher", func(t *testing.T) {
		setupTestServices(t, nil)
		stop := startLinkWatcher(context.Background())
		stop()
	})

	t.Run("runs until stopped", func(t *testing.T) {
		w := &blockingWatcher{started: make(chan struct{}), stopped: make(chan struct{})}
		setupTestServices(t, &Services{Watcher: w})

		stop := startLinkWatcher(context.Background())

		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatal("watcher did not start")
		}
		stop()
		select {
		case <-w.stopped:
		case <-time.After(time.Second):
			t.Fatal("watcher did not stop")
		}
	})
}

func TestMCPServeCmd_RequiresLookup(t *testing.T) {
	setupTestServices(t, nil)

	_, _, err := executeCommand(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup service is required")
}
