package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStartStopWatching(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, engine.StartWatching([]string{dir}, zap.NewNop()))

	// a second start while the loop is running must be rejected
	assert.Error(t, engine.StartWatching([]string{dir}, zap.NewNop()))

	require.NoError(t, engine.StopWatching())

	// stopping twice is a no-op
	assert.NoError(t, engine.StopWatching())
}
