package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/frontier-maze/logger"
	"github.com/beka-birhanu/frontier-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMazeService(t *testing.T) *MazeService {
	t.Helper()
	svc, err := NewMazeService(MazeOptions{DefaultSize: 5, MaxSize: 20, Logger: logger.Nop()})
	require.NoError(t, err)
	return svc
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(MazeOptions{DefaultSize: 10, MaxSize: 5, Logger: logger.Nop()})
	assert.Error(t, err)

	_, err = NewMazeService(MazeOptions{DefaultSize: 5, MaxSize: 10})
	assert.Error(t, err)

	svc, err := NewMazeService(MazeOptions{MaxSize: 100, Logger: logger.Nop()})
	require.NoError(t, err)
	assert.Equal(t, maze.DefaultSize, svc.DefaultSize())
}

func TestGenerate(t *testing.T) {
	svc := newTestMazeService(t)

	generated, err := svc.Generate(context.Background(), 8, nil)
	require.NoError(t, err)
	assert.Nil(t, generated.Seed)
	assert.Equal(t, 8, generated.Maze.Size())
	assert.NotEqual(t, generated.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.NoError(t, generated.Maze.Verify())
}

func TestGenerateSeeded(t *testing.T) {
	svc := newTestMazeService(t)
	seed := uint64(1234)

	a, err := svc.Generate(context.Background(), 10, &seed)
	require.NoError(t, err)
	b, err := svc.Generate(context.Background(), 10, &seed)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Maze.String(), b.Maze.String())
	require.NotNil(t, a.Seed)
	assert.Equal(t, seed, *a.Seed)
}

func TestGenerateErrors(t *testing.T) {
	svc := newTestMazeService(t)

	_, err := svc.Generate(context.Background(), 0, nil)
	assert.ErrorIs(t, err, maze.ErrInvalidSize)

	_, err = svc.Generate(context.Background(), 21, nil)
	assert.ErrorIs(t, err, ErrSizeTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Generate(ctx, 5, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry for later inspection.
type recordingLogger struct {
	entries []logEntry
}

func (r *recordingLogger) record(msg string, keysAndValues []interface{}) {
	fields := make(map[string]interface{})
	for k := 0; k+1 < len(keysAndValues); k += 2 {
		fields[keysAndValues[k].(string)] = keysAndValues[k+1]
	}
	r.entries = append(r.entries, logEntry{msg: msg, fields: fields})
}

func (r *recordingLogger) Debug(msg string, kv ...interface{}) { r.record(msg, kv) }
func (r *recordingLogger) Info(msg string, kv ...interface{}) { r.record(msg, kv) }
func (r *recordingLogger) Warn(msg string, kv ...interface{}) { r.record(msg, kv) }
func (r *recordingLogger) Error(msg string, kv ...interface{}) { r.record(msg, kv) }

func TestGenerateUsesClock(t *testing.T) {
	rec := &recordingLogger{}
	svc, err := NewMazeService(MazeOptions{DefaultSize: 5, MaxSize: 20, Logger: rec})
	require.NoError(t, err)

	start := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	ticks := []time.Time{start, start.Add(5 * time.Millisecond)}
	svc.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	generated, err := svc.Generate(context.Background(), 6, nil)
	require.NoError(t, err)
	assert.Equal(t, start, generated.CreatedAt)

	require.Len(t, rec.entries, 1)
	entry := rec.entries[0]
	assert.Equal(t, "maze generated", entry.msg)
	assert.Equal(t, 5*time.Millisecond, entry.fields["elapsed"])
	assert.Equal(t, generated.ID, entry.fields["id"])
	assert.Equal(t, 35, entry.fields["passages"])
}
