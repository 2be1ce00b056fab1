package log

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func newTestHook() (*hook, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	var mainBuf, criticalBuf, verboseBuf bytes.Buffer
	return &hook{
		mainWriter:     &mainBuf,
		criticalWriter: &criticalBuf,
		verboseWriter:  &verboseBuf,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}, &mainBuf, &criticalBuf, &verboseBuf
}

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error는 Main과 Critical에 기록", ErrorLevel, true, true, false},
		{"Warn은 Main에만 기록", WarnLevel, true, false, false},
		{"Info는 Main에만 기록", InfoLevel, true, false, false},
		{"Debug는 Verbose에만 기록", DebugLevel, false, false, true},
		{"Trace는 Verbose에만 기록", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mainBuf, criticalBuf, verboseBuf := newTestHook()
			entry := logrus.NewEntry(logrus.New())
			entry.Level = tt.level
			entry.Message = "자동 검색"

			require.NoError(t, h.Fire(entry))
			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0)
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0)
		})
	}
}

func TestHook_Fire_WriteErrorStillWritesMain(t *testing.T) {
	t.Parallel()

	var mainBuf bytes.Buffer
	h := &hook{
		mainWriter:     &mainBuf,
		criticalWriter: failingWriter{},
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	entry := logrus.NewEntry(logrus.New())
	entry.Level = ErrorLevel
	entry.Message = "실패"

	err := h.Fire(entry)
	require.Error(t, err)
	assert.Contains(t, mainBuf.String(), "실패")
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	h, mainBuf, _, _ := newTestHook()
	require.NoError(t, h.Close())

	entry := logrus.NewEntry(logrus.New())
	entry.Level = InfoLevel
	entry.Message = "closed"

	require.NoError(t, h.Fire(entry))
	assert.Zero(t, mainBuf.Len())
}

type countingCloser struct{ count int }

func (c *countingCloser) Close() error {
	c.count++
	return nil
}

func TestCloser_Idempotent(t *testing.T) {
	t.Parallel()

	cc := &countingCloser{}
	h, _, _, _ := newTestHook()
	c := &closer{closers: []io.Closer{cc, nil}, hook: h}

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, cc.count)
	assert.True(t, h.closed)
}
