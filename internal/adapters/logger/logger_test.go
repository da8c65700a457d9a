package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger writes to a buffer with NO_COLOR set so output is stable.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("resolved 3 entities")

	goldie.New(t).Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn(`scene version "7" is not supported`)

	goldie.New(t).Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	errCycle := zerr.New("cycle detected")
	errWriteBack := zerr.New("failed to write back transformed property")

	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        errors.New("boom"),
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("permission denied"), "failed to read scene file"),
				"failed to reload scene",
			),
			goldenName: "error_chain",
		},
		{
			name: "metadata",
			err: zerr.With(
				zerr.With(zerr.Wrap(errCycle, "transform depends on itself"), "entity", "1"),
				"cycle", "1 -> 2 -> 1",
			),
			goldenName: "error_metadata",
		},
		{
			name:       "joined with metadata",
			err:        zerr.With(errors.Join(errWriteBack, errors.New("disk full")), "entity", "4"),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(errors.New("disk full"), "failed to write back"), "entity", "4")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error":"failed to write back: disk full"`)
	assert.Contains(t, out, `"entity":"4"`)
	assert.NotContains(t, out, "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.Info("json")
	require.Contains(t, buf.String(), `"msg":"json"`)
	buf.Reset()

	lg.SetJSON(false)
	lg.Info("pretty")
	assert.Equal(t, "pretty\n", buf.String())
}
