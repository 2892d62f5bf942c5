package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestRawLoggerHexDump(t *testing.T) {
	var buf bytes.Buffer
	raw := NewRaw(&buf)

	raw.Log(true, []byte{0xde, 0xad, 0xbe})

	line := buf.String()
	assert.Contains(t, line, "D->H")
	assert.Contains(t, line, "3 bytes")
	assert.Contains(t, line, "de ad be")
}

func TestRawLoggerDirectionLabels(t *testing.T) {
	var buf bytes.Buffer
	raw := NewRaw(&buf)

	raw.Log(false, []byte{0x01})
	assert.True(t, strings.Contains(buf.String(), "H->D"))
}

func TestRawLoggerNoopOnNilWriterAndEmptyData(t *testing.T) {
	raw := NewRaw(nil)
	raw.Log(true, []byte{0x01}) // must not panic

	var buf bytes.Buffer
	NewRaw(&buf).Log(true, nil)
	assert.Zero(t, buf.Len())
}
