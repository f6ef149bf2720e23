package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.With("net", "Delhi Metro").WithGroup("q").Info("route", "from", "INA", "hops", 3, slog.Group("via", "line", "yellow"))

	line := strings.TrimSpace(buf.String())
	require.NotContains(t, line, "hidden")
	_, rest, ok := strings.Cut(line, " INFO ")
	require.True(t, ok, line)
	assert.Equal(t, `route net="Delhi Metro" q.from=INA q.hops=3 q.via.line=yellow`, rest)

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestLogHandler_QuotesAmbiguousValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Warn("interchange ignored", "station", "Back\\slash\nGate", "empty", "", "plain", "INA")

	line := buf.String()
	require.Equal(t, 1, strings.Count(line, "\n"), "one record, one line")
	assert.Contains(t, line, `station="Back\\slash\nGate"`)
	assert.Contains(t, line, `empty=""`)
	assert.Contains(t, line, "plain=INA")
}
