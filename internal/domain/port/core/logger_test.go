package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"verbose", LogLevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.name), "level %q", tt.name)
	}
}

func TestLogLevelOrdering(t *testing.T) {
	assert.True(t, LogLevelDebug < LogLevelInfo)
	assert.True(t, LogLevelInfo < LogLevelWarn)
	assert.True(t, LogLevelWarn < LogLevelError)
}
