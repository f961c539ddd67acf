package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	SetLevel("warn")
	assert.Equal(t, zapcore.WarnLevel, Level())

	SetLevel("not-a-level")
	assert.Equal(t, zapcore.WarnLevel, Level())

	SetLevel("INFO")
	assert.Equal(t, zapcore.InfoLevel, Level())
}
