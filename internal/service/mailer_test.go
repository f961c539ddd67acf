package service

import (
	"context"
	"testing"

	"teksher_backend/internal/model"
	"teksher_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogMailerKeepsLinkOutOfInfoLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	user := &model.User{BaseModel: model.BaseModel{ID: 42}, Email: "alice@example.com"}
	link := "https://example.com/reset?uid=NDI&token=secret-token"
	require.NoError(t, LogMailer{}.SendPasswordReset(context.Background(), user, link))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Password reset requested", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 42, fields["user_id"])
	for _, v := range fields {
		if s, ok := v.(string); ok {
			assert.NotContains(t, s, "secret-token")
		}
	}
	assert.NotContains(t, fields, "email")
}
