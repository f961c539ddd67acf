package service

import (
	"context"

	"teksher_backend/internal/model"
	"teksher_backend/pkg/logger"

	"go.uber.org/zap"
)

type Mailer interface {
	SendPasswordReset(ctx context.Context, user *model.User, link string) error
}

// LogMailer 只记录日志，不实际发信
type LogMailer struct{}

func (LogMailer) SendPasswordReset(ctx context.Context, user *model.User, link string) error {
	logger.Log.Info("Password reset requested", zap.Uint("user_id", user.ID))
	logger.Log.Debug("Password reset link", zap.String("link", link))
	return nil
}
