package middleware

import (
	"context"
	"strings"

	"teksher_backend/internal/util"
	"teksher_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RevocationChecker 判断令牌是否已注销
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// bearerToken 支持 "Bearer <jwt>" 与 "Token <jwt>" 两种前缀
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	for _, prefix := range []string{"Bearer ", "Token "} {
		if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
			return strings.TrimSpace(header[len(prefix):])
		}
	}
	return ""
}

func authenticate(c *gin.Context, secret string, revoker RevocationChecker) (*util.Claims, bool) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return nil, false
	}

	claims, err := util.ParseJWT(tokenString, secret)
	if err != nil {
		logger.Log.Debug("JWT parse failed", zap.Error(err))
		return nil, false
	}

	if revoker != nil {
		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Log.Error("Token revocation check failed", zap.Error(err))
			return nil, false
		}
		if revoked {
			logger.Log.Debug("JWT rejected", zap.String("jti", claims.ID), zap.Error(util.ErrTokenRevoked))
			return nil, false
		}
	}
	return claims, true
}

func AuthMiddleware(secret string, revoker RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, secret, revoker)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.UserContextKey, claims)
		c.Next()
	}
}

// OptionalAuth 有合法令牌时写入用户信息，否则按匿名请求继续
func OptionalAuth(secret string, revoker RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := authenticate(c, secret, revoker); ok {
			c.Set(util.UserContextKey, claims)
		}
		c.Next()
	}
}
