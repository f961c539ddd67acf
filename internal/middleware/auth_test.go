package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teksher_backend/internal/model"
	"teksher_backend/internal/util"
	"teksher_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const secret = "middleware-test-secret-0123456789abcdef"

type fakeRevoker map[string]bool

func (f fakeRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f[jti], nil
}

func newRouter(revoker RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/private", AuthMiddleware(secret, revoker), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": util.GetUserFromContext(c).UserID})
	})
	r.GET("/public", OptionalAuth(secret, revoker), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": util.GetUserFromContext(c) != nil})
	})
	return r
}

func issue(t *testing.T, id uint) (string, *util.Claims) {
	t.Helper()
	token, err := util.GenerateJWT(&model.User{BaseModel: model.BaseModel{ID: id}, Username: "alice"}, secret, time.Hour)
	require.NoError(t, err)
	claims, err := util.ParseJWT(token, secret)
	require.NoError(t, err)
	return token, claims
}

func do(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	token, claims := issue(t, 7)
	r := newRouter(fakeRevoker{})

	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "Bearer not-a-jwt").Code)

	w := do(r, "/private", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(util.RequestIDHeader))

	assert.Equal(t, http.StatusOK, do(r, "/private", "Token "+token).Code)

	revoked := newRouter(fakeRevoker{claims.ID: true})
	assert.Equal(t, http.StatusUnauthorized, do(revoked, "/private", "Bearer "+token).Code)
}

func TestRevokedTokenIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	token, claims := issue(t, 9)
	r := newRouter(fakeRevoker{claims.ID: true})
	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "Bearer "+token).Code)

	rejected := logs.FilterMessage("JWT rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, claims.ID, fields["jti"])
	assert.Equal(t, util.ErrTokenRevoked.Error(), fields["error"])
}

func TestAuthMiddlewareRejectsForeignSecret(t *testing.T) {
	token, err := util.GenerateJWT(&model.User{BaseModel: model.BaseModel{ID: 1}}, "another-secret-entirely-0123456789", time.Hour)
	require.NoError(t, err)
	r := newRouter(nil)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "Bearer "+token).Code)
}

func TestOptionalAuth(t *testing.T) {
	token, _ := issue(t, 3)
	r := newRouter(fakeRevoker{})

	w := do(r, "/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = do(r, "/public", "Bearer "+token)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())

	w = do(r, "/public", "Bearer broken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}
