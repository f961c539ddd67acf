package controller

import (
	"errors"
	"net/http"

	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleError 将服务层错误映射为 HTTP 响应
func handleError(ctx *gin.Context, err error) {
	if fe, ok := util.AsFieldErrors(err); ok {
		util.ValidationError(ctx, fe)
		return
	}

	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidCredentials):
		util.ValidationError(ctx, util.NewFieldError("non_field_errors", err.Error()))
	case errors.Is(err, util.ErrInvalidResetToken),
		errors.Is(err, util.ErrInvalidResetUser),
		errors.Is(err, util.ErrStatusParamRequired):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentUserID 路由已挂载认证中间件，claims 缺失时按未认证处理
func currentUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}

func pathID(ctx *gin.Context) (uint, bool) {
	id, ok := util.ParamID(ctx)
	if !ok {
		util.NotFound(ctx)
	}
	return id, ok
}

func queryUint(ctx *gin.Context, key string) (*uint, bool) {
	v, err := util.OptionalQueryUint(ctx, key)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return v, true
}

func isPatch(ctx *gin.Context) bool {
	return ctx.Request.Method == http.MethodPatch
}
