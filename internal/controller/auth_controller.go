package controller

import (
	"teksher_backend/internal/service"
	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// CurrentUserResponse 当前用户信息
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register godoc
// @Summary 注册新用户
// @Description 同时创建用户资料与默认偏好设置，并签发令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterInput true "用户注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/users/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var in service.RegisterInput
	if !util.BindJSON(ctx, &in) {
		return
	}

	_, token, err := c.AuthService.Register(ctx.Request.Context(), &in)
	if err != nil {
		handleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"message": "User registered successfully",
		"token":   token,
	})
}

// Login godoc
// @Summary 用户登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginInput true "登录信息"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "用户名或密码错误"
// @Router /api/v1/users/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var in service.LoginInput
	if !util.BindJSON(ctx, &in) {
		return
	}

	token, err := c.AuthService.Login(ctx.Request.Context(), &in)
	if err != nil {
		handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Logout godoc
// @Summary 注销当前令牌
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/v1/users/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary 当前用户
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=CurrentUserResponse}
// @Failure 401 {object} util.Response
// @Router /api/v1/users/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.AuthService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	util.Success(ctx, CurrentUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// ChangePassword godoc
// @Summary 修改密码
// @Tags 认证
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ChangePasswordInput true "新旧密码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "旧密码错误或新密码不合规"
// @Router /api/v1/users/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var in service.ChangePasswordInput
	if !util.BindJSON(ctx, &in) {
		return
	}

	if err := c.AuthService.ChangePassword(ctx.Request.Context(), userID, &in); err != nil {
		handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Password updated successfully"})
}

// RequestPasswordReset godoc
// @Summary 申请密码重置
// @Description 邮箱存在时返回 uid 与 token，并通过邮件发送重置链接
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.ResetRequestInput true "邮箱"
// @Success 200 {object} util.Response{data=service.ResetRequestResult}
// @Failure 400 {object} util.Response
// @Router /api/v1/users/reset-password [post]
func (c *AuthController) RequestPasswordReset(ctx *gin.Context) {
	var in service.ResetRequestInput
	if !util.BindJSON(ctx, &in) {
		return
	}

	result, err := c.AuthService.RequestPasswordReset(ctx.Request.Context(), in.Email)
	if err != nil {
		handleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ConfirmPasswordReset godoc
// @Summary 确认密码重置
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.ResetConfirmInput true "重置信息"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "令牌无效或密码不合规"
// @Router /api/v1/users/reset-password/confirm [post]
func (c *AuthController) ConfirmPasswordReset(ctx *gin.Context) {
	var in service.ResetConfirmInput
	if !util.BindJSON(ctx, &in) {
		return
	}

	if err := c.AuthService.ConfirmPasswordReset(ctx.Request.Context(), &in); err != nil {
		handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Password has been reset"})
}
