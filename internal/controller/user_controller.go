package controller

import (
	"fmt"

	"teksher_backend/internal/service"
	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 用户资料、偏好、进度与答题历史
type UserController struct {
	Service *service.AccountService
}

func NewUserController(s *service.AccountService) *UserController {
	return &UserController{Service: s}
}

// ---------- 资料 ----------

// @Summary 我的资料
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserProfile}
// @Router /api/v1/users/profiles [get]
func (c *UserController) ListProfiles(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	profiles, err := c.Service.ListProfiles(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, profiles)
}

// @Summary 资料详情
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "资料ID"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 404 {object} util.Response
// @Router /api/v1/users/profiles/{id} [get]
// @Router /api/v1/users/profiles/{id} [put]
// @Router /api/v1/users/profiles/{id} [patch]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	profile, err := c.Service.GetProfile(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 创建资料
// @Description 每个用户仅一份资料，注册时已自动创建
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=model.UserProfile}
// @Failure 400 {object} util.Response
// @Router /api/v1/users/profiles [post]
func (c *UserController) CreateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	profile, err := c.Service.CreateProfile(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/users/profiles/%d", util.APIPrefix, profile.ID), profile)
}

// @Summary 删除资料
// @Tags 用户
// @Security BearerAuth
// @Param id path int true "资料ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/users/profiles/{id} [delete]
func (c *UserController) DeleteProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteProfile(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// ---------- 偏好设置 ----------

// @Summary 偏好设置列表
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserPreferences}
// @Router /api/v1/users/preferences [get]
func (c *UserController) ListPreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	prefs, err := c.Service.ListPreferences(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// @Summary 我的偏好设置
// @Description 不存在时按默认值创建
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserPreferences}
// @Router /api/v1/users/preferences/my_preferences [get]
func (c *UserController) MyPreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	prefs, err := c.Service.MyPreferences(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// @Summary 偏好设置详情
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "偏好设置ID"
// @Success 200 {object} util.Response{data=model.UserPreferences}
// @Failure 404 {object} util.Response
// @Router /api/v1/users/preferences/{id} [get]
func (c *UserController) GetPreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	prefs, err := c.Service.GetPreferences(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// @Summary 创建偏好设置
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PreferencesInput true "偏好设置"
// @Success 201 {object} util.Response{data=model.UserPreferences}
// @Failure 400 {object} util.Response
// @Router /api/v1/users/preferences [post]
func (c *UserController) CreatePreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.PreferencesInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	prefs, err := c.Service.CreatePreferences(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/users/preferences/%d", util.APIPrefix, prefs.ID), prefs)
}

// @Summary 更新偏好设置
// @Description 所有字段均有默认值，PUT 与 PATCH 行为一致
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "偏好设置ID"
// @Param body body service.PreferencesInput true "偏好设置"
// @Success 200 {object} util.Response{data=model.UserPreferences}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/users/preferences/{id} [put]
// @Router /api/v1/users/preferences/{id} [patch]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.PreferencesInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	prefs, err := c.Service.UpdatePreferences(ctx.Request.Context(), userID, id, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// @Summary 删除偏好设置
// @Tags 用户
// @Security BearerAuth
// @Param id path int true "偏好设置ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/users/preferences/{id} [delete]
func (c *UserController) DeletePreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeletePreferences(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// ---------- 进度 ----------

// @Summary 我的试卷进度
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.TestProgress}
// @Router /api/v1/users/progress [get]
func (c *UserController) ListProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	progress, err := c.Service.ListProgress(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 按状态查询进度
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param status query string true "not_started / in_progress / completed"
// @Success 200 {object} util.Response{data=[]model.TestProgress}
// @Failure 400 {object} util.Response "缺少 status 参数"
// @Router /api/v1/users/progress/by_status [get]
func (c *UserController) ProgressByStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	progress, err := c.Service.ProgressByStatus(ctx.Request.Context(), userID, ctx.Query("status"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 清空我的进度与答题历史
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/v1/users/progress/reset_all [post]
func (c *UserController) ResetAllProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := c.Service.ResetAll(ctx.Request.Context(), userID); err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "All progress has been reset"})
}

// @Summary 进度详情
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "进度ID"
// @Success 200 {object} util.Response{data=model.TestProgress}
// @Failure 404 {object} util.Response
// @Router /api/v1/users/progress/{id} [get]
func (c *UserController) GetProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	progress, err := c.Service.GetProgress(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 创建进度
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProgressInput true "进度"
// @Success 201 {object} util.Response{data=model.TestProgress}
// @Failure 400 {object} util.Response
// @Router /api/v1/users/progress [post]
func (c *UserController) CreateProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.ProgressInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	progress, err := c.Service.CreateProgress(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/users/progress/%d", util.APIPrefix, progress.ID), progress)
}

// @Summary 更新进度（PUT 全量 / PATCH 部分）
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "进度ID"
// @Param body body service.ProgressInput true "进度"
// @Success 200 {object} util.Response{data=model.TestProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/users/progress/{id} [put]
// @Router /api/v1/users/progress/{id} [patch]
func (c *UserController) UpdateProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.ProgressInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	progress, err := c.Service.UpdateProgress(ctx.Request.Context(), userID, id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 删除进度
// @Tags 用户
// @Security BearerAuth
// @Param id path int true "进度ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/users/progress/{id} [delete]
func (c *UserController) DeleteProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteProgress(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// ---------- 答题历史 ----------

// @Summary 我的答题历史
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.QuestionHistory}
// @Router /api/v1/users/history [get]
func (c *UserController) ListHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	history, err := c.Service.ListHistory(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// @Summary 答题历史详情
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "历史ID"
// @Success 200 {object} util.Response{data=model.QuestionHistory}
// @Failure 404 {object} util.Response
// @Router /api/v1/users/history/{id} [get]
func (c *UserController) GetHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	history, err := c.Service.GetHistory(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// @Summary 创建答题历史
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.HistoryInput true "答题历史"
// @Success 201 {object} util.Response{data=model.QuestionHistory}
// @Failure 400 {object} util.Response
// @Router /api/v1/users/history [post]
func (c *UserController) CreateHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.HistoryInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	history, err := c.Service.CreateHistory(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/users/history/%d", util.APIPrefix, history.ID), history)
}

// @Summary 更新答题历史（PUT 全量 / PATCH 部分）
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "历史ID"
// @Param body body service.HistoryInput true "答题历史"
// @Success 200 {object} util.Response{data=model.QuestionHistory}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/users/history/{id} [put]
// @Router /api/v1/users/history/{id} [patch]
func (c *UserController) UpdateHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.HistoryInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	history, err := c.Service.UpdateHistory(ctx.Request.Context(), userID, id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// @Summary 删除答题历史
// @Tags 用户
// @Security BearerAuth
// @Param id path int true "历史ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/users/history/{id} [delete]
func (c *UserController) DeleteHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteHistory(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
