package controller

import (
	"fmt"

	"teksher_backend/internal/service"
	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AttemptController 答题记录与作答，只能访问自己的数据
type AttemptController struct {
	Service *service.AttemptService
}

func NewAttemptController(s *service.AttemptService) *AttemptController {
	return &AttemptController{Service: s}
}

// @Summary 我的答题记录
// @Tags 答题
// @Produce json
// @Security BearerAuth
// @Param testset_id query int false "试卷ID"
// @Success 200 {object} util.Response{data=[]model.TestAttempt}
// @Failure 401 {object} util.Response
// @Router /api/v1/attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	testSetID, ok := queryUint(ctx, "testset_id")
	if !ok {
		return
	}
	attempts, err := c.Service.ListAttempts(ctx.Request.Context(), userID, testSetID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// @Summary 答题记录详情
// @Tags 答题
// @Produce json
// @Security BearerAuth
// @Param id path int true "答题记录ID"
// @Success 200 {object} util.Response{data=model.TestAttempt}
// @Failure 404 {object} util.Response
// @Router /api/v1/attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	attempt, err := c.Service.GetAttempt(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary 提交答题记录
// @Description 用户取自当前登录用户，分数与是否通过按提交值保存
// @Tags 答题
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AttemptInput true "答题记录"
// @Success 201 {object} util.Response{data=model.TestAttempt}
// @Failure 400 {object} util.Response
// @Router /api/v1/attempts [post]
func (c *AttemptController) CreateAttempt(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.AttemptInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	attempt, err := c.Service.CreateAttempt(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/attempts/%d", util.APIPrefix, attempt.ID), attempt)
}

// @Summary 更新答题记录（PUT 全量 / PATCH 部分）
// @Tags 答题
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "答题记录ID"
// @Param body body service.AttemptInput true "答题记录"
// @Success 200 {object} util.Response{data=model.TestAttempt}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/attempts/{id} [put]
// @Router /api/v1/attempts/{id} [patch]
func (c *AttemptController) UpdateAttempt(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.AttemptInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	attempt, err := c.Service.UpdateAttempt(ctx.Request.Context(), userID, id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary 删除答题记录
// @Tags 答题
// @Security BearerAuth
// @Param id path int true "答题记录ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/attempts/{id} [delete]
func (c *AttemptController) DeleteAttempt(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteAttempt(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 我的作答列表
// @Tags 答题
// @Produce json
// @Security BearerAuth
// @Param attempt_id query int false "答题记录ID"
// @Success 200 {object} util.Response{data=[]model.Answer}
// @Router /api/v1/answers [get]
func (c *AttemptController) ListAnswers(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	attemptID, ok := queryUint(ctx, "attempt_id")
	if !ok {
		return
	}
	answers, err := c.Service.ListAnswers(ctx.Request.Context(), userID, attemptID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// @Summary 作答详情
// @Tags 答题
// @Produce json
// @Security BearerAuth
// @Param id path int true "作答ID"
// @Success 200 {object} util.Response{data=model.Answer}
// @Failure 404 {object} util.Response
// @Router /api/v1/answers/{id} [get]
func (c *AttemptController) GetAnswer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	answer, err := c.Service.GetAnswer(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// @Summary 提交作答
// @Tags 答题
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AnswerInput true "作答"
// @Success 201 {object} util.Response{data=model.Answer}
// @Failure 400 {object} util.Response
// @Router /api/v1/answers [post]
func (c *AttemptController) CreateAnswer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.AnswerInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	answer, err := c.Service.CreateAnswer(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/answers/%d", util.APIPrefix, answer.ID), answer)
}

// @Summary 更新作答（PUT 全量 / PATCH 部分）
// @Tags 答题
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "作答ID"
// @Param body body service.AnswerInput true "作答"
// @Success 200 {object} util.Response{data=model.Answer}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/answers/{id} [put]
// @Router /api/v1/answers/{id} [patch]
func (c *AttemptController) UpdateAnswer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.AnswerInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	answer, err := c.Service.UpdateAnswer(ctx.Request.Context(), userID, id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// @Summary 删除作答
// @Tags 答题
// @Security BearerAuth
// @Param id path int true "作答ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/answers/{id} [delete]
func (c *AttemptController) DeleteAnswer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteAnswer(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
