package controller

import (
	"fmt"

	"teksher_backend/internal/service"
	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	Service *service.BookmarkService
}

func NewBookmarkController(s *service.BookmarkService) *BookmarkController {
	return &BookmarkController{Service: s}
}

// @Summary 我的题目书签
// @Tags 书签
// @Produce json
// @Security BearerAuth
// @Param testset_id query int false "试卷ID"
// @Param question_id query int false "题目ID"
// @Success 200 {object} util.Response{data=[]model.QuestionBookmark}
// @Router /api/v1/bookmarks/question-bookmarks [get]
func (c *BookmarkController) ListQuestionBookmarks(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	testSetID, ok := queryUint(ctx, "testset_id")
	if !ok {
		return
	}
	questionID, ok := queryUint(ctx, "question_id")
	if !ok {
		return
	}
	bookmarks, err := c.Service.ListQuestionBookmarks(ctx.Request.Context(), userID, testSetID, questionID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, bookmarks)
}

// @Summary 题目书签详情
// @Tags 书签
// @Produce json
// @Security BearerAuth
// @Param id path int true "书签ID"
// @Success 200 {object} util.Response{data=model.QuestionBookmark}
// @Failure 404 {object} util.Response
// @Router /api/v1/bookmarks/question-bookmarks/{id} [get]
func (c *BookmarkController) GetQuestionBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	b, err := c.Service.GetQuestionBookmark(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, b)
}

// @Summary 添加题目书签
// @Tags 书签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionBookmarkInput true "书签"
// @Success 201 {object} util.Response{data=model.QuestionBookmark}
// @Failure 400 {object} util.Response
// @Router /api/v1/bookmarks/question-bookmarks [post]
func (c *BookmarkController) CreateQuestionBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.QuestionBookmarkInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	b, err := c.Service.CreateQuestionBookmark(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/bookmarks/question-bookmarks/%d", util.APIPrefix, b.ID), b)
}

// @Summary 更新题目书签（PUT 全量 / PATCH 部分）
// @Tags 书签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "书签ID"
// @Param body body service.QuestionBookmarkInput true "书签"
// @Success 200 {object} util.Response{data=model.QuestionBookmark}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/bookmarks/question-bookmarks/{id} [put]
// @Router /api/v1/bookmarks/question-bookmarks/{id} [patch]
func (c *BookmarkController) UpdateQuestionBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.QuestionBookmarkInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	b, err := c.Service.UpdateQuestionBookmark(ctx.Request.Context(), userID, id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, b)
}

// @Summary 删除题目书签
// @Tags 书签
// @Security BearerAuth
// @Param id path int true "书签ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/bookmarks/question-bookmarks/{id} [delete]
func (c *BookmarkController) DeleteQuestionBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteQuestionBookmark(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 我的试卷书签
// @Tags 书签
// @Produce json
// @Security BearerAuth
// @Param testset_id query int false "试卷ID"
// @Success 200 {object} util.Response{data=[]model.TestSetBookmark}
// @Router /api/v1/bookmarks/testset-bookmarks [get]
func (c *BookmarkController) ListTestSetBookmarks(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	testSetID, ok := queryUint(ctx, "testset_id")
	if !ok {
		return
	}
	bookmarks, err := c.Service.ListTestSetBookmarks(ctx.Request.Context(), userID, testSetID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, bookmarks)
}

// @Summary 试卷书签详情
// @Tags 书签
// @Produce json
// @Security BearerAuth
// @Param id path int true "书签ID"
// @Success 200 {object} util.Response{data=model.TestSetBookmark}
// @Failure 404 {object} util.Response
// @Router /api/v1/bookmarks/testset-bookmarks/{id} [get]
func (c *BookmarkController) GetTestSetBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	b, err := c.Service.GetTestSetBookmark(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, b)
}

// @Summary 添加试卷书签
// @Tags 书签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TestSetBookmarkInput true "书签"
// @Success 201 {object} util.Response{data=model.TestSetBookmark}
// @Failure 400 {object} util.Response
// @Router /api/v1/bookmarks/testset-bookmarks [post]
func (c *BookmarkController) CreateTestSetBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var in service.TestSetBookmarkInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	b, err := c.Service.CreateTestSetBookmark(ctx.Request.Context(), userID, &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/bookmarks/testset-bookmarks/%d", util.APIPrefix, b.ID), b)
}

// @Summary 更新试卷书签（PUT 全量 / PATCH 部分）
// @Tags 书签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "书签ID"
// @Param body body service.TestSetBookmarkInput true "书签"
// @Success 200 {object} util.Response{data=model.TestSetBookmark}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/bookmarks/testset-bookmarks/{id} [put]
// @Router /api/v1/bookmarks/testset-bookmarks/{id} [patch]
func (c *BookmarkController) UpdateTestSetBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.TestSetBookmarkInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	b, err := c.Service.UpdateTestSetBookmark(ctx.Request.Context(), userID, id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, b)
}

// @Summary 删除试卷书签
// @Tags 书签
// @Security BearerAuth
// @Param id path int true "书签ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/bookmarks/testset-bookmarks/{id} [delete]
func (c *BookmarkController) DeleteTestSetBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteTestSetBookmark(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
