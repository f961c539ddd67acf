package controller

import (
	"fmt"

	"teksher_backend/internal/repository"
	"teksher_backend/internal/service"
	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController 试卷、题目、选项
type ContentController struct {
	Service *service.ContentService
}

func NewContentController(s *service.ContentService) *ContentController {
	return &ContentController{Service: s}
}

// @Summary 试卷列表
// @Description 条件之间为 AND；difficulty 忽略大小写精确匹配，search 匹配标题或描述
// @Tags 试卷
// @Produce json
// @Param category_id query int false "分类ID"
// @Param difficulty query string false "难度"
// @Param search query string false "关键词"
// @Success 200 {object} util.Response{data=[]service.TestSetView}
// @Failure 400 {object} util.Response
// @Router /api/v1/testsets [get]
func (c *ContentController) ListTestSets(ctx *gin.Context) {
	categoryID, ok := queryUint(ctx, "category_id")
	if !ok {
		return
	}
	filter := repository.TestSetFilter{
		CategoryID: categoryID,
		Difficulty: util.OptionalQuery(ctx, "difficulty"),
		Search:     util.OptionalQuery(ctx, "search"),
	}
	sets, err := c.Service.ListTestSets(ctx.Request.Context(), filter)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, sets)
}

// @Summary 试卷详情
// @Tags 试卷
// @Produce json
// @Param id path int true "试卷ID"
// @Success 200 {object} util.Response{data=service.TestSetView}
// @Failure 404 {object} util.Response
// @Router /api/v1/testsets/{id} [get]
func (c *ContentController) GetTestSet(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	ts, err := c.Service.GetTestSet(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, ts)
}

// @Summary 创建试卷
// @Tags 试卷
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TestSetInput true "试卷信息"
// @Success 201 {object} util.Response{data=service.TestSetView}
// @Failure 400 {object} util.Response
// @Router /api/v1/testsets [post]
func (c *ContentController) CreateTestSet(ctx *gin.Context) {
	var in service.TestSetInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	ts, err := c.Service.CreateTestSet(ctx.Request.Context(), &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/testsets/%d", util.APIPrefix, ts.ID), ts)
}

// @Summary 更新试卷（PUT 全量 / PATCH 部分）
// @Tags 试卷
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Param body body service.TestSetInput true "试卷信息"
// @Success 200 {object} util.Response{data=service.TestSetView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/testsets/{id} [put]
// @Router /api/v1/testsets/{id} [patch]
func (c *ContentController) UpdateTestSet(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.TestSetInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	ts, err := c.Service.UpdateTestSet(ctx.Request.Context(), id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, ts)
}

// @Summary 删除试卷
// @Tags 试卷
// @Security BearerAuth
// @Param id path int true "试卷ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/testsets/{id} [delete]
func (c *ContentController) DeleteTestSet(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteTestSet(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 题目列表
// @Tags 题目
// @Produce json
// @Param testset_id query int false "试卷ID"
// @Success 200 {object} util.Response{data=[]service.QuestionView}
// @Failure 400 {object} util.Response
// @Router /api/v1/questions [get]
func (c *ContentController) ListQuestions(ctx *gin.Context) {
	testSetID, ok := queryUint(ctx, "testset_id")
	if !ok {
		return
	}
	questions, err := c.Service.ListQuestions(ctx.Request.Context(), testSetID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 题目详情
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=service.QuestionView}
// @Failure 404 {object} util.Response
// @Router /api/v1/questions/{id} [get]
func (c *ContentController) GetQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	q, err := c.Service.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 创建题目
// @Tags 题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionInput true "题目信息"
// @Success 201 {object} util.Response{data=service.QuestionView}
// @Failure 400 {object} util.Response
// @Router /api/v1/questions [post]
func (c *ContentController) CreateQuestion(ctx *gin.Context) {
	var in service.QuestionInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	q, err := c.Service.CreateQuestion(ctx.Request.Context(), &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/questions/%d", util.APIPrefix, q.ID), q)
}

// @Summary 更新题目（PUT 全量 / PATCH 部分）
// @Tags 题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param body body service.QuestionInput true "题目信息"
// @Success 200 {object} util.Response{data=service.QuestionView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/questions/{id} [put]
// @Router /api/v1/questions/{id} [patch]
func (c *ContentController) UpdateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.QuestionInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	q, err := c.Service.UpdateQuestion(ctx.Request.Context(), id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 删除题目
// @Tags 题目
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/questions/{id} [delete]
func (c *ContentController) DeleteQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 选项列表
// @Tags 选项
// @Produce json
// @Param question_id query int false "题目ID"
// @Success 200 {object} util.Response{data=[]service.OptionView}
// @Failure 400 {object} util.Response
// @Router /api/v1/options [get]
func (c *ContentController) ListOptions(ctx *gin.Context) {
	questionID, ok := queryUint(ctx, "question_id")
	if !ok {
		return
	}
	options, err := c.Service.ListOptions(ctx.Request.Context(), questionID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, options)
}

// @Summary 选项详情
// @Tags 选项
// @Produce json
// @Param id path int true "选项ID"
// @Success 200 {object} util.Response{data=service.OptionView}
// @Failure 404 {object} util.Response
// @Router /api/v1/options/{id} [get]
func (c *ContentController) GetOption(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	o, err := c.Service.GetOption(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, o)
}

// @Summary 创建选项
// @Tags 选项
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.OptionInput true "选项信息"
// @Success 201 {object} util.Response{data=service.OptionView}
// @Failure 400 {object} util.Response
// @Router /api/v1/options [post]
func (c *ContentController) CreateOption(ctx *gin.Context) {
	var in service.OptionInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	o, err := c.Service.CreateOption(ctx.Request.Context(), &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/options/%d", util.APIPrefix, o.ID), o)
}

// @Summary 更新选项（PUT 全量 / PATCH 部分）
// @Tags 选项
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "选项ID"
// @Param body body service.OptionInput true "选项信息"
// @Success 200 {object} util.Response{data=service.OptionView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/options/{id} [put]
// @Router /api/v1/options/{id} [patch]
func (c *ContentController) UpdateOption(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.OptionInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	o, err := c.Service.UpdateOption(ctx.Request.Context(), id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, o)
}

// @Summary 删除选项
// @Tags 选项
// @Security BearerAuth
// @Param id path int true "选项ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/options/{id} [delete]
func (c *ContentController) DeleteOption(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.DeleteOption(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
