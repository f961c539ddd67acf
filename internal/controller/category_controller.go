package controller

import (
	"fmt"

	"teksher_backend/internal/service"
	"teksher_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(s *service.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

// @Summary 分类列表
// @Tags 分类
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/v1/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary 分类详情
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /api/v1/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	category, err := c.Service.Get(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// @Summary 创建分类
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CategoryInput true "分类信息"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response
// @Router /api/v1/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var in service.CategoryInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	category, err := c.Service.Create(ctx.Request.Context(), &in)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.CreatedAt(ctx, fmt.Sprintf("%s/categories/%d", util.APIPrefix, category.ID), category)
}

// @Summary 更新分类（PUT 全量 / PATCH 部分）
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param body body service.CategoryInput true "分类信息"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/categories/{id} [put]
// @Router /api/v1/categories/{id} [patch]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var in service.CategoryInput
	if !util.BindJSON(ctx, &in) {
		return
	}
	category, err := c.Service.Update(ctx.Request.Context(), id, &in, isPatch(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// @Summary 删除分类
// @Tags 分类
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/v1/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
