package service

import (
	"context"
	"strings"

	"teksher_backend/internal/model"
	"teksher_backend/internal/repository"

	"gorm.io/datatypes"
)

// CategoryInput 写入分类，指针字段为 nil 表示请求中未提供
// swagger:model CategoryInput
type CategoryInput struct {
	Name        *string        `json:"name" binding:"omitempty,max=255"`
	Description *string        `json:"description"`
	Metadata    datatypes.JSON `json:"metadata" swaggertype:"object"`
}

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.CategoryRepo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.CategoryRepo.Get(ctx, id)
	return category, notFound(err)
}

func (s *CategoryService) Create(ctx context.Context, in *CategoryInput) (*model.Category, error) {
	category := &model.Category{}
	if err := s.apply(category, in, false); err != nil {
		return nil, err
	}
	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in *CategoryInput, partial bool) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(category, in, partial); err != nil {
		return nil, err
	}
	if err := s.CategoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return notFound(s.CategoryRepo.Delete(ctx, id))
}

func (s *CategoryService) apply(category *model.Category, in *CategoryInput, partial bool) error {
	check := newChecker(partial)
	check.text("name", in.Name)
	if err := check.err(); err != nil {
		return err
	}

	if in.Name != nil {
		category.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Metadata != nil {
		category.Metadata = in.Metadata
	}
	return nil
}
