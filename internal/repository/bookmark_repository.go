package repository

import (
	"context"

	"teksher_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionBookmarkRepository struct {
	*Store[model.QuestionBookmark]
}

func NewQuestionBookmarkRepository(db *gorm.DB) *QuestionBookmarkRepository {
	return &QuestionBookmarkRepository{Store: NewStore[model.QuestionBookmark](db)}
}

func (r *QuestionBookmarkRepository) ListForUser(ctx context.Context, userID uint, testSetID, questionID *uint) ([]model.QuestionBookmark, error) {
	return r.List(ctx, OwnedBy(userID), Equals("testset_id", testSetID), Equals("question_id", questionID))
}

type TestSetBookmarkRepository struct {
	*Store[model.TestSetBookmark]
}

func NewTestSetBookmarkRepository(db *gorm.DB) *TestSetBookmarkRepository {
	return &TestSetBookmarkRepository{Store: NewStore[model.TestSetBookmark](db)}
}

func (r *TestSetBookmarkRepository) ListForUser(ctx context.Context, userID uint, testSetID *uint) ([]model.TestSetBookmark, error) {
	return r.List(ctx, OwnedBy(userID), Equals("testset_id", testSetID))
}
