package repository

import (
	"context"
	"strings"

	"teksher_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	*Store[model.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{Store: NewStore[model.Category](db)}
}

// TestSetFilter 查询参数，字段为 nil 表示不过滤
type TestSetFilter struct {
	CategoryID *uint
	Difficulty *string
	Search     *string
}

func (f TestSetFilter) Scopes() []Scope {
	return []Scope{
		Equals("category_id", f.CategoryID),
		DifficultyIs(f.Difficulty),
		TitleOrDescriptionContains(f.Search),
	}
}

// DifficultyIs 忽略大小写的精确匹配，两侧都交给数据库的 LOWER 折叠
func DifficultyIs(difficulty *string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if difficulty == nil {
			return db
		}
		return db.Where("LOWER(difficulty) = LOWER(?)", *difficulty)
	}
}

// TitleOrDescriptionContains 忽略大小写的子串匹配
func TitleOrDescriptionContains(term *string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if term == nil || *term == "" {
			return db
		}
		pattern := "%" + escapeLike(*term) + "%"
		return db.Where("(LOWER(title) LIKE LOWER(?) ESCAPE '!' OR LOWER(description) LIKE LOWER(?) ESCAPE '!')", pattern, pattern)
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

type TestSetRepository struct {
	*Store[model.TestSet]
}

func NewTestSetRepository(db *gorm.DB) *TestSetRepository {
	return &TestSetRepository{Store: NewStore[model.TestSet](db, "Category")}
}

func (r *TestSetRepository) Search(ctx context.Context, filter TestSetFilter) ([]model.TestSet, error) {
	return r.List(ctx, filter.Scopes()...)
}

// QuestionIDs 按试卷分组的题目 id，按 id 升序
func (r *TestSetRepository) QuestionIDs(ctx context.Context, testSetIDs ...uint) (map[uint][]uint, error) {
	return childIDs(ctx, r.DB, &model.Question{}, "testset_id", testSetIDs)
}

type QuestionRepository struct {
	*Store[model.Question]
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{Store: NewStore[model.Question](db, "TestSet.Category")}
}

func (r *QuestionRepository) ByTestSet(ctx context.Context, testSetID *uint) ([]model.Question, error) {
	return r.List(ctx, Equals("testset_id", testSetID))
}

func (r *QuestionRepository) OptionIDs(ctx context.Context, questionIDs ...uint) (map[uint][]uint, error) {
	return childIDs(ctx, r.DB, &model.Option{}, "question_id", questionIDs)
}

type OptionRepository struct {
	*Store[model.Option]
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{Store: NewStore[model.Option](db, "Question.TestSet.Category")}
}

func (r *OptionRepository) ByQuestion(ctx context.Context, questionID *uint) ([]model.Option, error) {
	return r.List(ctx, Equals("question_id", questionID))
}

type parentChild struct {
	ParentID uint
	ID       uint
}

func childIDs(ctx context.Context, db *gorm.DB, child interface{}, parentColumn string, parentIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}
	for _, id := range parentIDs {
		result[id] = []uint{}
	}

	var rows []parentChild
	err := db.WithContext(ctx).Model(child).
		Select(parentColumn+" AS parent_id, id").
		Where(parentColumn+" IN ?", parentIDs).
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ParentID] = append(result[row.ParentID], row.ID)
	}
	return result, nil
}
