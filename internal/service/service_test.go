package service

import (
	"testing"

	"teksher_backend/internal/repository"
	"teksher_backend/internal/testutil"

	"gorm.io/gorm"
)

type testServices struct {
	db       *gorm.DB
	auth     *AuthService
	account  *AccountService
	content  *ContentService
	attempts *AttemptService
	bookmark *BookmarkService
	category *CategoryService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := testutil.Config()

	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	prefs := repository.NewPreferencesRepository(db)
	progress := repository.NewProgressRepository(db)
	history := repository.NewHistoryRepository(db)
	categories := repository.NewCategoryRepository(db)
	testSets := repository.NewTestSetRepository(db)
	questions := repository.NewQuestionRepository(db)
	options := repository.NewOptionRepository(db)

	return &testServices{
		db:       db,
		auth:     NewAuthService(db, users, profiles, prefs, cfg, LogMailer{}, NewMemoryTokenRevoker()),
		account:  NewAccountService(profiles, prefs, progress, history, testSets, questions),
		content:  NewContentService(categories, testSets, questions, options),
		attempts: NewAttemptService(repository.NewAttemptRepository(db), repository.NewAnswerRepository(db), testSets, questions, options),
		bookmark: NewBookmarkService(repository.NewQuestionBookmarkRepository(db), repository.NewTestSetBookmarkRepository(db), testSets, questions),
		category: NewCategoryService(categories),
	}
}

func (s *testServices) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := s.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func ptr[T any](v T) *T { return &v }
