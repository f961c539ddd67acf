// Package testutil 测试用的内存数据库与数据构造
package testutil

import (
	"fmt"
	"testing"
	"time"

	"teksher_backend/internal/config"
	"teksher_backend/internal/model"
	"teksher_backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestSecret   = "test-secret-for-unit-tests-0123456789"
	TestPassword = "Correct-Horse-42"
)

// NewDB 每个测试独立的内存 SQLite，已迁移并开启外键
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), logger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func Config() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		JWT: config.JWTConfig{
			Secret:     TestSecret,
			ExpireTime: time.Hour,
		},
		Auth: config.AuthConfig{
			ResetTokenTTL: time.Hour,
			ResetURL:      "http://localhost:3000/reset-password",
		},
		RateLimit: config.RateLimitConfig{
			MaxRequests:     10000,
			WindowMinutes:   1,
			AuthMaxRequests: 10000,
		},
	}
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateTestSet(t *testing.T, db *gorm.DB, categoryID uint, title, description, difficulty string) *model.TestSet {
	t.Helper()
	ts := &model.TestSet{
		Title:            title,
		Description:      description,
		CategoryID:       categoryID,
		TimeLimitMinutes: 30,
		Difficulty:       difficulty,
	}
	require.NoError(t, db.Omit("Category").Create(ts).Error)
	return ts
}

func CreateQuestion(t *testing.T, db *gorm.DB, testSetID uint, content string) *model.Question {
	t.Helper()
	q := &model.Question{TestSetID: testSetID, Content: content}
	require.NoError(t, db.Omit("TestSet").Create(q).Error)
	return q
}

func CreateOption(t *testing.T, db *gorm.DB, questionID uint, content string, correct bool) *model.Option {
	t.Helper()
	o := &model.Option{QuestionID: questionID, Content: content, IsCorrect: correct}
	require.NoError(t, db.Omit("Question").Create(o).Error)
	return o
}

func CreateAttempt(t *testing.T, db *gorm.DB, userID, testSetID uint) *model.TestAttempt {
	t.Helper()
	a := &model.TestAttempt{UserID: userID, TestSetID: testSetID, ScorePercent: 80, Passed: true, DurationMinutes: 12}
	require.NoError(t, db.Omit("User", "TestSet", "Answers").Create(a).Error)
	return a
}
