package repository

import (
	"teksher_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	*Store[model.TestAttempt]
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{Store: NewStore[model.TestAttempt](db, "Answers")}
}

type AnswerRepository struct {
	*Store[model.Answer]
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{Store: NewStore[model.Answer](db)}
}

// AnswersOwnedBy 答案通过所属答题记录判断归属
func AnswersOwnedBy(userID uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		attempts := db.Session(&gorm.Session{NewDB: true}).
			Model(&model.TestAttempt{}).
			Select("id").
			Where("user_id = ?", userID)
		return db.Where("attempt_id IN (?)", attempts)
	}
}
