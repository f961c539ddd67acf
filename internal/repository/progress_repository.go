package repository

import (
	"context"

	"teksher_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	*Store[model.UserProfile]
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{Store: NewStore[model.UserProfile](db)}
}

func (r *ProfileRepository) WithTx(tx *gorm.DB) *ProfileRepository {
	return NewProfileRepository(tx)
}

type PreferencesRepository struct {
	*Store[model.UserPreferences]
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{Store: NewStore[model.UserPreferences](db)}
}

func (r *PreferencesRepository) WithTx(tx *gorm.DB) *PreferencesRepository {
	return NewPreferencesRepository(tx)
}

func (r *PreferencesRepository) FindByUser(ctx context.Context, userID uint) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

type ProgressRepository struct {
	*Store[model.TestProgress]
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{Store: NewStore[model.TestProgress](db)}
}

func (r *ProgressRepository) ByStatus(ctx context.Context, userID uint, status model.ProgressStatus) ([]model.TestProgress, error) {
	return r.List(ctx, OwnedBy(userID), func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

// ExistsForTestSet 同一用户同一试卷只允许一条进度，excludeID 用于更新时排除自身
func (r *ProgressRepository) ExistsForTestSet(ctx context.Context, userID, testSetID, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.TestProgress{}).
		Where("user_id = ? AND testset_id = ? AND id <> ?", userID, testSetID, excludeID).
		Count(&count).Error
	return count > 0, err
}

// ResetAll 在同一事务中删除用户的全部进度与答题历史
func (r *ProgressRepository) ResetAll(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.TestProgress{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.QuestionHistory{}).Error
	})
}

type HistoryRepository struct {
	*Store[model.QuestionHistory]
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{Store: NewStore[model.QuestionHistory](db)}
}

func (r *HistoryRepository) ExistsForQuestion(ctx context.Context, userID, questionID, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.QuestionHistory{}).
		Where("user_id = ? AND question_id = ? AND id <> ?", userID, questionID, excludeID).
		Count(&count).Error
	return count > 0, err
}
