package model

import (
	"time"

	"gorm.io/gorm"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
	LanguageGerman  Language = "de"
	LanguageRussian Language = "ru"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman, LanguageRussian:
		return true
	}
	return false
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// UserProfile 注册时自动创建
// swagger:model UserProfile
type UserProfile struct {
	BaseModel
	UserID uint  `gorm:"uniqueIndex;not null" json:"user"`
	User   *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// UserPreferences 注册时自动创建
// swagger:model UserPreferences
type UserPreferences struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uint      `gorm:"uniqueIndex;not null" json:"user"`
	User                 *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Language             Language  `gorm:"size:10;not null" json:"language"`
	Theme                Theme     `gorm:"size:10;not null" json:"theme"`
	NotificationsEnabled bool      `gorm:"not null" json:"notifications_enabled"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}

// DefaultPreferences en / system / 通知开启
func DefaultPreferences(userID uint) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		Language:             LanguageEnglish,
		Theme:                ThemeSystem,
		NotificationsEnabled: true,
	}
}

// TestProgress 每个用户每套试卷唯一
// swagger:model TestProgress
type TestProgress struct {
	BaseModel
	UserID            uint           `gorm:"uniqueIndex:idx_progress_user_testset;not null" json:"user"`
	User              *User          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TestSetID         uint           `gorm:"column:testset_id;uniqueIndex:idx_progress_user_testset;not null" json:"testset"`
	TestSet           *TestSet       `gorm:"foreignKey:TestSetID;constraint:OnDelete:CASCADE" json:"-"`
	Status            ProgressStatus `gorm:"size:20;not null" json:"status"`
	LastQuestionIndex int            `gorm:"not null" json:"last_question_index"`
	// TimeSpent 秒
	TimeSpent int       `gorm:"not null" json:"time_spent"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TestProgress) TableName() string {
	return "test_progress"
}

// QuestionHistory 每个用户每道题唯一，Accuracy 每次读取时重新计算
// swagger:model QuestionHistory
type QuestionHistory struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint       `gorm:"uniqueIndex:idx_history_user_question;not null" json:"user"`
	User           *User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	QuestionID     uint       `gorm:"uniqueIndex:idx_history_user_question;not null" json:"question"`
	Question       *Question  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TimesAttempted int        `gorm:"not null" json:"times_attempted"`
	TimesCorrect   int        `gorm:"not null" json:"times_correct"`
	LastAttempted  *time.Time `json:"last_attempted"`
	Accuracy       float64    `gorm:"-" json:"accuracy"`
}

func (QuestionHistory) TableName() string {
	return "question_histories"
}

// ComputeAccuracy 正确率百分比，未作答时为 0
func (h *QuestionHistory) ComputeAccuracy() float64 {
	if h.TimesAttempted == 0 {
		return 0
	}
	return float64(h.TimesCorrect) / float64(h.TimesAttempted) * 100
}

func (h *QuestionHistory) AfterFind(tx *gorm.DB) error {
	h.Accuracy = h.ComputeAccuracy()
	return nil
}

func (h *QuestionHistory) AfterSave(tx *gorm.DB) error {
	h.Accuracy = h.ComputeAccuracy()
	return nil
}
