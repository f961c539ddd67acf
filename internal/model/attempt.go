package model

// TestAttempt 用户的一次答题记录，分数与是否通过由客户端计算
// swagger:model TestAttempt
type TestAttempt struct {
	BaseModel
	UserID          uint     `gorm:"index;not null" json:"user"`
	User            *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TestSetID       uint     `gorm:"column:testset_id;index;not null" json:"testset"`
	TestSet         *TestSet `gorm:"foreignKey:TestSetID;constraint:OnDelete:CASCADE" json:"-"`
	ScorePercent    float64  `gorm:"not null" json:"score_percent"`
	Passed          bool     `gorm:"not null" json:"passed"`
	DurationMinutes int      `gorm:"not null" json:"duration_minutes"`
	Answers         []Answer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

// Answer 单题作答，SelectedOptionID 为空表示跳过
// swagger:model Answer
type Answer struct {
	ID               uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	AttemptID        uint         `gorm:"index;not null" json:"attempt"`
	Attempt          *TestAttempt `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID       uint         `gorm:"index;not null" json:"question"`
	Question         *Question    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SelectedOptionID *uint        `gorm:"index" json:"selected_option"`
	SelectedOption   *Option      `gorm:"foreignKey:SelectedOptionID;constraint:OnDelete:CASCADE" json:"-"`
	IsCorrect        bool         `gorm:"not null" json:"is_correct"`
}

func (Answer) TableName() string {
	return "answers"
}
