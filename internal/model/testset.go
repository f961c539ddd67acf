package model

// TestSet 试卷
type TestSet struct {
	BaseModel
	Title            string    `gorm:"size:255;not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	CategoryID       uint      `gorm:"index;not null" json:"category_id"`
	Category         *Category `gorm:"constraint:OnDelete:CASCADE" json:"category,omitempty"`
	TimeLimitMinutes int       `gorm:"not null" json:"time_limit_minutes"`
	// Difficulty 自由文本，比较时忽略大小写
	Difficulty string `gorm:"size:50" json:"difficulty"`
}

func (TestSet) TableName() string {
	return "test_sets"
}

type Question struct {
	BaseModel
	TestSetID   uint     `gorm:"column:testset_id;index;not null" json:"testset_id"`
	TestSet     *TestSet `gorm:"foreignKey:TestSetID;constraint:OnDelete:CASCADE" json:"testset,omitempty"`
	Content     string   `gorm:"type:text;not null" json:"content"`
	Explanation string   `gorm:"type:text" json:"explanation"`
}

func (Question) TableName() string {
	return "questions"
}

type Option struct {
	BaseModel
	QuestionID uint      `gorm:"index;not null" json:"question_id"`
	Question   *Question `gorm:"constraint:OnDelete:CASCADE" json:"question,omitempty"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
}

func (Option) TableName() string {
	return "options"
}
