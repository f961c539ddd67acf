package model

// swagger:model QuestionBookmark
type QuestionBookmark struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"user"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TestSetID  uint      `gorm:"column:testset_id;index;not null" json:"testset"`
	TestSet    *TestSet  `gorm:"foreignKey:TestSetID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID uint      `gorm:"index;not null" json:"question"`
	Question   *Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (QuestionBookmark) TableName() string {
	return "question_bookmarks"
}

// swagger:model TestSetBookmark
type TestSetBookmark struct {
	BaseModel
	UserID    uint     `gorm:"index;not null" json:"user"`
	User      *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TestSetID uint     `gorm:"column:testset_id;index;not null" json:"testset"`
	TestSet   *TestSet `gorm:"foreignKey:TestSetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TestSetBookmark) TableName() string {
	return "testset_bookmarks"
}
