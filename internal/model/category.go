package model

import (
	"gorm.io/datatypes"
)

// Category 题库分类
// swagger:model Category
type Category struct {
	BaseModel
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Metadata    datatypes.JSON `json:"metadata" swaggertype:"object"`
}

func (Category) TableName() string {
	return "categories"
}
