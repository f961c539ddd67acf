package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Username  string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"size:254;index" json:"email"`
	Password  string     `gorm:"size:128;not null" json:"-"`
	FirstName string     `gorm:"size:150" json:"first_name"`
	LastName  string     `gorm:"size:150" json:"last_name"`
	LastLogin *time.Time `json:"last_login"`
}

func (User) TableName() string {
	return "users"
}
