package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns a collection of notes. Deleting a user cascades to its notes
// and, through them, to their photos.
type User struct {
	Uid   uuid.UUID `gorm:"column:uid;type:uuid;primaryKey" json:"uid"`
	Notes []Note    `gorm:"foreignKey:UserID;references:Uid;constraint:OnDelete:CASCADE" json:"notes"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Uid == uuid.Nil {
		u.Uid = uuid.New()
	}
	return nil
}
