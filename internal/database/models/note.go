package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note belongs to a user and owns a collection of photos. DateChange is
// always assigned by the server, both on creation and on every update.
type Note struct {
	Uid        uuid.UUID `gorm:"column:uid;type:uuid;primaryKey" json:"uid"`
	Title      string    `gorm:"not null" json:"title"`
	Text       *string   `gorm:"type:text" json:"text"`
	DateChange time.Time `gorm:"column:date_change;not null" json:"date_change"`
	Marked     bool      `gorm:"not null" json:"marked"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Photos     []Photo   `gorm:"foreignKey:NoteID;references:Uid;constraint:OnDelete:CASCADE" json:"photos"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.Uid == uuid.Nil {
		n.Uid = uuid.New()
	}
	return nil
}
