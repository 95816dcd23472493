package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo stores an opaque URL to externally hosted image content; the
// binary data itself never enters this system.
type Photo struct {
	Uid    uuid.UUID `gorm:"column:uid;type:uuid;primaryKey" json:"uid"`
	NoteID uuid.UUID `gorm:"column:note_id;type:uuid;not null;index" json:"note_id"`
	Url    string    `gorm:"not null" json:"url"`
}

func (Photo) TableName() string {
	return "photos"
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.Uid == uuid.Nil {
		p.Uid = uuid.New()
	}
	return nil
}
