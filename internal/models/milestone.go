package models

import (
	"time"
)

// MilestoneType - тип события развития (первый шаг, первое слово...)
type MilestoneType struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

// Event - событие-веха в развитии ребенка
type Event struct {
	BaseModel
	BabyID      string    `gorm:"not null;index" json:"baby_id"`
	TypeID      *string   `json:"type_id"`
	Title       string    `gorm:"not null" json:"title"`
	HappenDate  time.Time `gorm:"not null;index" json:"happen_date"`
	Description string    `json:"description"`
	CreatedByID string    `json:"created_by_id"`

	Type   *MilestoneType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Photos []Photo        `gorm:"many2many:event_photos" json:"photos,omitempty"`
}
