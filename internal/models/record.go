package models

import (
	"time"
)

type RecordCategory string

const (
	RecordDaily       RecordCategory = "daily"
	RecordHealth      RecordCategory = "health"
	RecordDevelopment RecordCategory = "development"
	RecordFeeding     RecordCategory = "feeding"
	RecordSleep       RecordCategory = "sleep"
	RecordOther       RecordCategory = "other"
)

type RecordType string

const (
	RecordText  RecordType = "text"
	RecordVoice RecordType = "voice"
)

// Record - дневниковая запись о ребенке (текст или голос)
type Record struct {
	BaseModel
	BabyID        string         `gorm:"not null;index:idx_record_baby_date" json:"baby_id"`
	AuthorID      string         `gorm:"not null" json:"author_id"`
	Title         string         `json:"title"`
	Content       string         `gorm:"not null" json:"content"`
	Category      RecordCategory `gorm:"type:varchar(20);default:'daily';index" json:"category"`
	RecordType    RecordType     `gorm:"type:varchar(20);default:'text'" json:"record_type"`
	VoicePath     string         `json:"voice_path"`
	VoiceDuration int            `gorm:"default:0" json:"voice_duration"` // секунды
	RecordDate    time.Time      `gorm:"not null;index:idx_record_baby_date" json:"record_date"`
}
