package models

import (
	"time"
)

type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// Photo - медиафайл ребенка (фото или видео).
// Thumbnail заполняется пост-обработкой и может отсутствовать:
// провал генерации миниатюры не отменяет существование записи.
type Photo struct {
	BaseModel
	BabyID       string     `gorm:"not null;index" json:"baby_id"`
	Path         string     `gorm:"not null" json:"path"`
	MediaType    MediaType  `gorm:"type:varchar(10);default:'photo'" json:"media_type"`
	Thumbnail    string     `json:"thumbnail"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	ShotAt       *time.Time `json:"shot_at"`
	UploadedByID string     `gorm:"index" json:"uploaded_by_id"`
	OriginalName string     `json:"original_name"`
	Size         int64      `json:"size"`
}
