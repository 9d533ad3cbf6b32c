package dto

import "time"

// Результат обработки одного файла при загрузке медиа.
type MediaItemResult struct {
	OriginalName string `json:"original_name"`
	Accepted     bool   `json:"accepted"`
	Reason       string `json:"reason,omitempty"`
	PhotoID      string `json:"photo_id,omitempty"`
}

type AttachMediaResult struct {
	AcceptedCount int               `json:"accepted_count"`
	Items         []MediaItemResult `json:"items"`
}

type PhotoResponse struct {
	ID           string    `json:"id"`
	BabyID       string    `json:"baby_id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	MediaType    string    `json:"media_type"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}
