package models

import (
	"time"
)

// Measurement - замер физического развития.
// На пару (ребенок, дата) хранится одна запись: повторный замер
// в тот же день перезаписывает предыдущий.
type Measurement struct {
	BaseModel
	BabyID             string    `gorm:"not null;uniqueIndex:uk_baby_measure_date" json:"baby_id"`
	MeasureDate        time.Time `gorm:"not null;uniqueIndex:uk_baby_measure_date" json:"measure_date"`
	HeightCm           float64   `gorm:"not null" json:"height_cm"`
	WeightKg           float64   `gorm:"not null" json:"weight_kg"`
	HeadCircumference  *float64  `json:"head_circumference"`
	ChestCircumference *float64  `json:"chest_circumference"`
	MeasuredByID       string    `json:"measured_by_id"`
	Notes              string    `json:"notes"`
}
