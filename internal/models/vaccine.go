package models

import (
	"time"
)

// Vaccine - справочник прививок национального календаря
type Vaccine struct {
	BaseModel
	Name              string `gorm:"not null;uniqueIndex:uk_vaccine_name_dose" json:"name"`
	Code              string `gorm:"uniqueIndex;not null" json:"code"`
	Category          string `json:"category"` // плановая / дополнительная
	ShotAgeDaysStart  int    `gorm:"default:0" json:"shot_age_days_start"`
	ShotAgeDaysEnd    *int   `json:"shot_age_days_end"`
	Dose              int    `gorm:"default:1;uniqueIndex:uk_vaccine_name_dose" json:"dose"`
	IntervalDays      int    `gorm:"default:0" json:"interval_days"`
	Description       string `json:"description"`
	Contraindications string `json:"contraindications"`
	SideEffects       string `json:"side_effects"`
}

// VaccineRecord - фактическая прививка ребенка
type VaccineRecord struct {
	BaseModel
	BabyID       string     `gorm:"not null;index" json:"baby_id"`
	VaccineID    string     `gorm:"not null" json:"vaccine_id"`
	ShotDate     time.Time  `gorm:"not null" json:"shot_date"`
	BatchNumber  string     `json:"batch_number"`
	Hospital     string     `json:"hospital"`
	Doctor       string     `json:"doctor"`
	Reaction     string     `json:"reaction"`
	NextShotDate *time.Time `json:"next_shot_date"`
	CreatedByID  string     `json:"created_by_id"`

	Vaccine *Vaccine `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`
}
