package models

import (
	"time"

	"gorm.io/datatypes"
)

// MedicationRecord - прием лекарства
type MedicationRecord struct {
	BaseModel
	BabyID             string    `gorm:"not null;index" json:"baby_id"`
	Disease            string    `json:"disease"`
	MedicineName       string    `gorm:"not null" json:"medicine_name"`
	Dosage             string    `gorm:"not null" json:"dosage"`
	Frequency          string    `json:"frequency"` // например "3 раза в день"
	AdministrationTime time.Time `gorm:"not null;index" json:"administration_time"`
	Route              string    `json:"route"` // перорально, наружно...
	DoctorAdvice       string    `json:"doctor_advice"`
	Notes              string    `json:"notes"`
	CreatedByID        string    `json:"created_by_id"`
}

// CheckupRecord - плановый осмотр
type CheckupRecord struct {
	BaseModel
	BabyID          string         `gorm:"not null;index" json:"baby_id"`
	CheckupDate     time.Time      `gorm:"not null" json:"checkup_date"`
	Institution     string         `gorm:"not null" json:"institution"`
	Doctor          string         `json:"doctor"`
	Summary         string         `json:"summary"`
	Details         datatypes.JSON `json:"details"` // произвольные показатели осмотра
	Suggestions     string         `json:"suggestions"`
	NextCheckupDate *time.Time     `json:"next_checkup_date"`
	CreatedByID     string         `json:"created_by_id"`
}
