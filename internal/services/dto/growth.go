package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateRecordRequest struct {
	Title         string    `json:"title" validate:"omitempty,max=100"`
	Content       string    `json:"content" validate:"required"`
	Category      string    `json:"category" validate:"omitempty,oneof=daily health development feeding sleep other"`
	RecordType    string    `json:"record_type" validate:"omitempty,oneof=text voice"`
	VoicePath     string    `json:"voice_path"`
	VoiceDuration int       `json:"voice_duration" validate:"omitempty,min=0"`
	RecordDate    time.Time `json:"record_date" validate:"required"`
}

type CreateMeasurementRequest struct {
	MeasureDate        time.Time `json:"measure_date" validate:"required"`
	HeightCm           float64   `json:"height_cm" validate:"required,gt=0"`
	WeightKg           float64   `json:"weight_kg" validate:"required,gt=0"`
	HeadCircumference  *float64  `json:"head_circumference"`
	ChestCircumference *float64  `json:"chest_circumference"`
	Notes              string    `json:"notes" validate:"omitempty,max=200"`
}

type CreateVaccineRecordRequest struct {
	VaccineID    string     `json:"vaccine_id" validate:"required,uuid"`
	ShotDate     time.Time  `json:"shot_date" validate:"required"`
	BatchNumber  string     `json:"batch_number" validate:"omitempty,max=50"`
	Hospital     string     `json:"hospital" validate:"omitempty,max=150"`
	Doctor       string     `json:"doctor" validate:"omitempty,max=50"`
	Reaction     string     `json:"reaction"`
	NextShotDate *time.Time `json:"next_shot_date"`
}

type CreateEventRequest struct {
	TypeID      string    `json:"type_id" validate:"omitempty,uuid"`
	Title       string    `json:"title" validate:"required,max=100"`
	HappenDate  time.Time `json:"happen_date" validate:"required"`
	Description string    `json:"description"`
	PhotoIDs    []string  `json:"photo_ids" validate:"omitempty,dive,uuid"`
}

type CreateMedicationRequest struct {
	Disease            string    `json:"disease" validate:"omitempty,max=100"`
	MedicineName       string    `json:"medicine_name" validate:"required,max=100"`
	Dosage             string    `json:"dosage" validate:"required,max=50"`
	Frequency          string    `json:"frequency" validate:"omitempty,max=50"`
	AdministrationTime time.Time `json:"administration_time" validate:"required"`
	Route              string    `json:"route" validate:"omitempty,max=50"`
	DoctorAdvice       string    `json:"doctor_advice"`
	Notes              string    `json:"notes"`
}

type CreateCheckupRequest struct {
	CheckupDate     time.Time      `json:"checkup_date" validate:"required"`
	Institution     string         `json:"institution" validate:"required,max=150"`
	Doctor          string         `json:"doctor" validate:"omitempty,max=50"`
	Summary         string         `json:"summary"`
	Details         datatypes.JSON `json:"details"`
	Suggestions     string         `json:"suggestions"`
	NextCheckupDate *time.Time     `json:"next_checkup_date"`
}
