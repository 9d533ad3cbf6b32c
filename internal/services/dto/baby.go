package dto

import (
	"time"
)

type CreateBabyRequest struct {
	Name           string     `json:"name" validate:"required,max=100"`
	Nickname       string     `json:"nickname" validate:"omitempty,max=50"`
	Gender         string     `json:"gender" validate:"omitempty,oneof=M F U"`
	Birthday       *time.Time `json:"birthday"`
	BirthWeightKg  *float64   `json:"birth_weight_kg"`
	BirthHeightCm  *float64   `json:"birth_height_cm"`
	GestationalAge *int       `json:"gestational_age"`
	BloodType      string     `json:"blood_type" validate:"omitempty,max=5"`
	Allergies      string     `json:"allergies"`
	Notes          string     `json:"notes"`
	// Роль создающего по отношению к ребенку
	ParentRole string `json:"parent_role" validate:"omitempty,oneof=father mother grandpa grandma paternal_aunt maternal_aunt other"`
}

type UpdateBabyRequest struct {
	Name           string     `json:"name" validate:"required,max=100"`
	Nickname       string     `json:"nickname" validate:"omitempty,max=50"`
	Gender         string     `json:"gender" validate:"omitempty,oneof=M F U"`
	Birthday       *time.Time `json:"birthday"`
	BirthWeightKg  *float64   `json:"birth_weight_kg"`
	BirthHeightCm  *float64   `json:"birth_height_cm"`
	GestationalAge *int       `json:"gestational_age"`
	BloodType      string     `json:"blood_type" validate:"omitempty,max=5"`
	Allergies      string     `json:"allergies"`
	Notes          string     `json:"notes"`
}

type LinkParentRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	Role      string `json:"role" validate:"required,oneof=father mother grandpa grandma paternal_aunt maternal_aunt other"`
	IsPrimary bool   `json:"is_primary"`
}

type BabyResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Nickname       string     `json:"nickname"`
	Gender         string     `json:"gender"`
	Birthday       *time.Time `json:"birthday"`
	AgeInDays      *int       `json:"age_in_days"`
	AgeInMonths    *int       `json:"age_in_months"`
	BirthWeightKg  *float64   `json:"birth_weight_kg"`
	BirthHeightCm  *float64   `json:"birth_height_cm"`
	GestationalAge *int       `json:"gestational_age"`
	BloodType      string     `json:"blood_type"`
	Allergies      string     `json:"allergies"`
	Avatar         string     `json:"avatar"`
	Notes          string     `json:"notes"`
}
