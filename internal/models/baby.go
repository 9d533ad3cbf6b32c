package models

import (
	"time"
)

type BabyGender string

const (
	GenderMale    BabyGender = "M"
	GenderFemale  BabyGender = "F"
	GenderUnknown BabyGender = "U"
)

// ParentRole - роль члена семьи по отношению к ребенку
type ParentRole string

const (
	RoleFather       ParentRole = "father"
	RoleMother       ParentRole = "mother"
	RoleGrandpa      ParentRole = "grandpa"
	RoleGrandma      ParentRole = "grandma"
	RolePaternalAunt ParentRole = "paternal_aunt"
	RoleMaternalAunt ParentRole = "maternal_aunt"
	RoleOther        ParentRole = "other"
)

// Baby - профиль ребенка
type Baby struct {
	BaseModel
	Name           string     `gorm:"not null" json:"name"`
	Nickname       string     `json:"nickname"`
	Gender         BabyGender `gorm:"type:varchar(1);default:'U'" json:"gender"`
	Birthday       *time.Time `json:"birthday"`
	BirthWeightKg  *float64   `json:"birth_weight_kg"`
	BirthHeightCm  *float64   `json:"birth_height_cm"`
	GestationalAge *int       `json:"gestational_age"` // недели
	BloodType      string     `json:"blood_type"`
	Allergies      string     `json:"allergies"`
	Avatar         string     `gorm:"default:'default.jpg'" json:"avatar"`
	Notes          string     `json:"notes"`
	IsDeleted      bool       `gorm:"default:false;index" json:"-"`

	// Relations
	ParentLinks []BabyParent `gorm:"foreignKey:BabyID" json:"parent_links,omitempty"`
	Photos      []Photo      `gorm:"foreignKey:BabyID" json:"-"`
}

// AgeInDays возвращает возраст в днях (nil, если дата рождения не указана)
func (b *Baby) AgeInDays(now time.Time) *int {
	if b.Birthday == nil {
		return nil
	}
	days := int(now.Sub(*b.Birthday).Hours() / 24)
	return &days
}

// AgeInMonths возвращает возраст в полных месяцах
func (b *Baby) AgeInMonths(now time.Time) *int {
	if b.Birthday == nil {
		return nil
	}
	months := (now.Year()-b.Birthday.Year())*12 + int(now.Month()) - int(b.Birthday.Month())
	return &months
}

// BabyParent - связь ребенок-родственник, уникальная на пару
type BabyParent struct {
	BaseModel
	BabyID    string     `gorm:"not null;uniqueIndex:uk_baby_user" json:"baby_id"`
	UserID    string     `gorm:"not null;uniqueIndex:uk_baby_user" json:"user_id"`
	Role      ParentRole `gorm:"type:varchar(20);default:'other'" json:"role"`
	IsPrimary bool       `gorm:"default:false" json:"is_primary"`
}
