package models

type UserRole string

const (
	UserRoleParent UserRole = "parent"
	UserRoleAdmin  UserRole = "admin"
)

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Phone        string   `gorm:"index" json:"phone"`
	Avatar       string   `gorm:"default:'default.jpg'" json:"avatar"`
	Role         UserRole `gorm:"type:varchar(20);default:'parent'" json:"role"`

	// Создается неактивным; активируется ровно один раз валидным токеном
	IsActive bool `gorm:"default:false" json:"is_active"`
	IsParent bool `gorm:"default:true" json:"is_parent"`
	IsVIP    bool `gorm:"column:is_vip;default:false" json:"is_vip"`

	// Relations
	BabyLinks []BabyParent `gorm:"foreignKey:UserID" json:"-"`
}
