package repositories

import (
	"errors"
	"time"

	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBabyNotFound       = errors.New("baby not found")
	ErrParentLinkNotFound = errors.New("parent link not found")
)

type BabyRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Baby, error)
	Create(db *gorm.DB, baby *models.Baby) error
	Update(db *gorm.DB, baby *models.Baby) error
	// SoftDelete помечает профиль удаленным, данные ребенка не теряются
	SoftDelete(db *gorm.DB, babyID string) error
	ListForUser(db *gorm.DB, userID string, limit, offset int) ([]models.Baby, int64, error)

	LinkParent(db *gorm.DB, link *models.BabyParent) error
	FindParentLink(db *gorm.DB, babyID, userID string) (*models.BabyParent, error)
	UnlinkParent(db *gorm.DB, babyID, userID string) error
}

type BabyRepositoryImpl struct{}

func NewBabyRepository() BabyRepository {
	return &BabyRepositoryImpl{}
}

func (r *BabyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Baby, error) {
	var baby models.Baby
	err := db.Preload("ParentLinks").
		First(&baby, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBabyNotFound
		}
		return nil, err
	}
	return &baby, nil
}

func (r *BabyRepositoryImpl) Create(db *gorm.DB, baby *models.Baby) error {
	return db.Create(baby).Error
}

func (r *BabyRepositoryImpl) Update(db *gorm.DB, baby *models.Baby) error {
	result := db.Model(baby).Updates(map[string]interface{}{
		"name":            baby.Name,
		"nickname":        baby.Nickname,
		"gender":          baby.Gender,
		"birthday":        baby.Birthday,
		"birth_weight_kg": baby.BirthWeightKg,
		"birth_height_cm": baby.BirthHeightCm,
		"gestational_age": baby.GestationalAge,
		"blood_type":      baby.BloodType,
		"allergies":       baby.Allergies,
		"avatar":          baby.Avatar,
		"notes":           baby.Notes,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBabyNotFound
	}
	return nil
}

func (r *BabyRepositoryImpl) SoftDelete(db *gorm.DB, babyID string) error {
	result := db.Model(&models.Baby{}).Where("id = ?", babyID).Updates(map[string]interface{}{
		"is_deleted": true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBabyNotFound
	}
	return nil
}

func (r *BabyRepositoryImpl) ListForUser(db *gorm.DB, userID string, limit, offset int) ([]models.Baby, int64, error) {
	base := db.Model(&models.Baby{}).
		Joins("JOIN baby_parents ON baby_parents.baby_id = babies.id").
		Where("baby_parents.user_id = ? AND babies.is_deleted = ?", userID, false)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var babies []models.Baby
	err := base.Order("babies.created_at DESC").Limit(limit).Offset(offset).Find(&babies).Error
	return babies, total, err
}

func (r *BabyRepositoryImpl) LinkParent(db *gorm.DB, link *models.BabyParent) error {
	err := db.Create(link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Связь уже есть - инвариант "одна связь на пару" соблюден
		return nil
	}
	return err
}

func (r *BabyRepositoryImpl) FindParentLink(db *gorm.DB, babyID, userID string) (*models.BabyParent, error) {
	var link models.BabyParent
	err := db.First(&link, "baby_id = ? AND user_id = ?", babyID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *BabyRepositoryImpl) UnlinkParent(db *gorm.DB, babyID, userID string) error {
	result := db.Where("baby_id = ? AND user_id = ?", babyID, userID).Delete(&models.BabyParent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParentLinkNotFound
	}
	return nil
}
