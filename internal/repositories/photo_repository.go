package repositories

import (
	"errors"
	"time"

	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Photo, error)
	Create(db *gorm.DB, photo *models.Photo) error
	// SetThumbnail дописывает путь миниатюры после пост-обработки
	SetThumbnail(db *gorm.DB, photoID, thumbnailPath string) error
	Delete(db *gorm.DB, photoID, babyID string) error
	ListForBaby(db *gorm.DB, babyID string, limit, offset int) ([]models.Photo, int64, error)
}

type PhotoRepositoryImpl struct{}

func NewPhotoRepository() PhotoRepository {
	return &PhotoRepositoryImpl{}
}

func (r *PhotoRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Photo, error) {
	var photo models.Photo
	err := db.First(&photo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) Create(db *gorm.DB, photo *models.Photo) error {
	return db.Create(photo).Error
}

func (r *PhotoRepositoryImpl) SetThumbnail(db *gorm.DB, photoID, thumbnailPath string) error {
	result := db.Model(&models.Photo{}).Where("id = ?", photoID).Updates(map[string]interface{}{
		"thumbnail":  thumbnailPath,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepositoryImpl) Delete(db *gorm.DB, photoID, babyID string) error {
	result := db.Where("id = ? AND baby_id = ?", photoID, babyID).Delete(&models.Photo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepositoryImpl) ListForBaby(db *gorm.DB, babyID string, limit, offset int) ([]models.Photo, int64, error) {
	base := db.Model(&models.Photo{}).Where("baby_id = ?", babyID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var photos []models.Photo
	err := base.Order("shot_at DESC, created_at DESC").
		Limit(limit).Offset(offset).Find(&photos).Error
	return photos, total, err
}
