package repositories

import (
	"errors"
	"time"

	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Comment, error)
	Create(db *gorm.DB, comment *models.Comment) error
	// SoftDelete помечает комментарий удаленным, строка остается
	SoftDelete(db *gorm.DB, commentID, articleID string) error
	// HardDelete удаляет строку; id вне указанной статьи считается не найденным
	HardDelete(db *gorm.DB, commentID, articleID string) error
	ListForArticle(db *gorm.DB, articleID string) ([]models.Comment, error)
	CountForArticle(db *gorm.DB, articleID string) (int64, error)
}

type CommentRepositoryImpl struct{}

func NewCommentRepository() CommentRepository {
	return &CommentRepositoryImpl{}
}

func (r *CommentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Comment, error) {
	var comment models.Comment
	err := db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) Create(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

// SoftDelete скрывает живой комментарий. Уже скрытая строка
// считается отсутствующей, повтор не выдается за успех.
func (r *CommentRepositoryImpl) SoftDelete(db *gorm.DB, commentID, articleID string) error {
	result := db.Model(&models.Comment{}).
		Where("id = ? AND article_id = ? AND is_deleted = ?", commentID, articleID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepositoryImpl) HardDelete(db *gorm.DB, commentID, articleID string) error {
	result := db.Where("id = ? AND article_id = ?", commentID, articleID).
		Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// ListForArticle возвращает не софт-удаленные комментарии, новые сверху
func (r *CommentRepositoryImpl) ListForArticle(db *gorm.DB, articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Preload("User").
		Where("article_id = ? AND is_deleted = ?", articleID, false).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CountForArticle считает только не софт-удаленные строки
func (r *CommentRepositoryImpl) CountForArticle(db *gorm.DB, articleID string) (int64, error) {
	var count int64
	err := db.Model(&models.Comment{}).
		Where("article_id = ? AND is_deleted = ?", articleID, false).
		Count(&count).Error
	return count, err
}
