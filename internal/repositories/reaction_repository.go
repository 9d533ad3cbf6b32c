package repositories

import (
	"errors"

	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReactionNotFound = errors.New("reaction not found")
	// ErrReactionExists - вставка уперлась в уникальный индекс (user, article).
	// Для переключателя это не сбой, а проигранная гонка.
	ErrReactionExists = errors.New("reaction already exists")
)

type ReactionRepository interface {
	Find(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error)
	Create(db *gorm.DB, kind models.ReactionKind, userID, articleID string) error
	Delete(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error)
	CountForArticle(db *gorm.DB, kind models.ReactionKind, articleID string) (int64, error)
	ListCollectedArticleIDs(db *gorm.DB, userID string) ([]string, error)
}

type ReactionRepositoryImpl struct{}

func NewReactionRepository() ReactionRepository {
	return &ReactionRepositoryImpl{}
}

// model возвращает пустую структуру нужной таблицы
func (r *ReactionRepositoryImpl) model(kind models.ReactionKind) interface{} {
	if kind == models.ReactionCollect {
		return &models.Collect{}
	}
	return &models.Like{}
}

func (r *ReactionRepositoryImpl) Find(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error) {
	var count int64
	err := db.Model(r.model(kind)).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReactionRepositoryImpl) Create(db *gorm.DB, kind models.ReactionKind, userID, articleID string) error {
	var err error
	if kind == models.ReactionCollect {
		err = db.Create(&models.Collect{UserID: userID, ArticleID: articleID}).Error
	} else {
		err = db.Create(&models.Like{UserID: userID, ArticleID: articleID}).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReactionExists
		}
		return err
	}
	return nil
}

// Delete удаляет строку реакции; возвращает false, если удалять было нечего
func (r *ReactionRepositoryImpl) Delete(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error) {
	result := db.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(r.model(kind))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReactionRepositoryImpl) CountForArticle(db *gorm.DB, kind models.ReactionKind, articleID string) (int64, error) {
	var count int64
	err := db.Model(r.model(kind)).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}

func (r *ReactionRepositoryImpl) ListCollectedArticleIDs(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Collect{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("article_id", &ids).Error
	return ids, err
}
