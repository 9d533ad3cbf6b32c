package repositories

import (
	"errors"

	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Article, error)
	// FindApprovedByID находит статью только в состоянии "approved"
	FindApprovedByID(db *gorm.DB, id string) (*models.Article, error)
	Create(db *gorm.DB, article *models.Article) error
	Update(db *gorm.DB, article *models.Article) error
	UpdateState(db *gorm.DB, articleID string, state models.ArticleState) error
	Delete(db *gorm.DB, articleID string) error
	ListApproved(db *gorm.DB, limit, offset int) ([]models.Article, int64, error)
	ListByAuthor(db *gorm.DB, authorID string, limit, offset int) ([]models.Article, int64, error)
	ListPending(db *gorm.DB, limit, offset int) ([]models.Article, int64, error)

	ListCategories(db *gorm.DB) ([]models.Category, error)
	FindCategories(db *gorm.DB, ids []string) ([]models.Category, error)
	FindOrCreateTags(db *gorm.DB, names []string) ([]models.Tag, error)
}

type ArticleRepositoryImpl struct{}

func NewArticleRepository() ArticleRepository {
	return &ArticleRepositoryImpl{}
}

func (r *ArticleRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Article, error) {
	var article models.Article
	err := db.Preload("Author").Preload("Categories").Preload("Tags").
		First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) FindApprovedByID(db *gorm.DB, id string) (*models.Article, error) {
	var article models.Article
	err := db.First(&article, "id = ? AND state = ?", id, models.ArticleApproved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) Create(db *gorm.DB, article *models.Article) error {
	return db.Create(article).Error
}

func (r *ArticleRepositoryImpl) Update(db *gorm.DB, article *models.Article) error {
	return db.Session(&gorm.Session{FullSaveAssociations: true}).Save(article).Error
}

func (r *ArticleRepositoryImpl) UpdateState(db *gorm.DB, articleID string, state models.ArticleState) error {
	result := db.Model(&models.Article{}).Where("id = ?", articleID).Update("state", state)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepositoryImpl) Delete(db *gorm.DB, articleID string) error {
	return db.Delete(&models.Article{}, "id = ?", articleID).Error
}

func (r *ArticleRepositoryImpl) ListApproved(db *gorm.DB, limit, offset int) ([]models.Article, int64, error) {
	return r.list(db.Where("state = ?", models.ArticleApproved), limit, offset)
}

func (r *ArticleRepositoryImpl) ListByAuthor(db *gorm.DB, authorID string, limit, offset int) ([]models.Article, int64, error) {
	return r.list(db.Where("author_id = ?", authorID), limit, offset)
}

func (r *ArticleRepositoryImpl) ListPending(db *gorm.DB, limit, offset int) ([]models.Article, int64, error) {
	return r.list(db.Where("state = ?", models.ArticlePending), limit, offset)
}

func (r *ArticleRepositoryImpl) list(query *gorm.DB, limit, offset int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	if err := query.Model(&models.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").Preload("Categories").Preload("Tags").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&articles).Error
	return articles, total, err
}

func (r *ArticleRepositoryImpl) ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *ArticleRepositoryImpl) FindCategories(db *gorm.DB, ids []string) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

// FindOrCreateTags возвращает теги по именам, создавая отсутствующие
func (r *ArticleRepositoryImpl) FindOrCreateTags(db *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		var tag models.Tag
		err := db.Where("name = ?", name).
			FirstOrCreate(&tag, models.Tag{Name: name}).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
