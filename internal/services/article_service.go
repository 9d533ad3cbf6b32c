package services

import (
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ArticleService interface {
	Create(db *gorm.DB, authorID string, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	Update(db *gorm.DB, authorID, articleID string, req *dto.UpdateArticleRequest) (*dto.ArticleResponse, error)
	Get(db *gorm.DB, articleID string) (*dto.ArticleResponse, error)
	ListApproved(db *gorm.DB, limit, offset int) ([]dto.ArticleResponse, int64, error)
	ListByAuthor(db *gorm.DB, authorID string, limit, offset int) ([]dto.ArticleResponse, int64, error)
	ListPending(db *gorm.DB, limit, offset int) ([]dto.ArticleResponse, int64, error)
	Moderate(db *gorm.DB, articleID string, req *dto.ModerateArticleRequest) error
	Delete(db *gorm.DB, authorID, articleID string, isAdmin bool) error
	ListCategories(db *gorm.DB) ([]models.Category, error)
}

type ArticleServiceImpl struct {
	articleRepo  repositories.ArticleRepository
	reactionRepo repositories.ReactionRepository
	commentRepo  repositories.CommentRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	reactionRepo repositories.ReactionRepository,
	commentRepo repositories.CommentRepository,
) ArticleService {
	return &ArticleServiceImpl{
		articleRepo:  articleRepo,
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
	}
}

// Create публикует статью в состоянии "на модерации"
func (s *ArticleServiceImpl) Create(db *gorm.DB, authorID string, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	categories, err := s.articleRepo.FindCategories(db, req.CategoryIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	tags, err := s.articleRepo.FindOrCreateTags(db, req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	article := &models.Article{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		State:      models.ArticlePending,
		Categories: categories,
		Tags:       tags,
	}

	if err := s.articleRepo.Create(db, article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildResponse(db, article), nil
}

// Update правит статью автора. Любая правка возвращает статью на модерацию.
func (s *ArticleServiceImpl) Update(db *gorm.DB, authorID, articleID string, req *dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := s.findArticle(db, articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != authorID {
		return nil, apperrors.NewForbiddenError("Cannot edit another user's article")
	}

	categories, err := s.articleRepo.FindCategories(db, req.CategoryIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	tags, err := s.articleRepo.FindOrCreateTags(db, req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	article.Title = req.Title
	article.Content = req.Content
	article.State = models.ArticlePending
	article.Categories = categories
	article.Tags = tags

	if err := s.articleRepo.Update(db, article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildResponse(db, article), nil
}

func (s *ArticleServiceImpl) Get(db *gorm.DB, articleID string) (*dto.ArticleResponse, error) {
	article, err := s.findArticle(db, articleID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(db, article), nil
}

func (s *ArticleServiceImpl) ListApproved(db *gorm.DB, limit, offset int) ([]dto.ArticleResponse, int64, error) {
	articles, total, err := s.articleRepo.ListApproved(db, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return s.buildResponses(db, articles), total, nil
}

func (s *ArticleServiceImpl) ListByAuthor(db *gorm.DB, authorID string, limit, offset int) ([]dto.ArticleResponse, int64, error) {
	articles, total, err := s.articleRepo.ListByAuthor(db, authorID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return s.buildResponses(db, articles), total, nil
}

func (s *ArticleServiceImpl) ListPending(db *gorm.DB, limit, offset int) ([]dto.ArticleResponse, int64, error) {
	articles, total, err := s.articleRepo.ListPending(db, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return s.buildResponses(db, articles), total, nil
}

// Moderate переводит статью в approved или rejected
func (s *ArticleServiceImpl) Moderate(db *gorm.DB, articleID string, req *dto.ModerateArticleRequest) error {
	if err := s.articleRepo.UpdateState(db, articleID, models.ArticleState(req.State)); err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ArticleServiceImpl) Delete(db *gorm.DB, authorID, articleID string, isAdmin bool) error {
	article, err := s.findArticle(db, articleID)
	if err != nil {
		return err
	}
	if !isAdmin && article.AuthorID != authorID {
		return apperrors.NewForbiddenError("Cannot delete another user's article")
	}

	if err := s.articleRepo.Delete(db, articleID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ArticleServiceImpl) ListCategories(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.articleRepo.ListCategories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *ArticleServiceImpl) findArticle(db *gorm.DB, articleID string) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(db, articleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *ArticleServiceImpl) buildResponse(db *gorm.DB, article *models.Article) *dto.ArticleResponse {
	resp := &dto.ArticleResponse{
		ID:        article.ID,
		Title:     article.Title,
		Content:   article.Content,
		State:     int(article.State),
		CreatedAt: article.CreatedAt,
	}
	if article.Author != nil {
		resp.AuthorName = article.Author.Username
	}
	for _, c := range article.Categories {
		resp.Categories = append(resp.Categories, c.Name)
	}
	for _, t := range article.Tags {
		resp.Tags = append(resp.Tags, t.Name)
	}

	// Счетчики читаются по месту: ответ строится на один запрос,
	// выделенных полей-агрегатов на статье нет
	if count, err := s.reactionRepo.CountForArticle(db, models.ReactionLike, article.ID); err == nil {
		resp.LikeCount = count
	}
	if count, err := s.reactionRepo.CountForArticle(db, models.ReactionCollect, article.ID); err == nil {
		resp.CollectCount = count
	}
	if count, err := s.commentRepo.CountForArticle(db, article.ID); err == nil {
		resp.CommentCount = count
	}

	return resp
}

func (s *ArticleServiceImpl) buildResponses(db *gorm.DB, articles []models.Article) []dto.ArticleResponse {
	result := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		result = append(result, *s.buildResponse(db, &articles[i]))
	}
	return result
}
