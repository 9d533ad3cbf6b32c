package services

import (
	"strings"

	"babygrow_backend/internal/logger"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// DeleteMode выбирает между скрытием строки и физическим удалением
type DeleteMode string

const (
	DeleteModeSoft DeleteMode = "soft"
	DeleteModeHard DeleteMode = "hard"
)

// AddCommentResult - созданный комментарий и счетчик после вставки
type AddCommentResult struct {
	Comment      *dto.CommentData
	CommentCount int64
}

type CommentService interface {
	Add(db *gorm.DB, userID, articleID string, req *dto.AddCommentRequest) (*AddCommentResult, error)
	Delete(db *gorm.DB, userID, articleID, commentID string, mode DeleteMode) error
	List(db *gorm.DB, articleID string) ([]dto.CommentResponse, int64, error)
}

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

// Add создает комментарий к одобренной статье
func (s *CommentServiceImpl) Add(db *gorm.DB, userID, articleID string, req *dto.AddCommentRequest) (*AddCommentResult, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrCommentEmpty
	}
	if len([]rune(content)) > models.CommentMaxLength {
		return nil, apperrors.ErrCommentTooLong
	}

	article, err := s.articleRepo.FindByID(db, articleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if article.State != models.ArticleApproved {
		return nil, apperrors.ErrArticleNotApproved
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   content,
		ParentID:  s.resolveParent(db, articleID, req.ParentID),
	}

	if err := s.commentRepo.Create(db, comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.commentRepo.CountForArticle(db, articleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &AddCommentResult{
		Comment: &dto.CommentData{
			ID:        comment.ID,
			Username:  user.Username,
			AvatarURL: user.Avatar,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		},
		CommentCount: count,
	}, nil
}

// Delete удаляет комментарий автора в рамках статьи.
// Soft режим скрывает строку, hard стирает ее физически.
func (s *CommentServiceImpl) Delete(db *gorm.DB, userID, articleID, commentID string, mode DeleteMode) error {
	comment, err := s.commentRepo.FindByID(db, commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}

	if comment.ArticleID != articleID {
		// Идентификатор чужой статьи трактуется как "не найдено",
		// чтобы не раскрывать существование комментария
		return apperrors.ErrCommentNotFound
	}
	if comment.UserID != userID {
		return apperrors.NewForbiddenError("Cannot delete another user's comment")
	}

	switch mode {
	case DeleteModeHard:
		err = s.commentRepo.HardDelete(db, commentID, articleID)
	default:
		err = s.commentRepo.SoftDelete(db, commentID, articleID)
	}

	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// List возвращает видимые комментарии статьи, новые первыми
func (s *CommentServiceImpl) List(db *gorm.DB, articleID string) ([]dto.CommentResponse, int64, error) {
	comments, err := s.commentRepo.ListForArticle(db, articleID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	count, err := s.commentRepo.CountForArticle(db, articleID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, *dto.NewCommentResponse(&comments[i]))
	}

	return result, count, nil
}

// resolveParent возвращает id родителя либо nil.
// Несуществующий или чужой родитель молча понижает комментарий
// до верхнего уровня, клиент ошибки не получает.
func (s *CommentServiceImpl) resolveParent(db *gorm.DB, articleID, parentID string) *string {
	if parentID == "" {
		return nil
	}

	parent, err := s.commentRepo.FindByID(db, parentID)
	if err != nil || parent.ArticleID != articleID {
		logger.Debug("Parent comment not usable, demoting to top level",
			"parent_id", parentID, "article_id", articleID)
		return nil
	}

	return &parent.ID
}
