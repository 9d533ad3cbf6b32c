package services

import (
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReactionService interface {
	// Toggle переключает реакцию: нет - создает, есть - удаляет.
	// Возвращает новое состояние и актуальный счетчик по статье.
	Toggle(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (*dto.ToggleResult, error)
	Status(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error)
	Count(db *gorm.DB, kind models.ReactionKind, articleID string) (int64, error)
	CollectedArticleIDs(db *gorm.DB, userID string) ([]string, error)
}

type ReactionServiceImpl struct {
	reactionRepo repositories.ReactionRepository
	articleRepo  repositories.ArticleRepository
	userRepo     repositories.UserRepository
}

func NewReactionService(
	reactionRepo repositories.ReactionRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
) ReactionService {
	return &ReactionServiceImpl{
		reactionRepo: reactionRepo,
		articleRepo:  articleRepo,
		userRepo:     userRepo,
	}
}

func (s *ReactionServiceImpl) Toggle(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (*dto.ToggleResult, error) {
	if err := s.requireApproved(db, articleID); err != nil {
		return nil, err
	}

	// Токен может пережить удаление аккаунта, висячая реакция не нужна
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.reactionRepo.Find(db, kind, userID, articleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var active bool
	if exists {
		// Повторное переключение снимает реакцию. Если параллельный
		// запрос уже удалил строку, итоговое состояние то же самое.
		if _, err := s.reactionRepo.Delete(db, kind, userID, articleID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		active = false
	} else {
		err := s.reactionRepo.Create(db, kind, userID, articleID)
		if err != nil && !apperrors.Is(err, repositories.ErrReactionExists) {
			// Гонка двух переключений: уникальный индекс уже сработал,
			// реакция стоит - это и есть желаемое состояние
			return nil, apperrors.InternalError(err)
		}
		active = true
	}

	count, err := s.reactionRepo.CountForArticle(db, kind, articleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ToggleResult{Active: active, Count: count}, nil
}

func (s *ReactionServiceImpl) Status(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error) {
	exists, err := s.reactionRepo.Find(db, kind, userID, articleID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return exists, nil
}

func (s *ReactionServiceImpl) Count(db *gorm.DB, kind models.ReactionKind, articleID string) (int64, error) {
	count, err := s.reactionRepo.CountForArticle(db, kind, articleID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *ReactionServiceImpl) CollectedArticleIDs(db *gorm.DB, userID string) ([]string, error) {
	ids, err := s.reactionRepo.ListCollectedArticleIDs(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ids, nil
}

func (s *ReactionServiceImpl) requireApproved(db *gorm.DB, articleID string) error {
	if _, err := s.articleRepo.FindApprovedByID(db, articleID); err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
