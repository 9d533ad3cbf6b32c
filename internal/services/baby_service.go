package services

import (
	"time"

	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BabyService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateBabyRequest) (*dto.BabyResponse, error)
	Update(db *gorm.DB, userID, babyID string, req *dto.UpdateBabyRequest) (*dto.BabyResponse, error)
	Get(db *gorm.DB, userID, babyID string) (*dto.BabyResponse, error)
	List(db *gorm.DB, userID string, limit, offset int) ([]dto.BabyResponse, int64, error)
	Delete(db *gorm.DB, userID, babyID string) error
	LinkParent(db *gorm.DB, userID, babyID string, req *dto.LinkParentRequest) error
	UnlinkParent(db *gorm.DB, userID, babyID, targetUserID string) error
}

type BabyServiceImpl struct {
	babyRepo repositories.BabyRepository
	userRepo repositories.UserRepository
}

func NewBabyService(babyRepo repositories.BabyRepository, userRepo repositories.UserRepository) BabyService {
	return &BabyServiceImpl{
		babyRepo: babyRepo,
		userRepo: userRepo,
	}
}

// validateBabyFields проверяет ограничения, которые не выражаются тегами
func validateBabyFields(birthday *time.Time, birthWeightKg *float64) error {
	if birthday != nil && birthday.After(time.Now()) {
		return apperrors.ValidationError(map[string]string{"birthday": "birthday cannot be in the future"})
	}
	if birthWeightKg != nil && *birthWeightKg > 20 {
		return apperrors.ValidationError(map[string]string{"birth_weight_kg": "birth weight cannot exceed 20 kg"})
	}
	return nil
}

// Create заводит профиль ребенка и привязывает создателя как родственника
func (s *BabyServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateBabyRequest) (*dto.BabyResponse, error) {
	if err := validateBabyFields(req.Birthday, req.BirthWeightKg); err != nil {
		return nil, err
	}

	baby := &models.Baby{
		Name:           req.Name,
		Nickname:       req.Nickname,
		Birthday:       req.Birthday,
		BirthWeightKg:  req.BirthWeightKg,
		BirthHeightCm:  req.BirthHeightCm,
		GestationalAge: req.GestationalAge,
		BloodType:      req.BloodType,
		Allergies:      req.Allergies,
		Notes:          req.Notes,
	}
	if req.Gender != "" {
		baby.Gender = models.BabyGender(req.Gender)
	}

	role := models.ParentRole(req.ParentRole)
	if role == "" {
		role = models.RoleOther
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.babyRepo.Create(tx, baby); err != nil {
			return err
		}
		return s.babyRepo.LinkParent(tx, &models.BabyParent{
			BabyID:    baby.ID,
			UserID:    userID,
			Role:      role,
			IsPrimary: true,
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return toBabyResponse(baby), nil
}

func (s *BabyServiceImpl) Update(db *gorm.DB, userID, babyID string, req *dto.UpdateBabyRequest) (*dto.BabyResponse, error) {
	if err := validateBabyFields(req.Birthday, req.BirthWeightKg); err != nil {
		return nil, err
	}

	baby, err := s.requireLinkedBaby(db, userID, babyID)
	if err != nil {
		return nil, err
	}

	baby.Name = req.Name
	baby.Nickname = req.Nickname
	baby.Birthday = req.Birthday
	baby.BirthWeightKg = req.BirthWeightKg
	baby.BirthHeightCm = req.BirthHeightCm
	baby.GestationalAge = req.GestationalAge
	baby.BloodType = req.BloodType
	baby.Allergies = req.Allergies
	baby.Notes = req.Notes
	if req.Gender != "" {
		baby.Gender = models.BabyGender(req.Gender)
	}

	if err := s.babyRepo.Update(db, baby); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return toBabyResponse(baby), nil
}

func (s *BabyServiceImpl) Get(db *gorm.DB, userID, babyID string) (*dto.BabyResponse, error) {
	baby, err := s.requireLinkedBaby(db, userID, babyID)
	if err != nil {
		return nil, err
	}
	return toBabyResponse(baby), nil
}

func (s *BabyServiceImpl) List(db *gorm.DB, userID string, limit, offset int) ([]dto.BabyResponse, int64, error) {
	babies, total, err := s.babyRepo.ListForUser(db, userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	result := make([]dto.BabyResponse, 0, len(babies))
	for i := range babies {
		result = append(result, *toBabyResponse(&babies[i]))
	}
	return result, total, nil
}

func (s *BabyServiceImpl) Delete(db *gorm.DB, userID, babyID string) error {
	link, err := s.requireLink(db, userID, babyID)
	if err != nil {
		return err
	}
	if !link.IsPrimary {
		return apperrors.NewForbiddenError("Only the primary parent can delete a baby profile")
	}

	if err := s.babyRepo.SoftDelete(db, babyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// LinkParent приглашает еще одного родственника к профилю ребенка
func (s *BabyServiceImpl) LinkParent(db *gorm.DB, userID, babyID string, req *dto.LinkParentRequest) error {
	if _, err := s.requireLink(db, userID, babyID); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	err := s.babyRepo.LinkParent(db, &models.BabyParent{
		BabyID:    babyID,
		UserID:    req.UserID,
		Role:      models.ParentRole(req.Role),
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BabyServiceImpl) UnlinkParent(db *gorm.DB, userID, babyID, targetUserID string) error {
	link, err := s.requireLink(db, userID, babyID)
	if err != nil {
		return err
	}
	if !link.IsPrimary && userID != targetUserID {
		return apperrors.NewForbiddenError("Only the primary parent can unlink other relatives")
	}

	if err := s.babyRepo.UnlinkParent(db, babyID, targetUserID); err != nil {
		if apperrors.Is(err, repositories.ErrParentLinkNotFound) {
			return apperrors.NotFound("Parent link")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BabyServiceImpl) requireLinkedBaby(db *gorm.DB, userID, babyID string) (*models.Baby, error) {
	if _, err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	baby, err := s.babyRepo.FindByID(db, babyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBabyNotFound) {
			return nil, apperrors.ErrBabyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return baby, nil
}

func (s *BabyServiceImpl) requireLink(db *gorm.DB, userID, babyID string) (*models.BabyParent, error) {
	if _, err := s.babyRepo.FindByID(db, babyID); err != nil {
		if apperrors.Is(err, repositories.ErrBabyNotFound) {
			return nil, apperrors.ErrBabyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	link, err := s.babyRepo.FindParentLink(db, babyID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrParentLinkNotFound) {
			return nil, apperrors.NewForbiddenError("Not a parent of this baby")
		}
		return nil, apperrors.InternalError(err)
	}
	return link, nil
}

func toBabyResponse(baby *models.Baby) *dto.BabyResponse {
	now := time.Now()
	return &dto.BabyResponse{
		ID:             baby.ID,
		Name:           baby.Name,
		Nickname:       baby.Nickname,
		Gender:         string(baby.Gender),
		Birthday:       baby.Birthday,
		AgeInDays:      baby.AgeInDays(now),
		AgeInMonths:    baby.AgeInMonths(now),
		BirthWeightKg:  baby.BirthWeightKg,
		BirthHeightCm:  baby.BirthHeightCm,
		GestationalAge: baby.GestationalAge,
		BloodType:      baby.BloodType,
		Allergies:      baby.Allergies,
		Avatar:         baby.Avatar,
		Notes:          baby.Notes,
	}
}
