package services

import (
	"fmt"
	"strings"

	"babygrow_backend/internal/auth"
	"babygrow_backend/internal/email"
	"babygrow_backend/internal/logger"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/internal/token"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Activate(db *gorm.DB, signedToken string) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
	// ActivationToken выпускает токен активации для пользователя.
	// Используется отдельно от Register для повторной отправки письма.
	ActivationToken(userID string) (string, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	codec         *token.Codec
	signer        *token.Signer
	emailProvider email.Provider
	baseURL       string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	codec *token.Codec,
	signer *token.Signer,
	emailProvider email.Provider,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		codec:         codec,
		signer:        signer,
		emailProvider: emailProvider,
		baseURL:       strings.TrimRight(baseURL, "/"),
	}
}

// Register - регистрация нового пользователя.
// Аккаунт создается неактивным, ссылка активации уходит на email.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.ErrPasswordMismatch
	}

	// Раздельная проверка занятости, чтобы вернуть точную причину
	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	}
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleParent,
		IsActive:     false,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Отправка письма не блокирует регистрацию: при сбое SMTP
	// аккаунт уже создан, ссылку можно запросить повторно
	s.sendActivationEmail(user)

	return dto.NewUserResponse(user), nil
}

// ActivationToken выпускает подписанный токен с зашифрованным id пользователя
func (s *AuthServiceImpl) ActivationToken(userID string) (string, error) {
	encrypted, err := s.codec.Encode(userID)
	if err != nil {
		return "", err
	}
	return s.signer.Issue(encrypted), nil
}

// Activate проверяет ссылку активации и включает аккаунт.
// Повторный переход по валидной ссылке не ошибка.
func (s *AuthServiceImpl) Activate(db *gorm.DB, signedToken string) error {
	encrypted, err := s.signer.Verify(signedToken, 0)
	if err != nil {
		if apperrors.Is(err, token.ErrTokenExpired) {
			return apperrors.ErrActivationTokenExpired
		}
		return apperrors.ErrActivationTokenInvalid
	}

	userID, err := s.codec.Decode(encrypted)
	if err != nil {
		return apperrors.ErrActivationTokenInvalid
	}

	if err := s.userRepo.Activate(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Токен валиден, но пользователь удален после регистрации
			return apperrors.ErrActivationUserNotFound
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login - аутентификация по username или email
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByLogin(db, req.Login)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserNotActive
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.NewUserResponse(user),
	}, nil
}

// ChangePassword - смена пароля с проверкой текущего
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = newHash
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) sendActivationEmail(user *models.User) {
	signedToken, err := s.ActivationToken(user.ID)
	if err != nil {
		logger.WithError(err).Error("Failed to issue activation token", "user_id", user.ID)
		return
	}

	activationURL := fmt.Sprintf("%s/api/v1/auth/activate/%s", s.baseURL, signedToken)

	if err := s.emailProvider.SendActivation(user.Email, user.Username, activationURL); err != nil {
		logger.WithError(err).Warn("Failed to send activation email", "user_id", user.ID)
	}
}
