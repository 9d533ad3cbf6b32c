package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок бизнес-логики:
активация аккаунта, сообщество (статьи/реакции/комментарии), медиа.
*/

// =========================================================================
// Фабричные функции (оборачивание ошибок репозиториев)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// NotFound создает ошибку "не найдено" для именованного ресурса
func NotFound(resource string) *AppError {
	return New(CodeNotFound, "resource", resource+" not found", http.StatusNotFound)
}

// =========================================================================
// Предопределенные переменные
// =========================================================================

var (
	// Аутентификация / сессии
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid username or password", http.StatusUnauthorized)
	ErrUserNotActive      = New(CodeForbidden, "auth", "Account is not activated", http.StatusForbidden)

	// Регистрация
	ErrUsernameAlreadyExists = New(CodeAlreadyExists, "registration", "Username already exists", http.StatusConflict)
	ErrEmailAlreadyExists    = New(CodeAlreadyExists, "registration", "Email already registered", http.StatusConflict)
	ErrWeakPassword          = New(CodeWeakPassword, "registration", "Password must be at least 6 characters", http.StatusBadRequest)
	ErrPasswordMismatch      = New(CodePasswordMismatch, "registration", "Password confirmation does not match", http.StatusBadRequest)

	// Активация аккаунта
	ErrActivationTokenExpired  = New(CodeTokenExpired, "activation", "Activation link has expired", http.StatusBadRequest)
	ErrActivationTokenInvalid  = New(CodeInvalidToken, "activation", "Activation link is invalid", http.StatusBadRequest)
	ErrActivationUserNotFound  = New(CodeActivationUserNotFound, "activation", "User for this activation link no longer exists", http.StatusNotFound)

	// Сообщество
	ErrArticleNotFound    = New(CodeNotFound, "community", "Article not found", http.StatusNotFound)
	ErrArticleNotApproved = New(CodeArticleNotApproved, "community", "Article is not approved for interaction", http.StatusNotFound)
	ErrCommentNotFound    = New(CodeNotFound, "community", "Comment not found", http.StatusNotFound)
	ErrCommentEmpty       = New(CodeCommentEmpty, "community", "Comment content must not be empty", http.StatusBadRequest)
	ErrCommentTooLong     = New(CodeCommentTooLong, "community", "Comment content exceeds 500 characters", http.StatusBadRequest)

	// Пользователи и семья
	ErrUserNotFound = New(CodeNotFound, "users", "User not found", http.StatusNotFound)
	ErrBabyNotFound = New(CodeNotFound, "babies", "Baby not found", http.StatusNotFound)
)
