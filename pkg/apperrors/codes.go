package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Общие ошибки бизнес-логики (используются фабриками)
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Аутентификация и Авторизация (они сквозные)
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)

// Коды домена (активация, сообщество, медиа)
const (
	CodeWeakPassword           ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch       ErrorCode = "PASSWORD_MISMATCH"
	CodeActivationUserNotFound ErrorCode = "ACTIVATION_USER_NOT_FOUND"
	CodeArticleNotApproved     ErrorCode = "ARTICLE_NOT_APPROVED"
	CodeCommentTooLong         ErrorCode = "COMMENT_TOO_LONG"
	CodeCommentEmpty           ErrorCode = "COMMENT_EMPTY"
)
