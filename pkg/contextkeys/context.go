package contextkeys

// Используем кастомный тип, чтобы избежать коллизий ключей контекста
type contextKey string

// DBContextKey - ключ, по которому DBMiddleware (или тестовая транзакция)
// кладет *gorm.DB в контекст запроса
const DBContextKey = contextKey("db")
