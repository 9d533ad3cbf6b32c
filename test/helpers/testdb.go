package helpers

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"babygrow_backend/internal/auth"
	"babygrow_backend/internal/config"
	"babygrow_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter int64

// OpenTestDB открывает отдельную in-memory базу на тест
// и накатывает полную схему приложения.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	EnsureTestConfig()

	n := atomic.AddInt64(&dbCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Как в боевой сборке: уникальные конфликты видны
		// как gorm.ErrDuplicatedKey независимо от драйвера
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrateAll(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func migrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Baby{},
		&models.BabyParent{},
		&models.Record{},
		&models.Measurement{},
		&models.Vaccine{},
		&models.VaccineRecord{},
		&models.MilestoneType{},
		&models.Event{},
		&models.MedicationRecord{},
		&models.CheckupRecord{},
		&models.Photo{},
		&models.Article{},
		&models.Category{},
		&models.Tag{},
		&models.Like{},
		&models.Collect{},
		&models.Comment{},
	)
}

// EnsureTestConfig подставляет минимальную конфигурацию,
// чтобы код не пытался читать config.yaml из тестов.
func EnsureTestConfig() {
	if config.AppConfig != nil {
		return
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-jwt-secret"
	cfg.JWT.TTL = 60
	cfg.Token.SecretKey = "0123456789abcdef0123456789abcdef"
	cfg.Token.SigningKey = "test-signing-key"
	cfg.Token.ActivationTTL = 360
	cfg.Token.BaseURL = "http://127.0.0.1:8000"
	cfg.Upload.MaxSize = 5 * 1024 * 1024
	cfg.Upload.AllowedExtensions = []string{
		".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp",
		".mp4", ".mov", ".avi",
	}
	cfg.Upload.ImageQuality = 80
	config.AppConfig = cfg
}

// CreateUser создает пользователя с хешированным паролем
func CreateUser(t *testing.T, db *gorm.DB, username, email, password string, active bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleParent,
		IsActive:     active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateArticle создает статью в заданном состоянии модерации
func CreateArticle(t *testing.T, db *gorm.DB, authorID string, state models.ArticleState) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:    "test article",
		Content:  "test content",
		AuthorID: authorID,
		State:    state,
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return article
}

// CreateBaby создает профиль ребенка и связывает с ним пользователя
func CreateBaby(t *testing.T, db *gorm.DB, userID string) *models.Baby {
	t.Helper()

	birthday := time.Now().AddDate(-1, 0, 0)
	baby := &models.Baby{
		Name:     "test baby",
		Gender:   models.GenderUnknown,
		Birthday: &birthday,
	}
	if err := db.Create(baby).Error; err != nil {
		t.Fatalf("failed to create test baby: %v", err)
	}

	link := &models.BabyParent{
		BabyID:    baby.ID,
		UserID:    userID,
		Role:      models.RoleMother,
		IsPrimary: true,
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to link test parent: %v", err)
	}
	return baby
}
