package app

import (
	"fmt"
	"time"

	"babygrow_backend/internal/config"
	"babygrow_backend/internal/email"
	"babygrow_backend/internal/handlers"
	"babygrow_backend/internal/logger"
	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/routes"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/storage"
	"babygrow_backend/internal/token"
	"babygrow_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// TranslateError дает gorm.ErrDuplicatedKey вместо
		// сырых ошибок драйвера при нарушении уникальности
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate создает схему под все модели приложения
func AutoMigrate(db *gorm.DB) error {
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

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	codec, err := token.NewCodec([]byte(cfg.Token.SecretKey))
	if err != nil {
		logger.Fatal("Failed to initialize token codec", "error", err)
	}
	signer := token.NewSigner([]byte(cfg.Token.SigningKey), time.Duration(cfg.Token.ActivationTTL)*time.Second)

	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		}, email.NewTemplateManager())
	} else {
		logger.Warn("SMTP host is not configured, activation emails go to a mock provider")
		emailProvider = email.NewMockProvider()
	}

	return services.NewServiceContainer(cfg, codec, signer, emailProvider, storageInstance)
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
