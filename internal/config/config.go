package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	// Токен активации аккаунта: шифрование идентификатора + подпись с меткой времени
	Token struct {
		SecretKey     string `yaml:"secret_key"`     // 32 байта для AES-256
		SigningKey    string `yaml:"signing_key"`    // ключ HMAC подписи
		ActivationTTL int    `yaml:"activation_ttl"` // секунды, окно действия ссылки
		BaseURL       string `yaml:"base_url"`       // база для ссылки активации
	} `yaml:"token"`

	Storage struct {
		Type     string `yaml:"type"` // пока только local
		BasePath string `yaml:"base_path"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`           // байты на файл
		AllowedExtensions []string `yaml:"allowed_extensions"` // расширения изображений/видео
		ImageQuality      int      `yaml:"image_quality"`      // JPEG качество миниатюр
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию из config.yaml или,
// если задан DATABASE_URL, из переменных окружения (режим теста/CI).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment (test mode)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Token.SecretKey = os.Getenv("TOKEN_SECRET_KEY")
	cfg.Token.SigningKey = os.Getenv("TOKEN_SIGNING_KEY")

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@babygrow.test"
	cfg.Email.FromName = "BabyGrow"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults выставляет значения, которые почти никогда не переопределяют
func applyDefaults(cfg *Config) {
	if cfg.Token.ActivationTTL == 0 {
		cfg.Token.ActivationTTL = 360 // 6 минут
	}
	if cfg.Token.BaseURL == "" {
		cfg.Token.BaseURL = "http://127.0.0.1:8000"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MiB
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{
			".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp",
			".mp4", ".mov", ".avi",
		}
	}
	if cfg.Upload.ImageQuality == 0 {
		cfg.Upload.ImageQuality = 80
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
