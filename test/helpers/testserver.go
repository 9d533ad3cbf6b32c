package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"babygrow_backend/internal/app"
	"babygrow_backend/internal/auth"
	"babygrow_backend/internal/config"
	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

// TestServer поднимает полный HTTP стек приложения над тестовой базой
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	EnsureTestConfig()
	db := OpenTestDB(t)

	// Копия конфига, чтобы параллельные серверы не делили каталог хранилища
	cfg := *config.AppConfig
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "http://127.0.0.1:8000/media"

	router := app.SetupRouter(&cfg, db)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

// TokenFor выписывает JWT для уже созданного пользователя,
// минуя логин через HTTP
func (ts *TestServer) TokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// SendRequest отправляет JSON-запрос и возвращает ответ вместе с телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
