package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"babygrow_backend/internal/models"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, body string) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func TestLikeToggleEnvelope(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, ts.DB, user.ID, models.ArticleApproved)
	token := ts.TokenFor(t, user)

	path := fmt.Sprintf("/api/v1/articles/%s/like", article.ID)

	res, body := ts.SendRequest(t, "POST", path, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload := decodeBody(t, body)
	assert.Equal(t, float64(200), payload["code"])
	assert.Equal(t, float64(1), payload["status"])
	assert.Equal(t, "liked", payload["msg"])
	assert.Equal(t, float64(1), payload["count"])

	// Повторный запрос снимает лайк и возвращает счетчик назад
	res, body = ts.SendRequest(t, "POST", path, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload = decodeBody(t, body)
	assert.Equal(t, float64(0), payload["status"])
	assert.Equal(t, "like removed", payload["msg"])
	assert.Equal(t, float64(0), payload["count"])
}

func TestCollectToggleEnvelope(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, ts.DB, user.ID, models.ArticleApproved)
	token := ts.TokenFor(t, user)

	path := fmt.Sprintf("/api/v1/articles/%s/collect", article.ID)

	_, body := ts.SendRequest(t, "POST", path, token, nil)
	payload := decodeBody(t, body)
	assert.Equal(t, "collected", payload["msg"])

	_, body = ts.SendRequest(t, "POST", path, token, nil)
	payload = decodeBody(t, body)
	assert.Equal(t, "collect removed", payload["msg"])
}

func TestToggleRequiresAuth(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, ts.DB, user.ID, models.ArticleApproved)

	res, _ := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/articles/%s/like", article.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCommentEnvelopes(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, ts.DB, user.ID, models.ArticleApproved)
	token := ts.TokenFor(t, user)

	base := fmt.Sprintf("/api/v1/articles/%s/comments", article.ID)

	res, body := ts.SendRequest(t, "POST", base, token, map[string]interface{}{
		"content": "what a lovely post",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload := decodeBody(t, body)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, float64(1), payload["comment_count"])

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "what a lovely post", data["content"])

	commentID, ok := data["id"].(string)
	require.True(t, ok)

	// Удаление всегда отвечает 200, исход в поле code
	res, body = ts.SendRequest(t, "DELETE", base+"/"+commentID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload = decodeBody(t, body)
	assert.Equal(t, float64(0), payload["code"])
	assert.Equal(t, "deleted", payload["msg"])

	// Повторное удаление того же комментария
	res, body = ts.SendRequest(t, "DELETE", base+"/"+commentID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload = decodeBody(t, body)
	assert.Equal(t, float64(-1005), payload["code"])
}

func TestCommentErrorEnvelope(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "alice", "a@x.com", "secret1", true)
	pending := helpers.CreateArticle(t, ts.DB, user.ID, models.ArticlePending)
	token := ts.TokenFor(t, user)

	res, body := ts.SendRequest(t, "POST",
		fmt.Sprintf("/api/v1/articles/%s/comments", pending.ID), token,
		map[string]interface{}{"content": "hello"})

	assert.NotEqual(t, http.StatusOK, res.StatusCode)

	payload := decodeBody(t, body)
	assert.Equal(t, "error", payload["status"])
	assert.NotEmpty(t, payload["msg"])
}

func TestAuthFlowOverHTTP(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"username":         "newparent",
		"email":            "parent@example.com",
		"password":         "secret1",
		"password_confirm": "secret1",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Registration successful")

	// Без активации вход закрыт
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"login":    "newparent",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// После активации напрямую в базе логин проходит
	require.NoError(t, ts.DB.Model(&models.User{}).
		Where("username = ?", "newparent").
		Update("is_active", true).Error)

	res, body = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"login":    "newparent",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload := decodeBody(t, body)
	assert.NotEmpty(t, payload["access_token"])
}
