package services_test

import (
	"strings"
	"testing"

	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService() services.CommentService {
	return services.NewCommentService(
		repositories.NewCommentRepository(),
		repositories.NewArticleRepository(),
		repositories.NewUserRepository(),
	)
}

func TestAddCommentLength(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newCommentService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{Content: "   "})
		assert.ErrorIs(t, err, apperrors.ErrCommentEmpty)
	})

	t.Run("exactly 500 characters", func(t *testing.T) {
		result, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{
			Content: strings.Repeat("x", 500),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.CommentCount)
	})

	t.Run("501 characters", func(t *testing.T) {
		_, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{
			Content: strings.Repeat("x", 501),
		})
		assert.ErrorIs(t, err, apperrors.ErrCommentTooLong)
	})
}

func TestAddCommentArticleState(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newCommentService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	pending := helpers.CreateArticle(t, db, user.ID, models.ArticlePending)
	rejected := helpers.CreateArticle(t, db, user.ID, models.ArticleRejected)

	_, err := svc.Add(db, user.ID, pending.ID, &dto.AddCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrArticleNotApproved)

	_, err = svc.Add(db, user.ID, rejected.ID, &dto.AddCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrArticleNotApproved)

	_, err = svc.Add(db, user.ID, "00000000-0000-0000-0000-000000000000", &dto.AddCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

func TestAddCommentParentFallback(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newCommentService()
	commentRepo := repositories.NewCommentRepository()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)
	other := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	top, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{Content: "top level"})
	require.NoError(t, err)

	t.Run("valid parent kept", func(t *testing.T) {
		result, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{
			Content:  "reply",
			ParentID: top.Comment.ID,
		})
		require.NoError(t, err)

		stored, err := commentRepo.FindByID(db, result.Comment.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.ParentID)
		assert.Equal(t, top.Comment.ID, *stored.ParentID)
	})

	t.Run("unknown parent demoted", func(t *testing.T) {
		result, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{
			Content:  "orphan reply",
			ParentID: "00000000-0000-0000-0000-000000000000",
		})
		require.NoError(t, err)

		stored, err := commentRepo.FindByID(db, result.Comment.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.ParentID)
	})

	t.Run("parent from another article demoted", func(t *testing.T) {
		foreign, err := svc.Add(db, user.ID, other.ID, &dto.AddCommentRequest{Content: "elsewhere"})
		require.NoError(t, err)

		result, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{
			Content:  "cross reply",
			ParentID: foreign.Comment.ID,
		})
		require.NoError(t, err)

		stored, err := commentRepo.FindByID(db, result.Comment.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.ParentID)
	})
}

func TestDeleteCommentModes(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newCommentService()
	commentRepo := repositories.NewCommentRepository()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	soft, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{Content: "soft me"})
	require.NoError(t, err)
	hard, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{Content: "hard me"})
	require.NoError(t, err)

	// Soft: строка остается, но из выдачи и счетчика уходит
	require.NoError(t, svc.Delete(db, user.ID, article.ID, soft.Comment.ID, services.DeleteModeSoft))

	stored, err := commentRepo.FindByID(db, soft.Comment.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted)

	comments, count, err := svc.List(db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, comments, 1)
	assert.Equal(t, "hard me", comments[0].Content)

	// Повторное удаление скрытого комментария - не успех
	err = svc.Delete(db, user.ID, article.ID, soft.Comment.ID, services.DeleteModeSoft)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)

	// Hard: строки больше нет
	require.NoError(t, svc.Delete(db, user.ID, article.ID, hard.Comment.ID, services.DeleteModeHard))

	_, err = commentRepo.FindByID(db, hard.Comment.ID)
	assert.ErrorIs(t, err, repositories.ErrCommentNotFound)

	_, count, err = svc.List(db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCommentScoping(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newCommentService()

	alice := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	bob := helpers.CreateUser(t, db, "bob", "b@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, alice.ID, models.ArticleApproved)
	other := helpers.CreateArticle(t, db, alice.ID, models.ArticleApproved)

	comment, err := svc.Add(db, alice.ID, article.ID, &dto.AddCommentRequest{Content: "mine"})
	require.NoError(t, err)

	// Чужая статья в пути - комментарий "не найден"
	err = svc.Delete(db, alice.ID, other.ID, comment.Comment.ID, services.DeleteModeSoft)
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)

	// Чужой пользователь - запрещено
	err = svc.Delete(db, bob.ID, article.ID, comment.Comment.ID, services.DeleteModeSoft)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	// Автор - успех
	assert.NoError(t, svc.Delete(db, alice.ID, article.ID, comment.Comment.ID, services.DeleteModeSoft))
}

func TestListCommentsNewestFirst(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newCommentService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Add(db, user.ID, article.ID, &dto.AddCommentRequest{Content: content})
		require.NoError(t, err)
	}

	comments, count, err := svc.List(db, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, comments, 3)

	// Имя автора подтягивается в выдачу
	assert.Equal(t, "alice", comments[0].Username)
}
