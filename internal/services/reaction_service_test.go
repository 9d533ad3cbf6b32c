package services_test

import (
	"testing"

	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services"
	"babygrow_backend/pkg/apperrors"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReactionService() services.ReactionService {
	return services.NewReactionService(
		repositories.NewReactionRepository(),
		repositories.NewArticleRepository(),
		repositories.NewUserRepository(),
	)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	// Первое переключение ставит реакцию
	result, err := svc.Toggle(db, models.ReactionLike, user.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, int64(1), result.Count)

	// Второе снимает, счетчик возвращается к исходному
	result, err = svc.Toggle(db, models.ReactionLike, user.ID, article.ID)
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Equal(t, int64(0), result.Count)
}

func TestToggleKindsIndependent(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	_, err := svc.Toggle(db, models.ReactionLike, user.ID, article.ID)
	require.NoError(t, err)

	// Закладка не зависит от лайка
	collected, err := svc.Status(db, models.ReactionCollect, user.ID, article.ID)
	require.NoError(t, err)
	assert.False(t, collected)

	result, err := svc.Toggle(db, models.ReactionCollect, user.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, int64(1), result.Count)

	liked, err := svc.Status(db, models.ReactionLike, user.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleCountsPerArticle(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	alice := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	bob := helpers.CreateUser(t, db, "bob", "b@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, alice.ID, models.ArticleApproved)

	_, err := svc.Toggle(db, models.ReactionLike, alice.ID, article.ID)
	require.NoError(t, err)

	result, err := svc.Toggle(db, models.ReactionLike, bob.ID, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Count)

	// Снятие чужой реакции не затрагивает остальных
	result, err = svc.Toggle(db, models.ReactionLike, alice.ID, article.ID)
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Equal(t, int64(1), result.Count)
}

func TestToggleMissingArticle(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)

	_, err := svc.Toggle(db, models.ReactionLike, user.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

func TestToggleMissingUser(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	author := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, author.ID, models.ArticleApproved)

	// Токен мог пережить удаление аккаунта: висячая строка не создается
	_, err := svc.Toggle(db, models.ReactionLike, "00000000-0000-0000-0000-0000000000ff", article.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	count, err := svc.Count(db, models.ReactionLike, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleUnapprovedArticle(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	pending := helpers.CreateArticle(t, db, user.ID, models.ArticlePending)

	_, err := svc.Toggle(db, models.ReactionLike, user.ID, pending.ID)
	assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
}

func TestCollectedArticleIDs(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newReactionService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	first := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)
	second := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	_, err := svc.Toggle(db, models.ReactionCollect, user.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(db, models.ReactionCollect, user.ID, second.ID)
	require.NoError(t, err)

	ids, err := svc.CollectedArticleIDs(db, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

// racingReactionRepo имитирует проигранную гонку: Find еще не видит
// строку, а Create уже упирается в уникальный индекс
type racingReactionRepo struct {
	repositories.ReactionRepository
}

func (r *racingReactionRepo) Find(db *gorm.DB, kind models.ReactionKind, userID, articleID string) (bool, error) {
	return false, nil
}

func (r *racingReactionRepo) Create(db *gorm.DB, kind models.ReactionKind, userID, articleID string) error {
	return repositories.ErrReactionExists
}

func TestToggleInsertRaceIsBenign(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := services.NewReactionService(
		&racingReactionRepo{ReactionRepository: repositories.NewReactionRepository()},
		repositories.NewArticleRepository(),
		repositories.NewUserRepository(),
	)

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	article := helpers.CreateArticle(t, db, user.ID, models.ArticleApproved)

	result, err := svc.Toggle(db, models.ReactionLike, user.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, result.Active)
}
