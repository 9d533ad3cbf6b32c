package services_test

import (
	"testing"
	"time"

	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBabyService() services.BabyService {
	return services.NewBabyService(
		repositories.NewBabyRepository(),
		repositories.NewUserRepository(),
	)
}

func TestCreateBabyLinksCreator(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newBabyService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)

	// Первое число, чтобы вычитание месяцев не перескакивало через месяц
	now := time.Now()
	birthday := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -6, 0)
	baby, err := svc.Create(db, user.ID, &dto.CreateBabyRequest{
		Name:       "Mia",
		Gender:     "F",
		Birthday:   &birthday,
		ParentRole: "mother",
	})
	require.NoError(t, err)
	require.NotNil(t, baby.AgeInMonths)
	assert.Equal(t, 6, *baby.AgeInMonths)

	// Создатель привязывается сразу и видит профиль
	got, err := svc.Get(db, user.ID, baby.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mia", got.Name)

	babies, total, err := svc.List(db, user.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, babies, 1)
}

func TestCreateBabyFieldValidation(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newBabyService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)

	future := time.Now().AddDate(0, 0, 7)
	_, err := svc.Create(db, user.ID, &dto.CreateBabyRequest{
		Name:     "Mia",
		Birthday: &future,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	heavy := 25.0
	_, err = svc.Create(db, user.ID, &dto.CreateBabyRequest{
		Name:          "Mia",
		BirthWeightKg: &heavy,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestDeleteBabyPrimaryOnly(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newBabyService()

	primary := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	relative := helpers.CreateUser(t, db, "bob", "b@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, primary.ID)

	require.NoError(t, svc.LinkParent(db, primary.ID, baby.ID, &dto.LinkParentRequest{
		UserID: relative.ID,
		Role:   "father",
	}))

	err := svc.Delete(db, relative.ID, baby.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, svc.Delete(db, primary.ID, baby.ID))

	_, err = svc.Get(db, primary.ID, baby.ID)
	assert.ErrorIs(t, err, apperrors.ErrBabyNotFound)
}

func TestLinkAndUnlinkParent(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newBabyService()

	primary := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	relative := helpers.CreateUser(t, db, "bob", "b@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, primary.ID)

	// До привязки доступа нет
	_, err := svc.Get(db, relative.ID, baby.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, svc.LinkParent(db, primary.ID, baby.ID, &dto.LinkParentRequest{
		UserID: relative.ID,
		Role:   "grandpa",
	}))

	_, err = svc.Get(db, relative.ID, baby.ID)
	require.NoError(t, err)

	// Несуществующий пользователь не привязывается
	err = svc.LinkParent(db, primary.ID, baby.ID, &dto.LinkParentRequest{
		UserID: "00000000-0000-0000-0000-000000000000",
		Role:   "other",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Не-основной родственник может отвязать только себя
	err = svc.UnlinkParent(db, relative.ID, baby.ID, primary.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, svc.UnlinkParent(db, relative.ID, baby.ID, relative.ID))

	_, err = svc.Get(db, relative.ID, baby.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)
}
