package services_test

import (
	"testing"
	"time"

	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrowthService() services.GrowthService {
	return services.NewGrowthService(
		repositories.NewGrowthRepository(),
		repositories.NewBabyRepository(),
	)
}

func TestMeasurementSameDayReplaces(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newGrowthService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.RecordMeasurement(db, user.ID, baby.ID, &dto.CreateMeasurementRequest{
		MeasureDate: day,
		HeightCm:    70.5,
		WeightKg:    8.2,
	})
	require.NoError(t, err)

	// Тот же день - замер перезаписывается, а не дублируется
	_, err = svc.RecordMeasurement(db, user.ID, baby.ID, &dto.CreateMeasurementRequest{
		MeasureDate: day,
		HeightCm:    71.0,
		WeightKg:    8.4,
	})
	require.NoError(t, err)

	measurements, err := svc.ListMeasurements(db, user.ID, baby.ID)
	require.NoError(t, err)
	require.Len(t, measurements, 1)
	assert.Equal(t, 71.0, measurements[0].HeightCm)
	assert.Equal(t, 8.4, measurements[0].WeightKg)

	// Другой день добавляет новую строку
	_, err = svc.RecordMeasurement(db, user.ID, baby.ID, &dto.CreateMeasurementRequest{
		MeasureDate: day.AddDate(0, 0, 1),
		HeightCm:    71.2,
		WeightKg:    8.5,
	})
	require.NoError(t, err)

	measurements, err = svc.ListMeasurements(db, user.ID, baby.ID)
	require.NoError(t, err)
	assert.Len(t, measurements, 2)
}

func TestRecordsByCategory(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newGrowthService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	for _, category := range []string{"daily", "daily", "health"} {
		_, err := svc.CreateRecord(db, user.ID, baby.ID, &dto.CreateRecordRequest{
			Title:      "note",
			Content:    "slept well",
			Category:   category,
			RecordDate: time.Now(),
		})
		require.NoError(t, err)
	}

	daily, total, err := svc.ListRecords(db, user.ID, baby.ID, models.RecordDaily, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, daily, 2)

	all, total, err := svc.ListRecords(db, user.ID, baby.ID, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

func TestDeleteRecordScopedToBaby(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newGrowthService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)
	otherBaby := helpers.CreateBaby(t, db, user.ID)

	record, err := svc.CreateRecord(db, user.ID, baby.ID, &dto.CreateRecordRequest{
		Title:      "note",
		Content:    "first tooth",
		RecordDate: time.Now(),
	})
	require.NoError(t, err)

	err = svc.DeleteRecord(db, user.ID, otherBaby.ID, record.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	require.NoError(t, svc.DeleteRecord(db, user.ID, baby.ID, record.ID))
}

func TestVaccineRecordValidatesVaccine(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newGrowthService()

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, user.ID)

	vaccine := &models.Vaccine{Name: "BCG", Code: "bcg", Dose: 1}
	require.NoError(t, db.Create(vaccine).Error)

	_, err := svc.RecordVaccine(db, user.ID, baby.ID, &dto.CreateVaccineRecordRequest{
		VaccineID: "00000000-0000-0000-0000-000000000000",
		ShotDate:  time.Now(),
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	rec, err := svc.RecordVaccine(db, user.ID, baby.ID, &dto.CreateVaccineRecordRequest{
		VaccineID: vaccine.ID,
		ShotDate:  time.Now(),
	})
	require.NoError(t, err)

	records, err := svc.ListVaccineRecords(db, user.ID, baby.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
}

func TestGrowthRequiresParentLink(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newGrowthService()

	parent := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)
	stranger := helpers.CreateUser(t, db, "bob", "b@x.com", "secret1", true)
	baby := helpers.CreateBaby(t, db, parent.ID)

	_, err := svc.RecordMeasurement(db, stranger.ID, baby.ID, &dto.CreateMeasurementRequest{
		MeasureDate: time.Now(),
		HeightCm:    70,
		WeightKg:    8,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)
}
