package services

import (
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// GrowthService собирает операции трекинга развития: дневник,
// замеры, прививки, вехи, лекарства и осмотры. Все операции
// требуют родственной связи пользователя с ребенком.
type GrowthService interface {
	CreateRecord(db *gorm.DB, userID, babyID string, req *dto.CreateRecordRequest) (*models.Record, error)
	ListRecords(db *gorm.DB, userID, babyID string, category models.RecordCategory, limit, offset int) ([]models.Record, int64, error)
	DeleteRecord(db *gorm.DB, userID, babyID, recordID string) error

	RecordMeasurement(db *gorm.DB, userID, babyID string, req *dto.CreateMeasurementRequest) (*models.Measurement, error)
	ListMeasurements(db *gorm.DB, userID, babyID string) ([]models.Measurement, error)

	RecordVaccine(db *gorm.DB, userID, babyID string, req *dto.CreateVaccineRecordRequest) (*models.VaccineRecord, error)
	ListVaccineRecords(db *gorm.DB, userID, babyID string) ([]models.VaccineRecord, error)
	ListVaccines(db *gorm.DB) ([]models.Vaccine, error)

	CreateEvent(db *gorm.DB, userID, babyID string, req *dto.CreateEventRequest) (*models.Event, error)
	ListEvents(db *gorm.DB, userID, babyID string) ([]models.Event, error)
	ListMilestoneTypes(db *gorm.DB) ([]models.MilestoneType, error)

	RecordMedication(db *gorm.DB, userID, babyID string, req *dto.CreateMedicationRequest) (*models.MedicationRecord, error)
	ListMedicationRecords(db *gorm.DB, userID, babyID string) ([]models.MedicationRecord, error)

	RecordCheckup(db *gorm.DB, userID, babyID string, req *dto.CreateCheckupRequest) (*models.CheckupRecord, error)
	ListCheckupRecords(db *gorm.DB, userID, babyID string) ([]models.CheckupRecord, error)
}

type GrowthServiceImpl struct {
	growthRepo repositories.GrowthRepository
	babyRepo   repositories.BabyRepository
}

func NewGrowthService(growthRepo repositories.GrowthRepository, babyRepo repositories.BabyRepository) GrowthService {
	return &GrowthServiceImpl{
		growthRepo: growthRepo,
		babyRepo:   babyRepo,
	}
}

func (s *GrowthServiceImpl) CreateRecord(db *gorm.DB, userID, babyID string, req *dto.CreateRecordRequest) (*models.Record, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	record := &models.Record{
		BabyID:        babyID,
		AuthorID:      userID,
		Title:         req.Title,
		Content:       req.Content,
		VoicePath:     req.VoicePath,
		VoiceDuration: req.VoiceDuration,
		RecordDate:    req.RecordDate,
	}
	if req.Category != "" {
		record.Category = models.RecordCategory(req.Category)
	}
	if req.RecordType != "" {
		record.RecordType = models.RecordType(req.RecordType)
	}

	if err := s.growthRepo.CreateRecord(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *GrowthServiceImpl) ListRecords(db *gorm.DB, userID, babyID string, category models.RecordCategory, limit, offset int) ([]models.Record, int64, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, 0, err
	}

	records, total, err := s.growthRepo.ListRecords(db, babyID, category, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return records, total, nil
}

func (s *GrowthServiceImpl) DeleteRecord(db *gorm.DB, userID, babyID, recordID string) error {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return err
	}

	if err := s.growthRepo.DeleteRecord(db, recordID, babyID); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NotFound("Record")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// RecordMeasurement сохраняет замер. Повторный замер за ту же дату
// замещает предыдущий, история дат остается уникальной.
func (s *GrowthServiceImpl) RecordMeasurement(db *gorm.DB, userID, babyID string, req *dto.CreateMeasurementRequest) (*models.Measurement, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	m := &models.Measurement{
		BabyID:             babyID,
		MeasureDate:        req.MeasureDate,
		HeightCm:           req.HeightCm,
		WeightKg:           req.WeightKg,
		HeadCircumference:  req.HeadCircumference,
		ChestCircumference: req.ChestCircumference,
		MeasuredByID:       userID,
		Notes:              req.Notes,
	}

	if err := s.growthRepo.UpsertMeasurement(db, m); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return m, nil
}

func (s *GrowthServiceImpl) ListMeasurements(db *gorm.DB, userID, babyID string) ([]models.Measurement, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	measurements, err := s.growthRepo.ListMeasurements(db, babyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return measurements, nil
}

func (s *GrowthServiceImpl) RecordVaccine(db *gorm.DB, userID, babyID string, req *dto.CreateVaccineRecordRequest) (*models.VaccineRecord, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	if _, err := s.growthRepo.FindVaccine(db, req.VaccineID); err != nil {
		if apperrors.Is(err, repositories.ErrVaccineNotFound) {
			return nil, apperrors.NotFound("Vaccine")
		}
		return nil, apperrors.InternalError(err)
	}

	rec := &models.VaccineRecord{
		BabyID:       babyID,
		VaccineID:    req.VaccineID,
		ShotDate:     req.ShotDate,
		BatchNumber:  req.BatchNumber,
		Hospital:     req.Hospital,
		Doctor:       req.Doctor,
		Reaction:     req.Reaction,
		NextShotDate: req.NextShotDate,
		CreatedByID:  userID,
	}

	if err := s.growthRepo.CreateVaccineRecord(db, rec); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rec, nil
}

func (s *GrowthServiceImpl) ListVaccineRecords(db *gorm.DB, userID, babyID string) ([]models.VaccineRecord, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	records, err := s.growthRepo.ListVaccineRecords(db, babyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *GrowthServiceImpl) ListVaccines(db *gorm.DB) ([]models.Vaccine, error) {
	vaccines, err := s.growthRepo.ListVaccines(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vaccines, nil
}

func (s *GrowthServiceImpl) CreateEvent(db *gorm.DB, userID, babyID string, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	event := &models.Event{
		BabyID:      babyID,
		Title:       req.Title,
		HappenDate:  req.HappenDate,
		Description: req.Description,
		CreatedByID: userID,
	}
	if req.TypeID != "" {
		event.TypeID = &req.TypeID
	}
	for _, photoID := range req.PhotoIDs {
		event.Photos = append(event.Photos, models.Photo{BaseModel: models.BaseModel{ID: photoID}})
	}

	if err := s.growthRepo.CreateEvent(db, event); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

func (s *GrowthServiceImpl) ListEvents(db *gorm.DB, userID, babyID string) ([]models.Event, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	events, err := s.growthRepo.ListEvents(db, babyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return events, nil
}

func (s *GrowthServiceImpl) ListMilestoneTypes(db *gorm.DB) ([]models.MilestoneType, error) {
	types, err := s.growthRepo.ListMilestoneTypes(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return types, nil
}

func (s *GrowthServiceImpl) RecordMedication(db *gorm.DB, userID, babyID string, req *dto.CreateMedicationRequest) (*models.MedicationRecord, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	rec := &models.MedicationRecord{
		BabyID:             babyID,
		Disease:            req.Disease,
		MedicineName:       req.MedicineName,
		Dosage:             req.Dosage,
		Frequency:          req.Frequency,
		AdministrationTime: req.AdministrationTime,
		Route:              req.Route,
		DoctorAdvice:       req.DoctorAdvice,
		Notes:              req.Notes,
		CreatedByID:        userID,
	}

	if err := s.growthRepo.CreateMedicationRecord(db, rec); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rec, nil
}

func (s *GrowthServiceImpl) ListMedicationRecords(db *gorm.DB, userID, babyID string) ([]models.MedicationRecord, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	records, err := s.growthRepo.ListMedicationRecords(db, babyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *GrowthServiceImpl) RecordCheckup(db *gorm.DB, userID, babyID string, req *dto.CreateCheckupRequest) (*models.CheckupRecord, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	rec := &models.CheckupRecord{
		BabyID:          babyID,
		CheckupDate:     req.CheckupDate,
		Institution:     req.Institution,
		Doctor:          req.Doctor,
		Summary:         req.Summary,
		Details:         req.Details,
		Suggestions:     req.Suggestions,
		NextCheckupDate: req.NextCheckupDate,
		CreatedByID:     userID,
	}

	if err := s.growthRepo.CreateCheckupRecord(db, rec); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rec, nil
}

func (s *GrowthServiceImpl) ListCheckupRecords(db *gorm.DB, userID, babyID string) ([]models.CheckupRecord, error) {
	if err := s.requireLink(db, userID, babyID); err != nil {
		return nil, err
	}

	records, err := s.growthRepo.ListCheckupRecords(db, babyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *GrowthServiceImpl) requireLink(db *gorm.DB, userID, babyID string) error {
	if _, err := s.babyRepo.FindByID(db, babyID); err != nil {
		if apperrors.Is(err, repositories.ErrBabyNotFound) {
			return apperrors.ErrBabyNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.babyRepo.FindParentLink(db, babyID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrParentLinkNotFound) {
			return apperrors.NewForbiddenError("Not a parent of this baby")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
