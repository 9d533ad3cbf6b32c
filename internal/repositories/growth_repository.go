package repositories

import (
	"errors"

	"babygrow_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrVaccineNotFound = errors.New("vaccine not found")
)

// GrowthRepository хранит записи развития: дневник, замеры,
// прививки, вехи, лекарства и осмотры.
type GrowthRepository interface {
	CreateRecord(db *gorm.DB, record *models.Record) error
	ListRecords(db *gorm.DB, babyID string, category models.RecordCategory, limit, offset int) ([]models.Record, int64, error)
	DeleteRecord(db *gorm.DB, recordID, babyID string) error

	// UpsertMeasurement перезаписывает замер того же дня (инвариант "один на дату")
	UpsertMeasurement(db *gorm.DB, m *models.Measurement) error
	ListMeasurements(db *gorm.DB, babyID string) ([]models.Measurement, error)

	FindVaccine(db *gorm.DB, vaccineID string) (*models.Vaccine, error)
	ListVaccines(db *gorm.DB) ([]models.Vaccine, error)
	CreateVaccineRecord(db *gorm.DB, rec *models.VaccineRecord) error
	ListVaccineRecords(db *gorm.DB, babyID string) ([]models.VaccineRecord, error)

	CreateEvent(db *gorm.DB, event *models.Event) error
	ListEvents(db *gorm.DB, babyID string) ([]models.Event, error)
	ListMilestoneTypes(db *gorm.DB) ([]models.MilestoneType, error)

	CreateMedicationRecord(db *gorm.DB, rec *models.MedicationRecord) error
	ListMedicationRecords(db *gorm.DB, babyID string) ([]models.MedicationRecord, error)

	CreateCheckupRecord(db *gorm.DB, rec *models.CheckupRecord) error
	ListCheckupRecords(db *gorm.DB, babyID string) ([]models.CheckupRecord, error)
}

type GrowthRepositoryImpl struct{}

func NewGrowthRepository() GrowthRepository {
	return &GrowthRepositoryImpl{}
}

func (r *GrowthRepositoryImpl) CreateRecord(db *gorm.DB, record *models.Record) error {
	return db.Create(record).Error
}

func (r *GrowthRepositoryImpl) ListRecords(db *gorm.DB, babyID string, category models.RecordCategory, limit, offset int) ([]models.Record, int64, error) {
	query := db.Model(&models.Record{}).Where("baby_id = ?", babyID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Record
	err := query.Order("record_date DESC, created_at DESC").
		Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

func (r *GrowthRepositoryImpl) DeleteRecord(db *gorm.DB, recordID, babyID string) error {
	result := db.Where("id = ? AND baby_id = ?", recordID, babyID).Delete(&models.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *GrowthRepositoryImpl) UpsertMeasurement(db *gorm.DB, m *models.Measurement) error {
	var existing models.Measurement
	err := db.First(&existing, "baby_id = ? AND measure_date = ?", m.BabyID, m.MeasureDate).Error
	if err == nil {
		m.ID = existing.ID
		m.CreatedAt = existing.CreatedAt
		return db.Save(m).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(m).Error
}

func (r *GrowthRepositoryImpl) ListMeasurements(db *gorm.DB, babyID string) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := db.Where("baby_id = ?", babyID).
		Order("measure_date DESC").Find(&measurements).Error
	return measurements, err
}

func (r *GrowthRepositoryImpl) FindVaccine(db *gorm.DB, vaccineID string) (*models.Vaccine, error) {
	var vaccine models.Vaccine
	err := db.First(&vaccine, "id = ?", vaccineID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVaccineNotFound
		}
		return nil, err
	}
	return &vaccine, nil
}

func (r *GrowthRepositoryImpl) ListVaccines(db *gorm.DB) ([]models.Vaccine, error) {
	var vaccines []models.Vaccine
	err := db.Order("shot_age_days_start, name, dose").Find(&vaccines).Error
	return vaccines, err
}

func (r *GrowthRepositoryImpl) CreateVaccineRecord(db *gorm.DB, rec *models.VaccineRecord) error {
	return db.Create(rec).Error
}

func (r *GrowthRepositoryImpl) ListVaccineRecords(db *gorm.DB, babyID string) ([]models.VaccineRecord, error) {
	var records []models.VaccineRecord
	err := db.Preload("Vaccine").
		Where("baby_id = ?", babyID).
		Order("shot_date").Find(&records).Error
	return records, err
}

func (r *GrowthRepositoryImpl) CreateEvent(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

func (r *GrowthRepositoryImpl) ListEvents(db *gorm.DB, babyID string) ([]models.Event, error) {
	var events []models.Event
	err := db.Preload("Type").Preload("Photos").
		Where("baby_id = ?", babyID).
		Order("happen_date DESC").Find(&events).Error
	return events, err
}

func (r *GrowthRepositoryImpl) ListMilestoneTypes(db *gorm.DB) ([]models.MilestoneType, error) {
	var types []models.MilestoneType
	err := db.Order("name").Find(&types).Error
	return types, err
}

func (r *GrowthRepositoryImpl) CreateMedicationRecord(db *gorm.DB, rec *models.MedicationRecord) error {
	return db.Create(rec).Error
}

func (r *GrowthRepositoryImpl) ListMedicationRecords(db *gorm.DB, babyID string) ([]models.MedicationRecord, error) {
	var records []models.MedicationRecord
	err := db.Where("baby_id = ?", babyID).
		Order("administration_time DESC").Find(&records).Error
	return records, err
}

func (r *GrowthRepositoryImpl) CreateCheckupRecord(db *gorm.DB, rec *models.CheckupRecord) error {
	return db.Create(rec).Error
}

func (r *GrowthRepositoryImpl) ListCheckupRecords(db *gorm.DB, babyID string) ([]models.CheckupRecord, error) {
	var records []models.CheckupRecord
	err := db.Where("baby_id = ?", babyID).
		Order("checkup_date DESC").Find(&records).Error
	return records, err
}
