package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ExaminationGormRepository struct {
	db *gorm.DB
}

func NewExaminationGormRepository(db *gorm.DB) *ExaminationGormRepository {
	return &ExaminationGormRepository{db: db}
}

func (r *ExaminationGormRepository) GetPatient(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, examination.ErrPatientNotFound)
	}
	return &p, nil
}

func (r *ExaminationGormRepository) Create(ctx context.Context, ex *models.Examination) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(ex).Error)
}

func (r *ExaminationGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Examination, error) {
	var ex models.Examination
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&ex, "examinations.id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, examination.ErrNotFound)
	}
	return &ex, nil
}

func (r *ExaminationGormRepository) Search(ctx context.Context, f examination.Filter) ([]models.Examination, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Examination{}).
		Select("examinations.*").
		Joins("JOIN patients ON patients.id = examinations.patient_id")

	if f.Keyword != "" {
		like := "%" + f.Keyword + "%"
		q = q.Where(
			"patients.patient_name ILIKE ? OR patients.national_id ILIKE ? OR patients.phone ILIKE ?",
			like, like, like,
		)
	}
	if f.Department != "" {
		q = q.Where("examinations.request_to = ?", string(f.Department))
	}
	if f.Status != "" {
		q = q.Where("examinations.status = ?", string(f.Status))
	}

	var items []models.Examination
	if err := q.
		Preload("Patient").
		Preload("Doctor").
		Order("examinations.created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ExaminationGormRepository) ListCompletedForPatient(
	ctx context.Context,
	patientID uuid.UUID,
) ([]models.Examination, error) {

	var items []models.Examination
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ? AND status = ?", patientID, string(examination.StatusCompleted)).
		Order("result_responded_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Modify holds a row lock on the examination for the whole
// read-modify-write so concurrent results or cancels serialize.
func (r *ExaminationGormRepository) Modify(
	ctx context.Context,
	id uuid.UUID,
	fn func(ex *models.Examination) error,
) (*models.Examination, error) {

	var ex models.Examination
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ex, "id = ?", id).Error; err != nil {
			return notFoundAs(err, examination.ErrNotFound)
		}
		if err := fn(&ex); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&ex).Error
	})
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func notFoundAs(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return translate(err)
}

var _ examination.Repository = (*ExaminationGormRepository)(nil)
