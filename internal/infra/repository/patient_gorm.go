package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) Create(ctx context.Context, p *models.Patient) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PatientGormRepository) Update(ctx context.Context, p *models.Patient) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *PatientGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return patient.ErrNotFound
	}
	return nil
}

func (r *PatientGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, patientErr(err)
	}
	return &p, nil
}

func (r *PatientGormRepository) GetByNationalID(ctx context.Context, nationalID string) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("national_id = ?", nationalID).
		First(&p).Error; err != nil {
		return nil, patientErr(err)
	}
	return &p, nil
}

func (r *PatientGormRepository) Search(
	ctx context.Context,
	keyword string,
	offset, limit int,
) ([]models.Patient, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Patient{})

	if kw := strings.TrimSpace(keyword); kw != "" {
		like := "%" + kw + "%"
		q = q.Where(
			"patient_name ILIKE ? OR national_id ILIKE ? OR phone ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Patient
	if err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func patientErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return patient.ErrNotFound
	}
	return err
}

var _ patient.Repository = (*PatientGormRepository)(nil)
