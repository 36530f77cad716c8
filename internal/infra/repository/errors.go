package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/staff"
)

const (
	sqlStateExclusion = "23P01"
	sqlStateUnique    = "23505"
	sqlStateFK        = "23503"
)

// translate maps driver errors onto domain errors. Errors it does not
// recognise are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case sqlStateExclusion:
		switch {
		case strings.Contains(pgErr.ConstraintName, "doctor"):
			return domain.ErrConflict(domain.ConflictDoctor)
		case strings.Contains(pgErr.ConstraintName, "patient"):
			return domain.ErrConflict(domain.ConflictPatient)
		}
	case sqlStateUnique:
		switch {
		case strings.Contains(pgErr.ConstraintName, "patients"):
			return patient.ErrPatientExists
		case strings.Contains(pgErr.ConstraintName, "users"):
			return staff.ErrUserExists
		}
	case sqlStateFK:
		if strings.Contains(pgErr.ConstraintName, "patient") {
			return patient.ErrHasRecords
		}
	}

	return err
}
