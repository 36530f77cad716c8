package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsProduction() {
		level = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger: logger.New(&log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Constraint names are matched by the repository when translating
// violations into conflict errors.
const (
	DoctorNoOverlap  = "appointments_doctor_no_overlap"
	PatientNoOverlap = "appointments_patient_no_overlap"
)

// Migrate creates the schema and the exclusion constraints that keep
// non-cancelled slots of one doctor or one patient from overlapping.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Appointment{},
		&models.Examination{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for name, column := range map[string]string{
		DoctorNoOverlap:  "doctor_id",
		PatientNoOverlap: "patient_id",
	} {
		if err := db.Exec(exclusionSQL(name, column)).Error; err != nil {
			return fmt.Errorf("create constraint %s: %w", name, err)
		}
	}

	return nil
}

func exclusionSQL(name, column string) string {
	return fmt.Sprintf(`
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
		ALTER TABLE appointments
			ADD CONSTRAINT %[1]s
			EXCLUDE USING gist (
				%[2]s WITH =,
				tstzrange(appointment_date_time, appointment_end_time, '[)') WITH &&
			)
			WHERE (status <> 'Cancelled');
	END IF;
END
$$;`, name, column)
}
