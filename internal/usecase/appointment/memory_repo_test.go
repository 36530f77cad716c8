package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// memoryRepo is an in-memory domain.Repository. WithSlotLock serializes on a
// single mutex, which is stricter than per-key locks but equivalent for tests.
type memoryRepo struct {
	slot sync.Mutex

	mu       sync.Mutex
	doctors  map[uuid.UUID]models.User
	patients map[uuid.UUID]models.Patient
	apps     map[uuid.UUID]models.Appointment
	writes   int
	lockKeys [][]string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		doctors:  map[uuid.UUID]models.User{},
		patients: map[uuid.UUID]models.Patient{},
		apps:     map[uuid.UUID]models.Appointment{},
	}
}

func (r *memoryRepo) addDoctor(name string) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.doctors[id] = models.User{ID: id, UserName: name, Role: models.RoleDoctor, Email: name + "@clinic.test"}
	return id
}

func (r *memoryRepo) addPatient(name string, birth time.Time) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.patients[id] = models.Patient{ID: id, PatientName: name, BirthDate: &birth, Gender: "female", Phone: "01000000000"}
	return id
}

func (r *memoryRepo) get(id uuid.UUID) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apps[id]
}

func (r *memoryRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *memoryRepo) GetDoctor(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &d, nil
}

func (r *memoryRepo) GetPatient(_ context.Context, id uuid.UUID) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &p, nil
}

func (r *memoryRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if p, ok := r.patients[ap.PatientID]; ok {
		ap.Patient = &p
	}
	return &ap, nil
}

func (r *memoryRepo) FindConflicting(_ context.Context, f domain.ConflictFilter) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.apps {
		switch {
		case domain.Status(ap.Status) == domain.StatusCancelled:
		case f.ExcludeID != nil && ap.ID == *f.ExcludeID:
		case f.DoctorID != nil && ap.DoctorID != *f.DoctorID:
		case f.PatientID != nil && ap.PatientID != *f.PatientID:
		case domain.Overlaps(ap.AppointmentDateTime, ap.AppointmentEndTime, f.Start, f.End):
			return &ap, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	stored := *ap
	stored.Patient, stored.Doctor = nil, nil
	r.apps[ap.ID] = stored
	r.writes++
	return nil
}

func (r *memoryRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.UpdatedAt = time.Now()
	stored := *ap
	stored.Patient, stored.Doctor = nil, nil
	r.apps[ap.ID] = stored
	r.writes++
	return nil
}

func (r *memoryRepo) ListAppointmentsForPeriod(
	_ context.Context,
	start, end time.Time,
	doctorID *uuid.UUID,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.apps {
		if ap.AppointmentDateTime.Before(start) || !ap.AppointmentDateTime.Before(end) {
			continue
		}
		if doctorID != nil && ap.DoctorID != *doctorID {
			continue
		}
		if p, ok := r.patients[ap.PatientID]; ok {
			ap.Patient = &p
		}
		if d, ok := r.doctors[ap.DoctorID]; ok {
			ap.Doctor = &d
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDateTime.Before(out[j].AppointmentDateTime)
	})
	return out, nil
}

func (r *memoryRepo) WithSlotLock(
	_ context.Context,
	keys []string,
	fn func(repo domain.Repository) error,
) error {
	r.slot.Lock()
	defer r.slot.Unlock()

	r.mu.Lock()
	r.lockKeys = append(r.lockKeys, keys)
	r.mu.Unlock()

	return fn(r)
}

var _ domain.Repository = (*memoryRepo)(nil)
