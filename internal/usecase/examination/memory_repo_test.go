package examination

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// memoryRepo is an in-memory domain.Repository. Modify holds the mutex for
// the whole read-modify-write, like the row lock it stands in for.
type memoryRepo struct {
	mu       sync.Mutex
	patients map[uuid.UUID]models.Patient
	exams    map[uuid.UUID]models.Examination
	seq      int
	writes   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		patients: map[uuid.UUID]models.Patient{},
		exams:    map[uuid.UUID]models.Examination{},
	}
}

func (r *memoryRepo) addPatient(name, nationalID, phone string) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.patients[id] = models.Patient{ID: id, PatientName: name, NationalID: nationalID, Phone: phone}
	return id
}

func (r *memoryRepo) GetPatient(_ context.Context, id uuid.UUID) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	return &p, nil
}

func (r *memoryRepo) Create(_ context.Context, ex *models.Examination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex.ID = uuid.New()
	r.seq++
	ex.CreatedAt = time.Date(2030, 1, 1, 0, 0, r.seq, 0, time.UTC)
	r.exams[ex.ID] = *ex
	r.writes++
	return nil
}

func (r *memoryRepo) withPatient(ex models.Examination) models.Examination {
	if p, ok := r.patients[ex.PatientID]; ok {
		ex.Patient = &p
	}
	return ex
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Examination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.exams[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ex = r.withPatient(ex)
	return &ex, nil
}

func (r *memoryRepo) Search(_ context.Context, f domain.Filter) ([]models.Examination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kw := strings.ToLower(f.Keyword)
	var out []models.Examination
	for _, ex := range r.exams {
		if f.Department != "" && ex.RequestTo != string(f.Department) {
			continue
		}
		if f.Status != "" && ex.Status != string(f.Status) {
			continue
		}
		p := r.patients[ex.PatientID]
		if kw != "" &&
			!strings.Contains(strings.ToLower(p.PatientName), kw) &&
			!strings.Contains(p.NationalID, kw) &&
			!strings.Contains(p.Phone, kw) {
			continue
		}
		out = append(out, r.withPatient(ex))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryRepo) ListCompletedForPatient(ctx context.Context, patientID uuid.UUID) ([]models.Examination, error) {
	all, err := r.Search(ctx, domain.Filter{Status: domain.StatusCompleted})
	if err != nil {
		return nil, err
	}
	var out []models.Examination
	for _, ex := range all {
		if ex.PatientID == patientID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (r *memoryRepo) Modify(_ context.Context, id uuid.UUID, fn func(ex *models.Examination) error) (*models.Examination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.exams[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := fn(&ex); err != nil {
		return nil, err
	}
	r.exams[id] = ex
	r.writes++
	return &ex, nil
}

func (r *memoryRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

var _ domain.Repository = (*memoryRepo)(nil)
