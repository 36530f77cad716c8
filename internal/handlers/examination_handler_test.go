package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	examdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/examination"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucExamination "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/examination"
)

type stubExaminations struct {
	request   ucExamination.RequestExaminationInput
	record    ucExamination.RecordResultInput
	cancelled uuid.UUID
	filter    examdomain.Filter
	err       error
}

type examRequestFn struct{ s *stubExaminations }

func (f examRequestFn) Execute(_ context.Context, in ucExamination.RequestExaminationInput) (*models.Examination, error) {
	f.s.request = in
	if f.s.err != nil {
		return nil, f.s.err
	}
	return &models.Examination{ID: uuid.New(), PatientID: in.PatientID, RequestTo: in.RequestTo}, nil
}

type examRecordFn struct{ s *stubExaminations }

func (f examRecordFn) Execute(_ context.Context, in ucExamination.RecordResultInput) (*models.Examination, error) {
	f.s.record = in
	if f.s.err != nil {
		return nil, f.s.err
	}
	return &models.Examination{ID: in.ExaminationID, Status: "Completed"}, nil
}

type examCancelFn struct{ s *stubExaminations }

func (f examCancelFn) Execute(_ context.Context, id, _ uuid.UUID) (*models.Examination, error) {
	f.s.cancelled = id
	if f.s.err != nil {
		return nil, f.s.err
	}
	return &models.Examination{ID: id, Status: "Cancelled"}, nil
}

type examGetFn struct{ s *stubExaminations }

func (f examGetFn) Execute(_ context.Context, id uuid.UUID) (*models.Examination, error) {
	if f.s.err != nil {
		return nil, f.s.err
	}
	return &models.Examination{ID: id}, nil
}

func (s *stubExaminations) Execute(_ context.Context, f examdomain.Filter) ([]models.Examination, error) {
	s.filter = f
	return nil, s.err
}

func examinationRouter(role models.Role) (*gin.Engine, *stubExaminations) {
	s := &stubExaminations{}
	h := NewExaminationHandler(examRequestFn{s}, examRecordFn{s}, examCancelFn{s}, examGetFn{s}, s, zerolog.Nop())

	r := gin.New()
	r.Use(withActor(role))
	r.POST("/examinations", h.Request)
	r.GET("/examinations", h.Search)
	r.GET("/examinations/:id", h.Get)
	r.PUT("/examinations/:id/result", h.RecordResult)
	r.PATCH("/examinations/:id/cancel", h.Cancel)
	return r, s
}

func TestRequestExaminationHandler(t *testing.T) {
	r, s := examinationRouter(models.RoleDoctor)
	patient := uuid.New()

	w := do(r, http.MethodPost, "/examinations", gin.H{
		"patient_id":           patient.String(),
		"request_to":           "Radiology",
		"rad_examination_type": "X-Ray",
		"clinical_indications": gin.H{"chest_pain": true, "trauma": true},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, patient, s.request.PatientID)
	assert.Equal(t, actor, s.request.DoctorID)
	assert.True(t, s.request.Indications.ChestPain)
	assert.True(t, s.request.Indications.Trauma)
	assert.False(t, s.request.Indications.Cough)

	w = do(r, http.MethodPost, "/examinations", gin.H{
		"patient_id": patient.String(),
		"request_to": "Pharmacy",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.err = examdomain.ErrMissingIndications
	w = do(r, http.MethodPost, "/examinations", gin.H{
		"patient_id":           patient.String(),
		"request_to":           "Radiology",
		"rad_examination_type": "MRI",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_clinical_indications", errorCode(t, w))
}

func TestRecordResultHandler_UsesCallerDepartment(t *testing.T) {
	id := uuid.New()

	r, s := examinationRouter(models.RoleRadiology)
	w := do(r, http.MethodPut, "/examinations/"+id.String()+"/result", gin.H{
		"body_part":      "Chest",
		"response_notes": "PA and lateral",
		"findings":       []string{"clear lungs"},
		"impression":     "normal",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, s.record.ExaminationID)
	assert.Equal(t, examdomain.DepartmentRadiology, s.record.Department)
	assert.Equal(t, []string{"clear lungs"}, s.record.Result.Findings)
	assert.Equal(t, actor, s.record.ActorID)

	r, s = examinationRouter(models.RoleLaboratory)
	s.err = examdomain.ErrWrongDepartment
	w = do(r, http.MethodPut, "/examinations/"+id.String()+"/result", gin.H{})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "wrong_department", errorCode(t, w))
	assert.Equal(t, examdomain.DepartmentLab, s.record.Department)

	r, s = examinationRouter(models.RoleDoctor)
	w = do(r, http.MethodPut, "/examinations/"+id.String()+"/result", gin.H{})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, uuid.Nil, s.record.ExaminationID)
}

func TestCancelExaminationHandler(t *testing.T) {
	r, s := examinationRouter(models.RoleDoctor)
	id := uuid.New()

	w := do(r, http.MethodPatch, "/examinations/"+id.String()+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, s.cancelled)

	s.err = examdomain.ErrInvalidState
	w = do(r, http.MethodPatch, "/examinations/"+id.String()+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", errorCode(t, w))
}

func TestExaminationQueries(t *testing.T) {
	r, s := examinationRouter(models.RoleDoctor)

	w := do(r, http.MethodGet, "/examinations?keyword=mona&request_to=Lab&status=Requested", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
	assert.Equal(t, examdomain.Filter{
		Keyword: "mona", Department: examdomain.DepartmentLab, Status: examdomain.StatusRequested,
	}, s.filter)

	r, s = examinationRouter(models.RoleLaboratory)
	w = do(r, http.MethodGet, "/examinations?request_to=Radiology", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, examdomain.DepartmentLab, s.filter.Department)

	s.err = examdomain.ErrNotFound
	w = do(r, http.MethodGet, "/examinations/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "examination_not_found", errorCode(t, w))
}
