package consultation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/repository/memory"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

func setup(t *testing.T) (*Service, repository.Store, *model.Appointment) {
	t.Helper()
	store := memory.NewStore().Repositories()
	apt := &model.Appointment{
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: model.NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		AppointmentTime: "10:00",
		Status:          model.AppointmentStatusScheduled,
		Type:            model.AppointmentTypeScheduled,
	}
	apt.Touch(time.Now().UTC())
	require.NoError(t, store.Appointments.Create(context.Background(), apt))
	return NewService(store.Consultations), store, apt
}

func TestConsultationLifecycleDrivesAppointment(t *testing.T) {
	svc, store, apt := setup(t)
	ctx := context.Background()
	doctor := &model.Identity{ID: apt.DoctorID, Role: model.RoleClinic}

	c, err := svc.Start(ctx, doctor, &model.CreateConsultationRequest{
		AppointmentID: apt.ID,
		PatientID:     apt.PatientID,
		Subjective:    "headache for three days",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusInProgress, c.Status)
	assert.Equal(t, apt.DoctorID, c.DoctorID.UUID)
	assert.NotNil(t, c.Diagnosis)

	got, err := store.Appointments.Get(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusInProgress, got.Status)

	completed := model.ConsultationStatusCompleted
	done, err := svc.Update(ctx, c.ID, &model.UpdateConsultationRequest{
		Status:    &completed,
		Diagnosis: []string{"tension headache"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, []string{"tension headache"}, []string(done.Diagnosis))

	got, err = store.Appointments.Get(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, got.Status)
}

func TestUpdate_NotesOnlyLeavesAppointment(t *testing.T) {
	svc, store, apt := setup(t)
	ctx := context.Background()

	c, err := svc.Start(ctx, nil, &model.CreateConsultationRequest{AppointmentID: apt.ID, PatientID: apt.PatientID})
	require.NoError(t, err)
	assert.False(t, c.DoctorID.Valid)

	plan := "rest and fluids"
	updated, err := svc.Update(ctx, c.ID, &model.UpdateConsultationRequest{
		Plan:            &plan,
		UploadedReports: []model.UploadedReport{{Filename: "cbc.pdf", URL: "https://files.example.com/cbc.pdf"}},
	})
	require.NoError(t, err)
	assert.Equal(t, plan, updated.Plan)
	assert.Nil(t, updated.CompletedAt)
	require.Len(t, updated.UploadedReports, 1)
	assert.False(t, updated.UploadedReports[0].UploadedAt.IsZero())

	got, err := store.Appointments.Get(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusInProgress, got.Status)
}

func TestGetByAppointment(t *testing.T) {
	svc, _, apt := setup(t)
	ctx := context.Background()

	_, err := svc.GetByAppointment(ctx, apt.ID)
	require.Error(t, err)
	assert.Equal(t, "Consultation not found", apperrors.As(err).PublicMessage())

	c, err := svc.Start(ctx, nil, &model.CreateConsultationRequest{AppointmentID: apt.ID, PatientID: apt.PatientID})
	require.NoError(t, err)

	found, err := svc.GetByAppointment(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
}

func TestUpdate_MissingIsNotFound(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateConsultationRequest{})
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.As(err).StatusCode())
}
