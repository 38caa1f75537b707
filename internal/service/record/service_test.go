package record

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

func setup(t *testing.T) (*Service, *model.Patient) {
	t.Helper()
	store := memory.NewStore().Repositories()
	patient := &model.Patient{Name: "Meera", Email: "meera@example.com", PasswordHash: "x", Role: model.RolePatient}
	patient.Touch(time.Now().UTC())
	require.NoError(t, store.Patients.Create(context.Background(), patient))
	return NewService(store.PatientRecords, store.Patients), patient
}

func TestCreate_RequiresExistingPatient(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Create(context.Background(), nil, &model.CreatePatientRecordRequest{PatientID: uuid.New()})
	require.Error(t, err)
	appErr := apperrors.As(err)
	assert.Equal(t, 404, appErr.StatusCode())
	assert.Equal(t, "Patient not found", appErr.PublicMessage())
}

func TestCreateGetUpdate(t *testing.T) {
	svc, patient := setup(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, nil, &model.CreatePatientRecordRequest{
		PatientID:        patient.ID,
		BloodType:        "O+",
		EmergencyContact: &model.EmergencyContact{Name: "Arun", Phone: "999", Relation: "brother"},
	})
	require.NoError(t, err)
	assert.NotNil(t, rec.Allergies)

	got, err := svc.GetByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Arun", got.EmergencyContact.Name)

	history := "asthma"
	updated, err := svc.Update(ctx, rec.ID, &model.UpdatePatientRecordRequest{
		MedicalHistory: &history,
		Allergies:      []string{"penicillin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "asthma", updated.MedicalHistory)
	assert.Equal(t, []string{"penicillin"}, []string(updated.Allergies))
	assert.Equal(t, "O+", updated.BloodType)
}

func TestGetByPatient_Missing(t *testing.T) {
	svc, patient := setup(t)
	_, err := svc.GetByPatient(context.Background(), patient.ID)
	require.Error(t, err)
	assert.Equal(t, "Patient record not found", apperrors.As(err).PublicMessage())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
