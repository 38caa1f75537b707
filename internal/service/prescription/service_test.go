package prescription

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository/memory"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

func newRequest() *model.CreatePrescriptionRequest {
	return &model.CreatePrescriptionRequest{
		PatientID: uuid.New(),
		Medications: []model.Medication{
			{DrugName: "Paracetamol", Dosage: "500mg", Frequency: "TID", Duration: "5 days"},
			{DrugName: "Cetirizine", Dosage: "10mg", Frequency: "OD", Duration: "3 days"},
		},
	}
}

func TestCreate_DoctorIsCaller(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Prescriptions)
	doctor := &model.Identity{ID: uuid.New(), Role: model.RoleClinic}

	p, err := svc.Create(context.Background(), doctor, newRequest())
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, p.DoctorID.UUID)
	assert.Equal(t, model.PrescriptionStatusActive, p.Status)
	require.Len(t, p.Medications, 2)
	assert.Equal(t, "Paracetamol", p.Medications[0].DrugName)
}

func TestCreate_AdminMustNameDoctor(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Prescriptions)
	admin := &model.Identity{ID: uuid.New(), Role: model.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, newRequest())
	require.Error(t, err)
	appErr := apperrors.As(err)
	assert.Equal(t, 400, appErr.StatusCode())
	assert.Equal(t, "Doctor ID is required for Admin entry", appErr.PublicMessage())

	req := newRequest()
	doctorID := uuid.New()
	req.DoctorID = &doctorID
	p, err := svc.Create(context.Background(), admin, req)
	require.NoError(t, err)
	assert.Equal(t, doctorID, p.DoctorID.UUID)
}

func TestRefillAndDelete(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Prescriptions)
	ctx := context.Background()

	p, err := svc.Create(ctx, nil, newRequest())
	require.NoError(t, err)

	refilled, err := svc.RequestRefill(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PrescriptionStatusRefillRequested, refilled.Status)

	require.NoError(t, svc.Delete(ctx, p.ID))

	err = svc.Delete(ctx, p.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.As(err).StatusCode())
	assert.Equal(t, "Prescription not found", apperrors.As(err).PublicMessage())
}

func TestListByPatient(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Prescriptions)
	ctx := context.Background()

	req := newRequest()
	_, err := svc.Create(ctx, nil, req)
	require.NoError(t, err)
	_, err = svc.Create(ctx, nil, newRequest())
	require.NoError(t, err)

	mine, err := svc.ListByPatient(ctx, req.PatientID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
