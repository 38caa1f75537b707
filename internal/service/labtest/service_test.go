package labtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository/memory"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

func TestLabTestLifecycle(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().LabTests)
	ctx := context.Background()
	doctor := &model.Identity{ID: uuid.New(), Role: model.RoleClinic}
	nurse := &model.Identity{ID: uuid.New(), Role: model.RoleClinic}

	test, err := svc.Order(ctx, doctor, &model.OrderLabTestRequest{PatientID: uuid.New(), TestName: "CBC", TestType: "blood"})
	require.NoError(t, err)
	assert.Equal(t, model.LabTestStatusOrdered, test.Status)
	assert.Equal(t, doctor.ID, test.OrderedBy.UUID)

	collected, err := svc.CollectSample(ctx, nurse, test.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LabTestStatusSampleCollected, collected.Status)
	assert.Equal(t, nurse.ID, collected.SampleCollectedBy.UUID)
	require.NotNil(t, collected.SampleCollectedAt)

	done, err := svc.AddResults(ctx, test.ID, &model.LabResultsRequest{Results: "Hb 13.5", DoctorComments: "normal"})
	require.NoError(t, err)
	assert.Equal(t, model.LabTestStatusCompleted, done.Status)
	assert.Equal(t, "Hb 13.5", done.Results)
	require.NotNil(t, done.CompletedAt)
}

func TestListPending_ExcludesCompleted(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().LabTests)
	ctx := context.Background()
	base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	svc.now = func() time.Time { return base }
	older, err := svc.Order(ctx, nil, &model.OrderLabTestRequest{PatientID: uuid.New(), TestName: "CBC", TestType: "blood"})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Hour) }
	newer, err := svc.Order(ctx, nil, &model.OrderLabTestRequest{PatientID: uuid.New(), TestName: "Lipid", TestType: "blood"})
	require.NoError(t, err)

	done, err := svc.Order(ctx, nil, &model.OrderLabTestRequest{PatientID: uuid.New(), TestName: "TSH", TestType: "blood"})
	require.NoError(t, err)
	_, err = svc.AddResults(ctx, done.ID, &model.LabResultsRequest{Results: "2.1"})
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, newer.ID, pending[0].ID)
	assert.Equal(t, older.ID, pending[1].ID)
}

func TestCollect_MissingIsNotFound(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().LabTests)
	_, err := svc.CollectSample(context.Background(), nil, uuid.New())
	require.Error(t, err)
	assert.Equal(t, "Lab test not found", apperrors.As(err).PublicMessage())
}
