package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/internal/model"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Patient), args.Error(1)
}

func (m *mockAccounts) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Patient)
	return p, args.Error(1)
}

func (m *mockAccounts) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*model.Patient)
	return p, args.Error(1)
}

func (m *mockAccounts) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAccounts) ListStaff(ctx context.Context) ([]*model.ClinicStaff, error) {
	panic("not used")
}

func (m *mockAccounts) CreateStaff(ctx context.Context, req *model.ClinicSignupRequest) (*model.ClinicStaff, error) {
	panic("not used")
}

func (m *mockAccounts) UpdateStaff(ctx context.Context, id uuid.UUID, req *model.UpdateStaffRequest) (*model.ClinicStaff, error) {
	panic("not used")
}

func (m *mockAccounts) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}

func (m *mockAccounts) ListAdmins(ctx context.Context) ([]*model.Administrator, error) {
	panic("not used")
}

func (m *mockAccounts) UpdateAdmin(ctx context.Context, id uuid.UUID, req *model.UpdateAdminRequest) (*model.Administrator, error) {
	panic("not used")
}

func (m *mockAccounts) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
}

func serve(t *testing.T, svc *mockAccounts, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	NewHandler(svc).RegisterRoutes(&r.RouterGroup)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListPatients(t *testing.T) {
	svc := new(mockAccounts)
	svc.On("ListPatients", mock.Anything).Return([]*model.Patient{
		{Name: "Asha", Email: "asha@example.com"},
		{Name: "Ravi", Email: "ravi@example.com"},
	}, nil)

	w, env := serve(t, svc, http.MethodGet, "/patients", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
	assert.Contains(t, string(env.Data), "ravi@example.com")
	assert.NotContains(t, string(env.Data), "password")
	svc.AssertExpectations(t)
}

func TestGetPatient_NotFound(t *testing.T) {
	id := uuid.New()
	svc := new(mockAccounts)
	svc.On("GetPatient", mock.Anything, id).Return(nil, apperrors.NotFound("Patient", nil))

	w, env := serve(t, svc, http.MethodGet, "/patients/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Patient not found", env.Message)
	svc.AssertExpectations(t)
}

func TestGetPatient_InvalidID(t *testing.T) {
	svc := new(mockAccounts)

	w, env := serve(t, svc, http.MethodGet, "/patients/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", env.Message)
	svc.AssertNotCalled(t, "GetPatient", mock.Anything, mock.Anything)
}

func TestUpdatePatient(t *testing.T) {
	id := uuid.New()
	svc := new(mockAccounts)
	svc.On("UpdatePatient", mock.Anything, id, mock.MatchedBy(func(req *model.UpdatePatientRequest) bool {
		return req.Area != nil && *req.Area == "Whitefield" && req.Name == nil
	})).Return(&model.Patient{Name: "Asha", Area: "Whitefield"}, nil)

	w, env := serve(t, svc, http.MethodPut, "/patients/"+id.String(), `{"area":"Whitefield"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient updated successfully", env.Message)
	assert.Contains(t, string(env.Data), "Whitefield")
	svc.AssertExpectations(t)
}

func TestUpdatePatient_BadEmail(t *testing.T) {
	svc := new(mockAccounts)

	w, env := serve(t, svc, http.MethodPut, "/patients/"+uuid.NewString(), `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	svc.AssertNotCalled(t, "UpdatePatient", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePatient(t *testing.T) {
	id := uuid.New()
	svc := new(mockAccounts)
	svc.On("DeletePatient", mock.Anything, id).Return(nil)

	w, env := serve(t, svc, http.MethodDelete, "/patients/"+id.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient deleted successfully", env.Message)
	svc.AssertExpectations(t)
}
