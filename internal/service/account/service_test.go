package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository/memory"
	"github.com/healthone/clinic-api/internal/service/credential"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
	"github.com/healthone/clinic-api/pkg/security"
)

func setup(t *testing.T) (*Service, *credential.Service) {
	t.Helper()
	store := memory.NewStore().Repositories()
	creds := credential.NewService(store, security.NewBcryptHasher(bcrypt.MinCost))
	return NewService(store, creds), creds
}

func strPtr(s string) *string { return &s }

func nurseRequest(email, registration string) *model.ClinicSignupRequest {
	return &model.ClinicSignupRequest{
		ClinicName:               "City Clinic",
		UserName:                 "nurse.joy",
		ContactName:              "Joy",
		Email:                    email,
		Password:                 "secret1",
		ClinicRegistrationNumber: registration,
		UserType:                 model.SubRoleNurse,
		NUID:                     "NU-77",
	}
}

func TestUpdatePatient_RehashesPassword(t *testing.T) {
	svc, creds := setup(t)
	ctx := context.Background()

	patient, err := creds.CreatePatient(ctx, model.PatientSignupRequest{
		Name: "Ravi", Email: "ravi@example.com", Password: "secret1", PhoneNumber: "1", Area: "North",
	})
	require.NoError(t, err)
	oldHash := patient.PasswordHash

	updated, err := svc.UpdatePatient(ctx, patient.ID, &model.UpdatePatientRequest{
		Email:    strPtr(" RAVI.K@Example.com"),
		Password: strPtr("newsecret"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi.k@example.com", updated.Email)
	assert.NotEqual(t, oldHash, updated.PasswordHash)
	assert.NotEqual(t, "newsecret", updated.PasswordHash)
	assert.True(t, creds.Verify(updated, "newsecret"))
}

func TestUpdatePatient_ShortPassword(t *testing.T) {
	svc, creds := setup(t)
	ctx := context.Background()

	patient, err := creds.CreatePatient(ctx, model.PatientSignupRequest{
		Name: "Ravi", Email: "ravi@example.com", Password: "secret1", PhoneNumber: "1", Area: "North",
	})
	require.NoError(t, err)

	_, err = svc.UpdatePatient(ctx, patient.ID, &model.UpdatePatientRequest{Password: strPtr("123")})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		del     func() error
		message string
	}{
		{"patient", func() error { return svc.DeletePatient(ctx, uuid.New()) }, "Patient not found"},
		{"staff", func() error { return svc.DeleteStaff(ctx, uuid.New()) }, "User not found"},
		{"admin", func() error { return svc.DeleteAdmin(ctx, uuid.New()) }, "Admin not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.del()
			require.Error(t, err)
			appErr := apperrors.As(err)
			assert.Equal(t, 404, appErr.StatusCode())
			assert.Equal(t, tt.message, appErr.PublicMessage())
		})
	}
}

func TestCreateStaff_RejectsReusedRegistrationNumber(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, nurseRequest("joy@example.com", "REG-7"))
	require.NoError(t, err)
	assert.Equal(t, model.SubRoleNurse, staff.SubRole())

	_, err = svc.CreateStaff(ctx, nurseRequest("other@example.com", "REG-7"))
	require.Error(t, err)
	assert.Equal(t, "User with this email or registration number already exists", apperrors.As(err).PublicMessage())
}

func TestUpdateStaff_SubRoleChangeNeedsLicense(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, nurseRequest("joy@example.com", "REG-7"))
	require.NoError(t, err)

	doctor := model.SubRoleDoctor
	_, err = svc.UpdateStaff(ctx, staff.ID, &model.UpdateStaffRequest{UserType: &doctor})
	require.Error(t, err)
	assert.Equal(t, "NMR Number is required for doctors", apperrors.As(err).PublicMessage())

	updated, err := svc.UpdateStaff(ctx, staff.ID, &model.UpdateStaffRequest{UserType: &doctor, NMRNumber: strPtr("NMR-1")})
	require.NoError(t, err)
	assert.Equal(t, model.DoctorLicense{NMRNumber: "NMR-1"}, updated.License)
}

func TestListAdmins_NewestFirst(t *testing.T) {
	svc, creds := setup(t)
	ctx := context.Background()

	first, err := creds.CreateAdmin(ctx, model.AdminSignupRequest{Name: "A", Email: "a@example.com", Password: "secret1", CompanyName: "H1", CompanyID: "C-1"})
	require.NoError(t, err)
	second, err := creds.CreateAdmin(ctx, model.AdminSignupRequest{Name: "B", Email: "b@example.com", Password: "secret1", CompanyName: "H1", CompanyID: "C-2"})
	require.NoError(t, err)

	admins, err := svc.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	if second.CreatedAt.After(first.CreatedAt) {
		assert.Equal(t, second.ID, admins[0].ID)
	}
}

func TestUpdateAdmin_DuplicateEmail(t *testing.T) {
	svc, creds := setup(t)
	ctx := context.Background()

	_, err := creds.CreateAdmin(ctx, model.AdminSignupRequest{Name: "A", Email: "a@example.com", Password: "secret1", CompanyName: "H1", CompanyID: "C-1"})
	require.NoError(t, err)
	b, err := creds.CreateAdmin(ctx, model.AdminSignupRequest{Name: "B", Email: "b@example.com", Password: "secret1", CompanyName: "H1", CompanyID: "C-2"})
	require.NoError(t, err)

	_, err = svc.UpdateAdmin(ctx, b.ID, &model.UpdateAdminRequest{Email: strPtr("a@example.com")})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicateIdentity))
}
