package credential

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository/memory"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
	"github.com/healthone/clinic-api/pkg/security"
)

func newService() *Service {
	return NewService(memory.NewStore().Repositories(), security.NewBcryptHasher(bcrypt.MinCost))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@example.com", NormalizeEmail("  Asha@Example.COM "))
}

func TestCreatePatient(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	patient, err := svc.CreatePatient(ctx, model.PatientSignupRequest{
		Name:        " Asha Rao ",
		Email:       "Asha@Example.com",
		Password:    "secret1",
		PhoneNumber: "9876543210",
		Area:        "Indiranagar",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.Equal(t, "Asha Rao", patient.Name)
	assert.Equal(t, "asha@example.com", patient.Email)
	assert.NotEqual(t, "secret1", patient.PasswordHash)
	assert.True(t, svc.Verify(patient, "secret1"))
	assert.False(t, svc.Verify(patient, "wrong-pass"))

	_, err = svc.CreatePatient(ctx, model.PatientSignupRequest{
		Name:     "Other",
		Email:    "ASHA@example.com",
		Password: "secret2",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicateIdentity))
	assert.Equal(t, "Patient with this email already exists", apperrors.As(err).PublicMessage())
}

func TestCreatePatient_ShortPassword(t *testing.T) {
	_, err := newService().CreatePatient(context.Background(), model.PatientSignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreatePatient_PasswordOverBcryptLimit(t *testing.T) {
	svc := newService()

	// 25 three-byte runes pass a character count of 72 but not bcrypt's byte limit.
	_, err := svc.CreatePatient(context.Background(), model.PatientSignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: strings.Repeat("€", 25),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Equal(t, 400, apperrors.As(err).StatusCode())
	assert.Equal(t, "Password must be at most 72 bytes", apperrors.As(err).PublicMessage())

	patient, err := svc.CreatePatient(context.Background(), model.PatientSignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: strings.Repeat("a", 72),
	})
	require.NoError(t, err)
	assert.True(t, svc.Verify(patient, strings.Repeat("a", 72)))
}

func TestCreateStaff_DoctorNeedsNMR(t *testing.T) {
	svc := newService()
	req := model.ClinicSignupRequest{
		ClinicName:               "City Clinic",
		UserName:                 "dr.mehta",
		ContactName:              "Mehta",
		Email:                    "mehta@example.com",
		Password:                 "secret1",
		ClinicRegistrationNumber: "REG-1",
		UserType:                 model.SubRoleDoctor,
	}

	_, err := svc.CreateStaff(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "NMR Number is required for doctors", apperrors.As(err).PublicMessage())

	req.NMRNumber = "NMR-42"
	staff, err := svc.CreateStaff(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.SubRoleDoctor, staff.SubRole())
	assert.Equal(t, model.DoctorLicense{NMRNumber: "NMR-42"}, staff.License)
}

func TestCreateAdmin_DuplicateCompanyID(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, model.AdminSignupRequest{
		Name:        "Priya",
		Email:       "priya@example.com",
		Password:    "secret1",
		CompanyName: "HealthOne",
		CompanyID:   "HO-1",
	})
	require.NoError(t, err)

	_, err = svc.CreateAdmin(ctx, model.AdminSignupRequest{
		Name:        "Karan",
		Email:       "karan@example.com",
		Password:    "secret1",
		CompanyName: "HealthOne",
		CompanyID:   " HO-1 ",
	})
	require.Error(t, err)
	assert.Equal(t, "Admin with this email or company ID already exists", apperrors.As(err).PublicMessage())
}

func TestFindByEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	patient, err := svc.CreatePatient(ctx, model.PatientSignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	found, err := svc.FindByEmail(ctx, " ASHA@example.com", model.RolePatient)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, patient.ID, found.AccountID())

	// Accounts are looked up only in the variant named by the role.
	found, err = svc.FindByEmail(ctx, "asha@example.com", model.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = svc.FindByEmail(ctx, "asha@example.com", model.Role("doctor"))
	require.Error(t, err)
	assert.Equal(t, "Invalid role specified", apperrors.As(err).PublicMessage())
}

func TestFindByID(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, model.AdminSignupRequest{
		Name:        "Priya",
		Email:       "priya@example.com",
		Password:    "secret1",
		CompanyName: "HealthOne",
		CompanyID:   "HO-1",
	})
	require.NoError(t, err)

	found, err := svc.FindByID(ctx, model.Identity{ID: admin.ID, Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.AccountID())

	_, err = svc.FindByID(ctx, model.Identity{ID: uuid.New(), Role: model.RolePatient})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
