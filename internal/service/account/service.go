package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
	"github.com/healthone/clinic-api/internal/service/credential"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

const msgStaffExists = "User with this email or registration number already exists"

// AccountServicer is the management surface used by the account handlers.
type AccountServicer interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error

	ListStaff(ctx context.Context) ([]*model.ClinicStaff, error)
	CreateStaff(ctx context.Context, req *model.ClinicSignupRequest) (*model.ClinicStaff, error)
	UpdateStaff(ctx context.Context, id uuid.UUID, req *model.UpdateStaffRequest) (*model.ClinicStaff, error)
	DeleteStaff(ctx context.Context, id uuid.UUID) error

	ListAdmins(ctx context.Context) ([]*model.Administrator, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, req *model.UpdateAdminRequest) (*model.Administrator, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	patients    repository.PatientRepository
	staff       repository.StaffRepository
	admins      repository.AdminRepository
	credentials *credential.Service
	now         func() time.Time
}

var _ AccountServicer = (*Service)(nil)

func NewService(store repository.Store, credentials *credential.Service) *Service {
	return &Service{
		patients:    store.Patients,
		staff:       store.Staff,
		admins:      store.Admins,
		credentials: credentials,
		now:         time.Now,
	}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, service.StorageError(err, "Patient", "list patients")
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, "Patient", "get patient")
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, "Patient", "get patient")
	}

	if req.Name != nil {
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		patient.Email = credential.NormalizeEmail(*req.Email)
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Area != nil {
		patient.Area = strings.TrimSpace(*req.Area)
	}
	if req.Password != nil {
		if patient.PasswordHash, err = s.credentials.HashSecret(*req.Password); err != nil {
			return nil, err
		}
	}
	patient.UpdatedAt = s.now().UTC()

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, updateError(err, "Patient", "Patient with this email already exists")
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return service.StorageError(err, "Patient", "delete patient")
	}
	return nil
}

func (s *Service) ListStaff(ctx context.Context) ([]*model.ClinicStaff, error) {
	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, service.StorageError(err, "User", "list clinic staff")
	}
	return staff, nil
}

// CreateStaff adds a staff member from the management screen. Unlike signup,
// the registration number must be unused as well.
func (s *Service) CreateStaff(ctx context.Context, req *model.ClinicSignupRequest) (*model.ClinicStaff, error) {
	exists, err := s.staff.ExistsByEmailOrRegistration(ctx,
		credential.NormalizeEmail(req.Email), strings.TrimSpace(req.ClinicRegistrationNumber))
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to check staff identity: %w", err))
	}
	if exists {
		return nil, apperrors.Duplicate(msgStaffExists, nil)
	}
	return s.credentials.CreateStaff(ctx, *req)
}

func (s *Service) UpdateStaff(ctx context.Context, id uuid.UUID, req *model.UpdateStaffRequest) (*model.ClinicStaff, error) {
	staff, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, "User", "get clinic staff")
	}

	license, err := req.ApplyLicense(staff.License)
	if err != nil {
		return nil, apperrors.Validation(err.Error(), err)
	}
	staff.License = license

	if req.ClinicName != nil {
		staff.ClinicName = strings.TrimSpace(*req.ClinicName)
	}
	if req.UserName != nil {
		staff.UserName = strings.TrimSpace(*req.UserName)
	}
	if req.ContactName != nil {
		staff.ContactName = strings.TrimSpace(*req.ContactName)
	}
	if req.Email != nil {
		staff.Email = credential.NormalizeEmail(*req.Email)
	}
	if req.ClinicRegistrationNumber != nil {
		staff.ClinicRegistrationNumber = strings.TrimSpace(*req.ClinicRegistrationNumber)
	}
	if req.Password != nil {
		if staff.PasswordHash, err = s.credentials.HashSecret(*req.Password); err != nil {
			return nil, err
		}
	}
	staff.UpdatedAt = s.now().UTC()

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, updateError(err, "User", "User with this email already exists")
	}
	return staff, nil
}

func (s *Service) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return service.StorageError(err, "User", "delete clinic staff")
	}
	return nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]*model.Administrator, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, service.StorageError(err, "Admin", "list admins")
	}
	return admins, nil
}

func (s *Service) UpdateAdmin(ctx context.Context, id uuid.UUID, req *model.UpdateAdminRequest) (*model.Administrator, error) {
	admin, err := s.admins.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, "Admin", "get admin")
	}

	if req.Name != nil {
		admin.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		admin.Email = credential.NormalizeEmail(*req.Email)
	}
	if req.CompanyName != nil {
		admin.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.CompanyID != nil {
		admin.CompanyID = strings.TrimSpace(*req.CompanyID)
	}
	if req.Password != nil {
		if admin.PasswordHash, err = s.credentials.HashSecret(*req.Password); err != nil {
			return nil, err
		}
	}
	admin.UpdatedAt = s.now().UTC()

	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, updateError(err, "Admin", "Admin with this email or company ID already exists")
	}
	return admin, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	if err := s.admins.Delete(ctx, id); err != nil {
		return service.StorageError(err, "Admin", "delete admin")
	}
	return nil
}

func updateError(err error, resource, duplicateMsg string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperrors.Duplicate(duplicateMsg, err)
	}
	return service.StorageError(err, resource, "update "+strings.ToLower(resource))
}
