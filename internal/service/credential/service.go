// Package credential owns account creation, lookup and secret verification
// for the three account variants.
package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
	"github.com/healthone/clinic-api/pkg/security"
)

const (
	msgPatientExists = "Patient with this email already exists"
	msgUserExists    = "User with this email already exists"
	msgAdminExists   = "Admin with this email or company ID already exists"
	msgInvalidRole   = "Invalid role specified"
)

type Service struct {
	patients repository.PatientRepository
	staff    repository.StaffRepository
	admins   repository.AdminRepository
	hasher   security.PasswordHasher
}

func NewService(store repository.Store, hasher security.PasswordHasher) *Service {
	return &Service{
		patients: store.Patients,
		staff:    store.Staff,
		admins:   store.Admins,
		hasher:   hasher,
	}
}

// NormalizeEmail is applied before every store and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashSecret hashes a plaintext password for storage.
func (s *Service) HashSecret(plaintext string) (string, error) {
	hash, err := s.hasher.Hash(plaintext)
	if errors.Is(err, security.ErrPasswordTooShort) {
		return "", apperrors.Validation("Password must be at least 6 characters", err)
	}
	if errors.Is(err, security.ErrPasswordTooLong) {
		return "", apperrors.Validation("Password must be at most 72 bytes", err)
	}
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return hash, nil
}

// Verify reports whether plaintext matches the account's stored hash.
func (s *Service) Verify(account model.Account, plaintext string) bool {
	if account == nil {
		return false
	}
	return s.hasher.Verify(account.SecretHash(), plaintext)
}

func (s *Service) CreatePatient(ctx context.Context, req model.PatientSignupRequest) (*model.Patient, error) {
	email := NormalizeEmail(req.Email)

	if _, err := s.patients.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Duplicate(msgPatientExists, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(fmt.Errorf("failed to check patient email: %w", err))
	}

	hash, err := s.HashSecret(req.Password)
	if err != nil {
		return nil, err
	}

	patient := &model.Patient{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Area:         strings.TrimSpace(req.Area),
		Role:         model.RolePatient,
	}
	patient.Touch(time.Now().UTC())

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, duplicateOr(err, msgPatientExists, "failed to create patient")
	}
	return patient, nil
}

func (s *Service) CreateStaff(ctx context.Context, req model.ClinicSignupRequest) (*model.ClinicStaff, error) {
	license, err := req.License()
	if err != nil {
		return nil, apperrors.Validation(err.Error(), err)
	}

	email := NormalizeEmail(req.Email)
	if _, err := s.staff.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Duplicate(msgUserExists, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(fmt.Errorf("failed to check staff email: %w", err))
	}

	hash, err := s.HashSecret(req.Password)
	if err != nil {
		return nil, err
	}

	staff := &model.ClinicStaff{
		ClinicName:               strings.TrimSpace(req.ClinicName),
		UserName:                 strings.TrimSpace(req.UserName),
		ContactName:              strings.TrimSpace(req.ContactName),
		Email:                    email,
		PasswordHash:             hash,
		ClinicRegistrationNumber: strings.TrimSpace(req.ClinicRegistrationNumber),
		License:                  license,
	}
	staff.Touch(time.Now().UTC())

	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, duplicateOr(err, msgUserExists, "failed to create clinic staff")
	}
	return staff, nil
}

func (s *Service) CreateAdmin(ctx context.Context, req model.AdminSignupRequest) (*model.Administrator, error) {
	email := NormalizeEmail(req.Email)
	companyID := strings.TrimSpace(req.CompanyID)

	exists, err := s.admins.ExistsByEmailOrCompanyID(ctx, email, companyID)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to check admin identity: %w", err))
	}
	if exists {
		return nil, apperrors.Duplicate(msgAdminExists, nil)
	}

	hash, err := s.HashSecret(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Administrator{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		CompanyName:  strings.TrimSpace(req.CompanyName),
		CompanyID:    companyID,
		Role:         model.RoleAdmin,
	}
	admin.Touch(time.Now().UTC())

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, duplicateOr(err, msgAdminExists, "failed to create admin")
	}
	return admin, nil
}

// FindByEmail looks the email up in the variant selected by role. A missing
// account yields (nil, nil).
func (s *Service) FindByEmail(ctx context.Context, email string, role model.Role) (model.Account, error) {
	email = NormalizeEmail(email)

	var (
		account model.Account
		err     error
	)
	switch role {
	case model.RolePatient:
		var p *model.Patient
		if p, err = s.patients.GetByEmail(ctx, email); err == nil {
			account = p
		}
	case model.RoleClinic:
		var c *model.ClinicStaff
		if c, err = s.staff.GetByEmail(ctx, email); err == nil {
			account = c
		}
	case model.RoleAdmin:
		var a *model.Administrator
		if a, err = s.admins.GetByEmail(ctx, email); err == nil {
			account = a
		}
	default:
		return nil, apperrors.Validation(msgInvalidRole, nil)
	}

	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to find %s account: %w", role, err))
	}
	return account, nil
}

// FindByID loads the account of an authenticated identity.
func (s *Service) FindByID(ctx context.Context, identity model.Identity) (model.Account, error) {
	var (
		account model.Account
		err     error
	)
	switch identity.Role {
	case model.RolePatient:
		var p *model.Patient
		if p, err = s.patients.Get(ctx, identity.ID); err == nil {
			account = p
		}
	case model.RoleClinic:
		var c *model.ClinicStaff
		if c, err = s.staff.Get(ctx, identity.ID); err == nil {
			account = c
		}
	case model.RoleAdmin:
		var a *model.Administrator
		if a, err = s.admins.Get(ctx, identity.ID); err == nil {
			account = a
		}
	default:
		return nil, apperrors.Validation(msgInvalidRole, nil)
	}

	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Account", err)
	}
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to load account: %w", err))
	}
	return account, nil
}

func duplicateOr(err error, duplicateMsg, op string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperrors.Duplicate(duplicateMsg, err)
	}
	return apperrors.Internal(fmt.Errorf("%s: %w", op, err))
}
