package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/credential"
	"github.com/healthone/clinic-api/pkg/auth"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
	"github.com/healthone/clinic-api/pkg/metrics"
)

const msgMissingLoginFields = "Please provide email, password, and role"

type Service struct {
	credentials *credential.Service
	tokens      *auth.TokenManager
	revocations auth.RevocationStore
	metrics     *metrics.Metrics
}

func NewService(credentials *credential.Service, tokens *auth.TokenManager, revocations auth.RevocationStore, m *metrics.Metrics) *Service {
	return &Service{
		credentials: credentials,
		tokens:      tokens,
		revocations: revocations,
		metrics:     m,
	}
}

func (s *Service) issue(account model.Account) (*model.AuthResult, error) {
	token, _, err := s.tokens.Issue(account.AccountID().String(), string(account.AccountRole()))
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to issue token: %w", err))
	}
	return &model.AuthResult{Token: token, User: account.Summary()}, nil
}

func (s *Service) SignupPatient(ctx context.Context, req model.PatientSignupRequest) (*model.AuthResult, error) {
	patient, err := s.credentials.CreatePatient(ctx, req)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSignup(string(model.RolePatient))
	return s.issue(patient)
}

func (s *Service) SignupClinic(ctx context.Context, req model.ClinicSignupRequest) (*model.AuthResult, error) {
	staff, err := s.credentials.CreateStaff(ctx, req)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSignup(string(model.RoleClinic))
	return s.issue(staff)
}

func (s *Service) SignupAdmin(ctx context.Context, req model.AdminSignupRequest) (*model.AuthResult, error) {
	admin, err := s.credentials.CreateAdmin(ctx, req)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSignup(string(model.RoleAdmin))
	return s.issue(admin)
}

// Login verifies the credentials against the variant selected by role. An
// unknown email and a wrong password fail identically.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.Validation(msgMissingLoginFields, nil)
	}

	account, err := s.credentials.FindByEmail(ctx, req.Email, req.Role)
	if err != nil {
		return nil, err
	}

	if account == nil || !s.credentials.Verify(account, req.Password) {
		s.metrics.ObserveLogin(string(req.Role), "failure")
		log.Ctx(ctx).Info().Str("role", string(req.Role)).Msg("login rejected")
		return nil, apperrors.Unauthorized("", nil)
	}

	s.metrics.ObserveLogin(string(req.Role), "success")
	return s.issue(account)
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return apperrors.Unauthorized("Invalid token", nil)
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperrors.Internal(fmt.Errorf("failed to revoke token: %w", err))
	}
	s.metrics.ObserveRevocation()
	return nil
}

// Me returns the account behind the identity.
func (s *Service) Me(ctx context.Context, identity model.Identity) (model.Account, error) {
	return s.credentials.FindByID(ctx, identity)
}
