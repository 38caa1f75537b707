package prescription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

const (
	resource            = "Prescription"
	msgDoctorIDRequired = "Doctor ID is required for Admin entry"
)

type Service struct {
	repo repository.PrescriptionRepository
	now  func() time.Time
}

func NewService(repo repository.PrescriptionRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create writes an active prescription. Admins enter prescriptions on behalf
// of a doctor and must name one; anyone else is recorded as the prescriber.
func (s *Service) Create(ctx context.Context, actor *model.Identity, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	doctorID := actor.ActorID()
	if actor.IsAdmin() {
		if req.DoctorID == nil || *req.DoctorID == uuid.Nil {
			return nil, apperrors.Validation(msgDoctorIDRequired, nil)
		}
		doctorID = model.NullUUIDFrom(req.DoctorID)
	}

	p := &model.Prescription{
		PatientID:        req.PatientID,
		DoctorID:         doctorID,
		ConsultationID:   model.NullUUIDFrom(req.ConsultationID),
		Medications:      model.Medications(req.Medications),
		DigitalSignature: req.DigitalSignature,
		Status:           model.PrescriptionStatusActive,
		ValidUntil:       req.ValidUntil,
	}
	p.Touch(s.now().UTC())

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, service.StorageError(err, resource, "create prescription")
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get prescription")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Prescription, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, service.StorageError(err, resource, "list prescriptions")
	}
	return out, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Prescription, error) {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list patient prescriptions")
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePrescriptionRequest) (*model.Prescription, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get prescription")
	}

	if req.DoctorID != nil {
		p.DoctorID = model.NullUUIDFrom(req.DoctorID)
	}
	if req.ConsultationID != nil {
		p.ConsultationID = model.NullUUIDFrom(req.ConsultationID)
	}
	if req.Medications != nil {
		p.Medications = model.Medications(req.Medications)
	}
	if req.DigitalSignature != nil {
		p.DigitalSignature = *req.DigitalSignature
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.ValidUntil != nil {
		p.ValidUntil = req.ValidUntil
	}
	return s.save(ctx, p)
}

// RequestRefill flags the prescription for a refill.
func (s *Service) RequestRefill(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get prescription")
	}
	p.Status = model.PrescriptionStatusRefillRequested
	return s.save(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return service.StorageError(err, resource, "delete prescription")
	}
	return nil
}

func (s *Service) save(ctx context.Context, p *model.Prescription) (*model.Prescription, error) {
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, service.StorageError(err, resource, "update prescription")
	}
	return p, nil
}
