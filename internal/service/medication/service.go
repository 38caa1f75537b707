package medication

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

type Service struct {
	repo repository.MedicationLogRepository
	now  func() time.Time
}

func NewService(repo repository.MedicationLogRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Log records one administered dose. Route defaults to oral and the
// administration time to now.
func (s *Service) Log(ctx context.Context, actor *model.Identity, req *model.CreateMedicationLogRequest) (*model.MedicationLog, error) {
	now := s.now().UTC()
	entry := &model.MedicationLog{
		PatientID:      req.PatientID,
		PrescriptionID: req.PrescriptionID,
		AdministeredBy: actor.ActorID(),
		MedicationName: strings.TrimSpace(req.MedicationName),
		DosageGiven:    strings.TrimSpace(req.DosageGiven),
		AdministeredAt: now,
		Notes:          req.Notes,
		Route:          req.Route,
	}
	if req.AdministeredAt != nil {
		entry.AdministeredAt = req.AdministeredAt.UTC()
	}
	if entry.Route == "" {
		entry.Route = model.RouteOral
	}
	entry.Touch(now)

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, service.StorageError(err, "Medication log", "log medication")
	}
	return entry, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.MedicationLog, error) {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, "Medication log", "list patient medication logs")
	}
	return out, nil
}
