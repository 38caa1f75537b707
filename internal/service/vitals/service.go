package vitals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

const resource = "Vitals"

type Service struct {
	repo repository.VitalsRepository
	now  func() time.Time
}

func NewService(repo repository.VitalsRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record stores a vitals reading. BMI is always derived from weight and
// height, never taken from the client.
func (s *Service) Record(ctx context.Context, actor *model.Identity, req *model.RecordVitalsRequest) (*model.Vitals, error) {
	now := s.now().UTC()
	v := &model.Vitals{
		PatientID:     req.PatientID,
		AppointmentID: model.NullUUIDFrom(req.AppointmentID),
		RecordedBy:    actor.ActorID(),
		BloodPressure: *req.BloodPressure,
		Pulse:         req.Pulse,
		Temperature:   req.Temperature,
		OxygenLevel:   req.OxygenLevel,
		Weight:        req.Weight,
		Height:        req.Height,
		Notes:         req.Notes,
		RecordedAt:    now,
	}
	v.Recompute()
	v.Touch(now)

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, service.StorageError(err, resource, "record vitals")
	}
	return v, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Vitals, error) {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list patient vitals")
	}
	return out, nil
}

func (s *Service) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*model.Vitals, error) {
	v, err := s.repo.GetByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, service.StorageError(err, resource, "get appointment vitals")
	}
	return v, nil
}
