package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

const resource = "Appointment"

type Option func(*Service)

// WithClock overrides the time source, used for the today view.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	repo repository.AppointmentRepository
	now  func() time.Time
}

func NewService(repo repository.AppointmentRepository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book creates a scheduled appointment. The caller, when known, is recorded
// as the assigner.
func (s *Service) Book(ctx context.Context, actor *model.Identity, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	apt := &model.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: *req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          model.AppointmentStatusScheduled,
		Type:            req.Type,
		ChiefComplaint:  strings.TrimSpace(req.ChiefComplaint),
		AssignedBy:      actor.ActorID(),
		QueueNumber:     req.QueueNumber,
	}
	if apt.Type == "" {
		apt.Type = model.AppointmentTypeScheduled
	}
	apt.Touch(s.now().UTC())

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, service.StorageError(err, resource, "create appointment")
	}
	return apt, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get appointment")
	}
	return apt, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	apts, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list doctor appointments")
	}
	return apts, nil
}

// ListToday returns the doctor's appointments dated on the current UTC day,
// ordered by time.
func (s *Service) ListToday(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	apts, err := s.repo.ListByDoctorBetween(ctx, doctorID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, service.StorageError(err, resource, "list today's appointments")
	}
	return apts, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	apts, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list patient appointments")
	}
	return apts, nil
}

// Update merges the provided fields. Status transitions are not checked.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get appointment")
	}

	if req.DoctorID != nil {
		apt.DoctorID = *req.DoctorID
	}
	if req.AppointmentDate != nil {
		apt.AppointmentDate = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		apt.AppointmentTime = *req.AppointmentTime
	}
	if req.Status != nil {
		apt.Status = *req.Status
	}
	if req.Type != nil {
		apt.Type = *req.Type
	}
	if req.ChiefComplaint != nil {
		apt.ChiefComplaint = strings.TrimSpace(*req.ChiefComplaint)
	}
	if req.QueueNumber != nil {
		apt.QueueNumber = req.QueueNumber
	}
	apt.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, service.StorageError(err, resource, "update appointment")
	}
	return apt, nil
}

// Cancel moves the appointment to cancelled from any state.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	status := model.AppointmentStatusCancelled
	return s.Update(ctx, id, &model.UpdateAppointmentRequest{Status: &status})
}
