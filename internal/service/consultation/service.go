package consultation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

const resource = "Consultation"

type Service struct {
	repo repository.ConsultationRepository
	now  func() time.Time
}

func NewService(repo repository.ConsultationRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Start opens a consultation for the caller and moves its appointment to
// in-progress.
func (s *Service) Start(ctx context.Context, actor *model.Identity, req *model.CreateConsultationRequest) (*model.Consultation, error) {
	now := s.now().UTC()
	c := &model.Consultation{
		AppointmentID:   req.AppointmentID,
		PatientID:       req.PatientID,
		DoctorID:        actor.ActorID(),
		Subjective:      req.Subjective,
		Objective:       req.Objective,
		Assessment:      req.Assessment,
		Plan:            req.Plan,
		Diagnosis:       service.OrEmpty(req.Diagnosis),
		UploadedReports: stampReports(req.UploadedReports, now),
		Status:          model.ConsultationStatusInProgress,
		StartedAt:       now,
	}
	c.Touch(now)

	if err := s.repo.Start(ctx, c); err != nil {
		return nil, service.StorageError(err, resource, "start consultation")
	}
	return c, nil
}

// Update merges the notes. Setting status to completed stamps completedAt
// and completes the appointment in the same write.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateConsultationRequest) (*model.Consultation, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get consultation")
	}
	now := s.now().UTC()

	if req.Subjective != nil {
		c.Subjective = *req.Subjective
	}
	if req.Objective != nil {
		c.Objective = *req.Objective
	}
	if req.Assessment != nil {
		c.Assessment = *req.Assessment
	}
	if req.Plan != nil {
		c.Plan = *req.Plan
	}
	if req.Diagnosis != nil {
		c.Diagnosis = req.Diagnosis
	}
	if req.UploadedReports != nil {
		c.UploadedReports = stampReports(req.UploadedReports, now)
	}
	c.UpdatedAt = now

	if req.Status == nil || *req.Status != model.ConsultationStatusCompleted {
		if req.Status != nil {
			c.Status = *req.Status
		}
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, service.StorageError(err, resource, "update consultation")
		}
		return c, nil
	}

	c.Status = model.ConsultationStatusCompleted
	c.CompletedAt = &now
	if err := s.repo.Complete(ctx, c); err != nil {
		return nil, service.StorageError(err, resource, "complete consultation")
	}
	return c, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Consultation, error) {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list patient consultations")
	}
	return out, nil
}

func (s *Service) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*model.Consultation, error) {
	c, err := s.repo.GetByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, service.StorageError(err, resource, "get consultation by appointment")
	}
	return c, nil
}

func stampReports(reports []model.UploadedReport, now time.Time) model.UploadedReports {
	out := make(model.UploadedReports, len(reports))
	for i, r := range reports {
		if r.UploadedAt.IsZero() {
			r.UploadedAt = now
		}
		out[i] = r
	}
	return out
}
