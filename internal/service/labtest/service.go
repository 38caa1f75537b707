package labtest

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

const resource = "Lab test"

type Service struct {
	repo repository.LabTestRepository
	now  func() time.Time
}

func NewService(repo repository.LabTestRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Order(ctx context.Context, actor *model.Identity, req *model.OrderLabTestRequest) (*model.LabTest, error) {
	now := s.now().UTC()
	test := &model.LabTest{
		PatientID: req.PatientID,
		OrderedBy: actor.ActorID(),
		TestName:  strings.TrimSpace(req.TestName),
		TestType:  strings.TrimSpace(req.TestType),
		Status:    model.LabTestStatusOrdered,
		OrderedAt: now,
	}
	test.Touch(now)

	if err := s.repo.Create(ctx, test); err != nil {
		return nil, service.StorageError(err, resource, "order lab test")
	}
	return test, nil
}

// ListPending returns every test that is not completed, newest order first.
func (s *Service) ListPending(ctx context.Context) ([]*model.LabTest, error) {
	out, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, service.StorageError(err, resource, "list pending lab tests")
	}
	return out, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.LabTest, error) {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list patient lab tests")
	}
	return out, nil
}

// CollectSample records who took the sample and when.
func (s *Service) CollectSample(ctx context.Context, actor *model.Identity, id uuid.UUID) (*model.LabTest, error) {
	test, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get lab test")
	}
	now := s.now().UTC()
	test.Status = model.LabTestStatusSampleCollected
	test.SampleCollectedBy = actor.ActorID()
	test.SampleCollectedAt = &now
	return s.save(ctx, test, now)
}

// AddResults completes the test.
func (s *Service) AddResults(ctx context.Context, id uuid.UUID, req *model.LabResultsRequest) (*model.LabTest, error) {
	test, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get lab test")
	}
	now := s.now().UTC()
	test.Status = model.LabTestStatusCompleted
	test.Results = req.Results
	test.DoctorComments = req.DoctorComments
	if req.ResultFile != "" {
		test.ResultFile = req.ResultFile
	}
	test.CompletedAt = &now
	return s.save(ctx, test, now)
}

func (s *Service) save(ctx context.Context, test *model.LabTest, now time.Time) (*model.LabTest, error) {
	test.UpdatedAt = now
	if err := s.repo.Update(ctx, test); err != nil {
		return nil, service.StorageError(err, resource, "update lab test")
	}
	return test, nil
}
