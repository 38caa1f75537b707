package record

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

const resource = "Patient record"

type Service struct {
	repo     repository.PatientRecordRepository
	patients repository.PatientRepository
	now      func() time.Time
}

func NewService(repo repository.PatientRecordRepository, patients repository.PatientRepository) *Service {
	return &Service{repo: repo, patients: patients, now: time.Now}
}

// Create is the only write that checks its patient reference.
func (s *Service) Create(ctx context.Context, actor *model.Identity, req *model.CreatePatientRecordRequest) (*model.PatientRecord, error) {
	if _, err := s.patients.Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Patient", err)
		}
		return nil, service.StorageError(err, "Patient", "get patient")
	}

	rec := &model.PatientRecord{
		PatientID:      req.PatientID,
		MedicalHistory: req.MedicalHistory,
		Allergies:      service.OrEmpty(req.Allergies),
		BloodType:      req.BloodType,
		CreatedBy:      actor.ActorID(),
	}
	if req.EmergencyContact != nil {
		rec.EmergencyContact = *req.EmergencyContact
	}
	if req.Insurance != nil {
		rec.Insurance = *req.Insurance
	}
	rec.Touch(s.now().UTC())

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, service.StorageError(err, resource, "create patient record")
	}
	return rec, nil
}

func (s *Service) GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.PatientRecord, error) {
	rec, err := s.repo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "get patient record")
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRecordRequest) (*model.PatientRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get patient record")
	}

	if req.MedicalHistory != nil {
		rec.MedicalHistory = *req.MedicalHistory
	}
	if req.Allergies != nil {
		rec.Allergies = req.Allergies
	}
	if req.BloodType != nil {
		rec.BloodType = *req.BloodType
	}
	if req.EmergencyContact != nil {
		rec.EmergencyContact = *req.EmergencyContact
	}
	if req.Insurance != nil {
		rec.Insurance = *req.Insurance
	}
	rec.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, service.StorageError(err, resource, "update patient record")
	}
	return rec, nil
}
