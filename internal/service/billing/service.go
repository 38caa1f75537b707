package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

const resource = "Bill"

type Service struct {
	repo repository.BillingRepository
	now  func() time.Time
}

func NewService(repo repository.BillingRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create writes a bill with a freshly issued invoice number. The payment
// status is derived from the amounts.
func (s *Service) Create(ctx context.Context, actor *model.Identity, req *model.CreateBillingRequest) (*model.Billing, error) {
	seq, err := s.repo.NextInvoiceSequence(ctx)
	if err != nil {
		return nil, service.StorageError(err, resource, "issue invoice number")
	}
	now := s.now().UTC()

	b := &model.Billing{
		PatientID:       req.PatientID,
		AppointmentID:   model.NullUUIDFrom(req.AppointmentID),
		CreatedBy:       actor.ActorID(),
		Items:           model.BillingItems(req.Items),
		ConsultationFee: req.ConsultationFee,
		LabCharges:      req.LabCharges,
		TotalAmount:     *req.TotalAmount,
		PaidAmount:      req.PaidAmount,
		PaymentMethod:   req.PaymentMethod,
		InvoiceNumber:   model.InvoiceNumber(now, seq),
	}
	if b.Items == nil {
		b.Items = model.BillingItems{}
	}
	if req.InsuranceClaim != nil {
		b.InsuranceClaim = *req.InsuranceClaim
	}
	b.Recompute()
	b.Touch(now)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, service.StorageError(err, resource, "create bill")
	}
	return b, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Billing, error) {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list patient bills")
	}
	return out, nil
}

// RecordPayment adds the amount to what has been paid so far.
func (s *Service) RecordPayment(ctx context.Context, id uuid.UUID, req *model.PaymentRequest) (*model.Billing, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get bill")
	}

	b.PaidAmount += *req.PaidAmount
	if req.PaymentMethod != model.PaymentMethodNone {
		b.PaymentMethod = req.PaymentMethod
	}
	b.Recompute()
	b.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, service.StorageError(err, resource, "record payment")
	}
	return b, nil
}
