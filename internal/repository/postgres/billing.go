package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const billingColumns = `id, patient_id, appointment_id, created_by, items, consultation_fee, lab_charges,
	total_amount, paid_amount, payment_status, payment_method, insurance_claim, invoice_number,
	created_at, updated_at`

func (r *billingRepository) Create(ctx context.Context, billing *model.Billing) error {
	query := `
		INSERT INTO billing (` + billingColumns + `)
		VALUES (:id, :patient_id, :appointment_id, :created_by, :items, :consultation_fee, :lab_charges,
			:total_amount, :paid_amount, :payment_status, :payment_method, :insurance_claim, :invoice_number,
			:created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, billing)
	return mapError("create bill", err)
}

func (r *billingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Billing, error) {
	var billing model.Billing
	if err := r.db.GetContext(ctx, &billing, `SELECT `+billingColumns+` FROM billing WHERE id = $1`, id); err != nil {
		return nil, mapError("get bill", err)
	}
	return &billing, nil
}

func (r *billingRepository) Update(ctx context.Context, billing *model.Billing) error {
	query := `
		UPDATE billing
		SET items = :items, consultation_fee = :consultation_fee, lab_charges = :lab_charges,
			total_amount = :total_amount, paid_amount = :paid_amount, payment_status = :payment_status,
			payment_method = :payment_method, insurance_claim = :insurance_claim, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, billing)
	return expectAffected("update bill", result, err)
}

func (r *billingRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Billing, error) {
	query := `SELECT ` + billingColumns + ` FROM billing WHERE patient_id = $1 ORDER BY created_at DESC`
	bills := []*model.Billing{}
	if err := r.db.SelectContext(ctx, &bills, query, patientID); err != nil {
		return nil, mapError("list patient bills", err)
	}
	return bills, nil
}

func (r *billingRepository) NextInvoiceSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.GetContext(ctx, &seq, `SELECT nextval('billing_invoice_seq')`); err != nil {
		return 0, mapError("allocate invoice number", err)
	}
	return seq, nil
}
