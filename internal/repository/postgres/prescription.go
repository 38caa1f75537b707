package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const prescriptionColumns = `id, patient_id, doctor_id, consultation_id, medications, digital_signature,
	status, valid_until, created_at, updated_at`

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	query := `
		INSERT INTO prescriptions (` + prescriptionColumns + `)
		VALUES (:id, :patient_id, :doctor_id, :consultation_id, :medications, :digital_signature,
			:status, :valid_until, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, prescription)
	return mapError("create prescription", err)
}

func (r *prescriptionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	var prescription model.Prescription
	if err := r.db.GetContext(ctx, &prescription, `SELECT `+prescriptionColumns+` FROM prescriptions WHERE id = $1`, id); err != nil {
		return nil, mapError("get prescription", err)
	}
	return &prescription, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *model.Prescription) error {
	query := `
		UPDATE prescriptions
		SET doctor_id = :doctor_id, consultation_id = :consultation_id, medications = :medications,
			digital_signature = :digital_signature, status = :status, valid_until = :valid_until,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, prescription)
	return expectAffected("update prescription", result, err)
}

func (r *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM prescriptions WHERE id = $1`, id)
	return expectAffected("delete prescription", result, err)
}

func (r *prescriptionRepository) List(ctx context.Context) ([]*model.Prescription, error) {
	prescriptions := []*model.Prescription{}
	if err := r.db.SelectContext(ctx, &prescriptions, `SELECT `+prescriptionColumns+` FROM prescriptions ORDER BY created_at DESC`); err != nil {
		return nil, mapError("list prescriptions", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE patient_id = $1 ORDER BY created_at DESC`
	prescriptions := []*model.Prescription{}
	if err := r.db.SelectContext(ctx, &prescriptions, query, patientID); err != nil {
		return nil, mapError("list patient prescriptions", err)
	}
	return prescriptions, nil
}
