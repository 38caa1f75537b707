package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const patientRecordColumns = `id, patient_id, medical_history, allergies, blood_type, emergency_contact,
	insurance, created_by, created_at, updated_at`

func (r *patientRecordRepository) Create(ctx context.Context, record *model.PatientRecord) error {
	query := `
		INSERT INTO patient_records (` + patientRecordColumns + `)
		VALUES (:id, :patient_id, :medical_history, :allergies, :blood_type, :emergency_contact,
			:insurance, :created_by, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, record)
	return mapError("create patient record", err)
}

func (r *patientRecordRepository) Get(ctx context.Context, id uuid.UUID) (*model.PatientRecord, error) {
	var record model.PatientRecord
	if err := r.db.GetContext(ctx, &record, `SELECT `+patientRecordColumns+` FROM patient_records WHERE id = $1`, id); err != nil {
		return nil, mapError("get patient record", err)
	}
	return &record, nil
}

func (r *patientRecordRepository) Update(ctx context.Context, record *model.PatientRecord) error {
	query := `
		UPDATE patient_records
		SET medical_history = :medical_history, allergies = :allergies, blood_type = :blood_type,
			emergency_contact = :emergency_contact, insurance = :insurance, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, record)
	return expectAffected("update patient record", result, err)
}

func (r *patientRecordRepository) GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.PatientRecord, error) {
	query := `
		SELECT ` + patientRecordColumns + `
		FROM patient_records
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var record model.PatientRecord
	if err := r.db.GetContext(ctx, &record, query, patientID); err != nil {
		return nil, mapError("get record by patient", err)
	}
	return &record, nil
}
