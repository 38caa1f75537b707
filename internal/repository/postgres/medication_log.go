package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const medicationLogColumns = `id, patient_id, prescription_id, administered_by, medication_name, dosage_given,
	administered_at, notes, route, created_at, updated_at`

func (r *medicationLogRepository) Create(ctx context.Context, log *model.MedicationLog) error {
	query := `
		INSERT INTO medication_logs (` + medicationLogColumns + `)
		VALUES (:id, :patient_id, :prescription_id, :administered_by, :medication_name, :dosage_given,
			:administered_at, :notes, :route, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, log)
	return mapError("create medication log", err)
}

func (r *medicationLogRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.MedicationLog, error) {
	query := `SELECT ` + medicationLogColumns + ` FROM medication_logs WHERE patient_id = $1 ORDER BY administered_at DESC`
	logs := []*model.MedicationLog{}
	if err := r.db.SelectContext(ctx, &logs, query, patientID); err != nil {
		return nil, mapError("list medication logs", err)
	}
	return logs, nil
}
