package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const vitalsColumns = `id, patient_id, appointment_id, recorded_by, blood_pressure, pulse, temperature,
	oxygen_level, weight, height, bmi, notes, recorded_at, created_at, updated_at`

func (r *vitalsRepository) Create(ctx context.Context, vitals *model.Vitals) error {
	query := `
		INSERT INTO vitals (` + vitalsColumns + `)
		VALUES (:id, :patient_id, :appointment_id, :recorded_by, :blood_pressure, :pulse, :temperature,
			:oxygen_level, :weight, :height, :bmi, :notes, :recorded_at, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, vitals)
	return mapError("record vitals", err)
}

func (r *vitalsRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Vitals, error) {
	query := `SELECT ` + vitalsColumns + ` FROM vitals WHERE patient_id = $1 ORDER BY recorded_at DESC`
	vitals := []*model.Vitals{}
	if err := r.db.SelectContext(ctx, &vitals, query, patientID); err != nil {
		return nil, mapError("list patient vitals", err)
	}
	return vitals, nil
}

func (r *vitalsRepository) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*model.Vitals, error) {
	query := `
		SELECT ` + vitalsColumns + `
		FROM vitals
		WHERE appointment_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`
	var vitals model.Vitals
	if err := r.db.GetContext(ctx, &vitals, query, appointmentID); err != nil {
		return nil, mapError("get appointment vitals", err)
	}
	return &vitals, nil
}
