package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/healthone/clinic-api/internal/model"
)

const consultationColumns = `id, appointment_id, patient_id, doctor_id, subjective, objective, assessment, plan,
	diagnosis, uploaded_reports, status, started_at, completed_at, created_at, updated_at`

const setAppointmentStatus = `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2`

func (r *consultationRepository) Start(ctx context.Context, consultation *model.Consultation) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, setAppointmentStatus, model.AppointmentStatusInProgress, consultation.AppointmentID); err != nil {
			return mapError("start appointment", err)
		}
		query := `
			INSERT INTO consultations (` + consultationColumns + `)
			VALUES (:id, :appointment_id, :patient_id, :doctor_id, :subjective, :objective, :assessment, :plan,
				:diagnosis, :uploaded_reports, :status, :started_at, :completed_at, :created_at, :updated_at)
		`
		_, err := tx.NamedExecContext(ctx, query, consultation)
		return mapError("create consultation", err)
	})
}

func (r *consultationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	var consultation model.Consultation
	if err := r.db.GetContext(ctx, &consultation, `SELECT `+consultationColumns+` FROM consultations WHERE id = $1`, id); err != nil {
		return nil, mapError("get consultation", err)
	}
	return &consultation, nil
}

const updateConsultation = `
	UPDATE consultations
	SET subjective = :subjective, objective = :objective, assessment = :assessment, plan = :plan,
		diagnosis = :diagnosis, uploaded_reports = :uploaded_reports, status = :status,
		completed_at = :completed_at, updated_at = :updated_at
	WHERE id = :id
`

func (r *consultationRepository) Update(ctx context.Context, consultation *model.Consultation) error {
	result, err := r.db.NamedExecContext(ctx, updateConsultation, consultation)
	return expectAffected("update consultation", result, err)
}

func (r *consultationRepository) Complete(ctx context.Context, consultation *model.Consultation) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, updateConsultation, consultation)
		if err := expectAffected("complete consultation", result, err); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, setAppointmentStatus, model.AppointmentStatusCompleted, consultation.AppointmentID); err != nil {
			return mapError("complete appointment", err)
		}
		return nil
	})
}

func (r *consultationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE patient_id = $1 ORDER BY created_at DESC`
	consultations := []*model.Consultation{}
	if err := r.db.SelectContext(ctx, &consultations, query, patientID); err != nil {
		return nil, mapError("list patient consultations", err)
	}
	return consultations, nil
}

func (r *consultationRepository) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*model.Consultation, error) {
	query := `
		SELECT ` + consultationColumns + `
		FROM consultations
		WHERE appointment_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var consultation model.Consultation
	if err := r.db.GetContext(ctx, &consultation, query, appointmentID); err != nil {
		return nil, mapError("get consultation by appointment", err)
	}
	return &consultation, nil
}
