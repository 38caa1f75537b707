package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const appointmentColumns = `id, patient_id, doctor_id, appointment_date, appointment_time, status, type,
	chief_complaint, assigned_by, queue_number, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES (:id, :patient_id, :doctor_id, :appointment_date, :appointment_time, :status, :type,
			:chief_complaint, :assigned_by, :queue_number, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, appointment)
	return mapError("create appointment", err)
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id); err != nil {
		return nil, mapError("get appointment", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET doctor_id = :doctor_id, appointment_date = :appointment_date,
			appointment_time = :appointment_time, status = :status, type = :type,
			chief_complaint = :chief_complaint, queue_number = :queue_number, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, appointment)
	return expectAffected("update appointment", result, err)
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY appointment_date ASC, appointment_time ASC
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, doctorID); err != nil {
		return nil, mapError("list doctor appointments", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE doctor_id = $1
		AND appointment_date >= $2
		AND appointment_date < $3
		ORDER BY appointment_time ASC
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, doctorID, from, to); err != nil {
		return nil, mapError("list doctor appointments for day", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE patient_id = $1
		ORDER BY appointment_date DESC
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, mapError("list patient appointments", err)
	}
	return appointments, nil
}
