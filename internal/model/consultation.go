package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ConsultationStatus string

const (
	ConsultationStatusInProgress ConsultationStatus = "in-progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
)

type UploadedReport struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadedReports is stored as a JSONB array.
type UploadedReports []UploadedReport

func (r UploadedReports) Value() (driver.Value, error) {
	if r == nil {
		r = UploadedReports{}
	}
	return jsonValue([]UploadedReport(r))
}

func (r *UploadedReports) Scan(src interface{}) error {
	return scanJSON(src, (*[]UploadedReport)(r))
}

// Consultation holds SOAP notes for one appointment.
type Consultation struct {
	Base
	AppointmentID   uuid.UUID          `db:"appointment_id" json:"appointmentId"`
	PatientID       uuid.UUID          `db:"patient_id" json:"patientId"`
	DoctorID        uuid.NullUUID      `db:"doctor_id" json:"doctorId"`
	Subjective      string             `db:"subjective" json:"subjective"`
	Objective       string             `db:"objective" json:"objective"`
	Assessment      string             `db:"assessment" json:"assessment"`
	Plan            string             `db:"plan" json:"plan"`
	Diagnosis       pq.StringArray     `db:"diagnosis" json:"diagnosis"`
	UploadedReports UploadedReports    `db:"uploaded_reports" json:"uploadedReports"`
	Status          ConsultationStatus `db:"status" json:"status"`
	StartedAt       time.Time          `db:"started_at" json:"startedAt"`
	CompletedAt     *time.Time         `db:"completed_at" json:"completedAt,omitempty"`
}

type CreateConsultationRequest struct {
	AppointmentID   uuid.UUID        `json:"appointmentId" binding:"required"`
	PatientID       uuid.UUID        `json:"patientId" binding:"required"`
	Subjective      string           `json:"subjective"`
	Objective       string           `json:"objective"`
	Assessment      string           `json:"assessment"`
	Plan            string           `json:"plan"`
	Diagnosis       []string         `json:"diagnosis"`
	UploadedReports []UploadedReport `json:"uploadedReports"`
}

type UpdateConsultationRequest struct {
	Subjective      *string             `json:"subjective"`
	Objective       *string             `json:"objective"`
	Assessment      *string             `json:"assessment"`
	Plan            *string             `json:"plan"`
	Diagnosis       []string            `json:"diagnosis"`
	UploadedReports []UploadedReport    `json:"uploadedReports"`
	Status          *ConsultationStatus `json:"status" binding:"omitempty,oneof=in-progress completed"`
}
