package model

import (
	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

type AppointmentType string

const (
	AppointmentTypeWalkIn           AppointmentType = "walk-in"
	AppointmentTypeScheduled        AppointmentType = "scheduled"
	AppointmentTypeEmergency        AppointmentType = "emergency"
	AppointmentTypeTeleconsultation AppointmentType = "teleconsultation"
)

type Appointment struct {
	Base
	PatientID       uuid.UUID         `db:"patient_id" json:"patientId"`
	DoctorID        uuid.UUID         `db:"doctor_id" json:"doctorId"`
	AppointmentDate Date              `db:"appointment_date" json:"appointmentDate"`
	AppointmentTime string            `db:"appointment_time" json:"appointmentTime"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Type            AppointmentType   `db:"type" json:"type"`
	ChiefComplaint  string            `db:"chief_complaint" json:"chiefComplaint,omitempty"`
	AssignedBy      uuid.NullUUID     `db:"assigned_by" json:"assignedBy"`
	QueueNumber     *int              `db:"queue_number" json:"queueNumber,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID       `json:"patientId" binding:"required"`
	DoctorID        uuid.UUID       `json:"doctorId" binding:"required"`
	AppointmentDate *Date           `json:"appointmentDate" binding:"required"`
	AppointmentTime string          `json:"appointmentTime" binding:"required,hhmm"`
	Type            AppointmentType `json:"type" binding:"omitempty,oneof=walk-in scheduled emergency teleconsultation"`
	ChiefComplaint  string          `json:"chiefComplaint"`
	QueueNumber     *int            `json:"queueNumber" binding:"omitempty,min=0"`
}

// UpdateAppointmentRequest carries the fields to merge. Status changes are not
// checked against the lifecycle; a cancelled appointment may be reopened.
type UpdateAppointmentRequest struct {
	DoctorID        *uuid.UUID         `json:"doctorId"`
	AppointmentDate *Date              `json:"appointmentDate"`
	AppointmentTime *string            `json:"appointmentTime" binding:"omitempty,hhmm"`
	Status          *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled"`
	Type            *AppointmentType   `json:"type" binding:"omitempty,oneof=walk-in scheduled emergency teleconsultation"`
	ChiefComplaint  *string            `json:"chiefComplaint"`
	QueueNumber     *int               `json:"queueNumber" binding:"omitempty,min=0"`
}
