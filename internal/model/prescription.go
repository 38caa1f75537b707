package model

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

type PrescriptionStatus string

const (
	PrescriptionStatusActive          PrescriptionStatus = "active"
	PrescriptionStatusCompleted       PrescriptionStatus = "completed"
	PrescriptionStatusRefillRequested PrescriptionStatus = "refill-requested"
)

type Medication struct {
	DrugName     string `json:"drugName" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	Instructions string `json:"instructions"`
}

// Medications is stored as a JSONB array, preserving order.
type Medications []Medication

func (m Medications) Value() (driver.Value, error) {
	if m == nil {
		m = Medications{}
	}
	return jsonValue([]Medication(m))
}

func (m *Medications) Scan(src interface{}) error {
	return scanJSON(src, (*[]Medication)(m))
}

type Prescription struct {
	Base
	PatientID        uuid.UUID          `db:"patient_id" json:"patientId"`
	DoctorID         uuid.NullUUID      `db:"doctor_id" json:"doctorId"`
	ConsultationID   uuid.NullUUID      `db:"consultation_id" json:"consultationId"`
	Medications      Medications        `db:"medications" json:"medications"`
	DigitalSignature string             `db:"digital_signature" json:"digitalSignature,omitempty"`
	Status           PrescriptionStatus `db:"status" json:"status"`
	ValidUntil       *Date              `db:"valid_until" json:"validUntil,omitempty"`
}

type CreatePrescriptionRequest struct {
	PatientID        uuid.UUID    `json:"patientId" binding:"required"`
	DoctorID         *uuid.UUID   `json:"doctorId"`
	ConsultationID   *uuid.UUID   `json:"consultationId"`
	Medications      []Medication `json:"medications" binding:"required,min=1,dive"`
	DigitalSignature string       `json:"digitalSignature"`
	ValidUntil       *Date        `json:"validUntil"`
}

type UpdatePrescriptionRequest struct {
	DoctorID         *uuid.UUID          `json:"doctorId"`
	ConsultationID   *uuid.UUID          `json:"consultationId"`
	Medications      []Medication        `json:"medications" binding:"omitempty,dive"`
	DigitalSignature *string             `json:"digitalSignature"`
	Status           *PrescriptionStatus `json:"status" binding:"omitempty,oneof=active completed refill-requested"`
	ValidUntil       *Date               `json:"validUntil"`
}
