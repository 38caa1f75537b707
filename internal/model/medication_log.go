package model

import (
	"time"

	"github.com/google/uuid"
)

type MedicationRoute string

const (
	RouteOral      MedicationRoute = "oral"
	RouteInjection MedicationRoute = "injection"
	RouteIV        MedicationRoute = "IV"
	RouteTopical   MedicationRoute = "topical"
	RouteOther     MedicationRoute = "other"
)

// MedicationLog records one administered dose.
type MedicationLog struct {
	Base
	PatientID      uuid.UUID       `db:"patient_id" json:"patientId"`
	PrescriptionID uuid.UUID       `db:"prescription_id" json:"prescriptionId"`
	AdministeredBy uuid.NullUUID   `db:"administered_by" json:"administeredBy"`
	MedicationName string          `db:"medication_name" json:"medicationName"`
	DosageGiven    string          `db:"dosage_given" json:"dosageGiven"`
	AdministeredAt time.Time       `db:"administered_at" json:"administeredAt"`
	Notes          string          `db:"notes" json:"notes"`
	Route          MedicationRoute `db:"route" json:"route"`
}

type CreateMedicationLogRequest struct {
	PatientID      uuid.UUID       `json:"patientId" binding:"required"`
	PrescriptionID uuid.UUID       `json:"prescriptionId" binding:"required"`
	MedicationName string          `json:"medicationName" binding:"required"`
	DosageGiven    string          `json:"dosageGiven" binding:"required"`
	AdministeredAt *time.Time      `json:"administeredAt"`
	Notes          string          `json:"notes"`
	Route          MedicationRoute `json:"route" binding:"omitempty,oneof=oral injection IV topical other"`
}
