package model

import (
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BloodTypes lists the accepted blood groups. Empty means unknown.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func ValidBloodType(s string) bool {
	if s == "" {
		return true
	}
	for _, bt := range BloodTypes {
		if bt == s {
			return true
		}
	}
	return false
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

func (e EmergencyContact) Value() (driver.Value, error) {
	type plain EmergencyContact
	return jsonValue(plain(e))
}

func (e *EmergencyContact) Scan(src interface{}) error {
	type plain EmergencyContact
	return scanJSON(src, (*plain)(e))
}

type Insurance struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
	ValidUntil   *Date  `json:"validUntil,omitempty"`
}

func (i Insurance) Value() (driver.Value, error) {
	type plain Insurance
	return jsonValue(plain(i))
}

func (i *Insurance) Scan(src interface{}) error {
	type plain Insurance
	return scanJSON(src, (*plain)(i))
}

type PatientRecord struct {
	Base
	PatientID        uuid.UUID        `db:"patient_id" json:"patientId"`
	MedicalHistory   string           `db:"medical_history" json:"medicalHistory"`
	Allergies        pq.StringArray   `db:"allergies" json:"allergies"`
	BloodType        string           `db:"blood_type" json:"bloodType"`
	EmergencyContact EmergencyContact `db:"emergency_contact" json:"emergencyContact"`
	Insurance        Insurance        `db:"insurance" json:"insurance"`
	CreatedBy        uuid.NullUUID    `db:"created_by" json:"createdBy"`
}

type CreatePatientRecordRequest struct {
	PatientID        uuid.UUID         `json:"patientId" binding:"required"`
	MedicalHistory   string            `json:"medicalHistory"`
	Allergies        []string          `json:"allergies"`
	BloodType        string            `json:"bloodType" binding:"bloodtype"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	Insurance        *Insurance        `json:"insurance"`
}

type UpdatePatientRecordRequest struct {
	MedicalHistory   *string           `json:"medicalHistory"`
	Allergies        []string          `json:"allergies"`
	BloodType        *string           `json:"bloodType" binding:"omitempty,bloodtype"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	Insurance        *Insurance        `json:"insurance"`
}
