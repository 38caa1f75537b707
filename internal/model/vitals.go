package model

import (
	"database/sql/driver"
	"math"
	"time"

	"github.com/google/uuid"
)

type BloodPressure struct {
	Systolic  float64 `json:"systolic" binding:"required,gt=0"`
	Diastolic float64 `json:"diastolic" binding:"required,gt=0"`
}

func (b BloodPressure) Value() (driver.Value, error) {
	return jsonValue(struct {
		Systolic  float64 `json:"systolic"`
		Diastolic float64 `json:"diastolic"`
	}{b.Systolic, b.Diastolic})
}

func (b *BloodPressure) Scan(src interface{}) error {
	var v struct {
		Systolic  float64 `json:"systolic"`
		Diastolic float64 `json:"diastolic"`
	}
	if err := scanJSON(src, &v); err != nil {
		return err
	}
	b.Systolic, b.Diastolic = v.Systolic, v.Diastolic
	return nil
}

type Vitals struct {
	Base
	PatientID     uuid.UUID     `db:"patient_id" json:"patientId"`
	AppointmentID uuid.NullUUID `db:"appointment_id" json:"appointmentId"`
	RecordedBy    uuid.NullUUID `db:"recorded_by" json:"recordedBy"`
	BloodPressure BloodPressure `db:"blood_pressure" json:"bloodPressure"`
	Pulse         float64       `db:"pulse" json:"pulse"`
	Temperature   float64       `db:"temperature" json:"temperature"`
	OxygenLevel   float64       `db:"oxygen_level" json:"oxygenLevel"`
	Weight        *float64      `db:"weight" json:"weight,omitempty"`
	Height        *float64      `db:"height" json:"height,omitempty"`
	BMI           *float64      `db:"bmi" json:"bmi,omitempty"`
	Notes         string        `db:"notes" json:"notes,omitempty"`
	RecordedAt    time.Time     `db:"recorded_at" json:"recordedAt"`
}

// ComputeBMI returns weight(kg) / height(m)^2 rounded to two decimals, or nil
// when either measurement is missing.
func ComputeBMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}
	meters := *heightCm / 100
	bmi := math.Round(*weightKg/(meters*meters)*100) / 100
	return &bmi
}

// Recompute refreshes the derived fields.
func (v *Vitals) Recompute() {
	v.BMI = ComputeBMI(v.Weight, v.Height)
}

type RecordVitalsRequest struct {
	PatientID     uuid.UUID      `json:"patientId" binding:"required"`
	AppointmentID *uuid.UUID     `json:"appointmentId"`
	BloodPressure *BloodPressure `json:"bloodPressure" binding:"required"`
	Pulse         float64        `json:"pulse" binding:"required,gt=0"`
	Temperature   float64        `json:"temperature" binding:"required,gt=0"`
	OxygenLevel   float64        `json:"oxygenLevel" binding:"required,gt=0"`
	Weight        *float64       `json:"weight" binding:"omitempty,gt=0"`
	Height        *float64       `json:"height" binding:"omitempty,gt=0"`
	Notes         string         `json:"notes"`
}
