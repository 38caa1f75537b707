package model

import (
	"time"

	"github.com/google/uuid"
)

type LabTestStatus string

const (
	LabTestStatusOrdered         LabTestStatus = "ordered"
	LabTestStatusSampleCollected LabTestStatus = "sample-collected"
	LabTestStatusInLab           LabTestStatus = "in-lab"
	LabTestStatusCompleted       LabTestStatus = "completed"
)

type LabTest struct {
	Base
	PatientID         uuid.UUID     `db:"patient_id" json:"patientId"`
	OrderedBy         uuid.NullUUID `db:"ordered_by" json:"orderedBy"`
	TestName          string        `db:"test_name" json:"testName"`
	TestType          string        `db:"test_type" json:"testType"`
	Status            LabTestStatus `db:"status" json:"status"`
	SampleCollectedBy uuid.NullUUID `db:"sample_collected_by" json:"sampleCollectedBy"`
	Results           string        `db:"results" json:"results"`
	ResultFile        string        `db:"result_file" json:"resultFile,omitempty"`
	DoctorComments    string        `db:"doctor_comments" json:"doctorComments"`
	OrderedAt         time.Time     `db:"ordered_at" json:"orderedAt"`
	SampleCollectedAt *time.Time    `db:"sample_collected_at" json:"sampleCollectedAt,omitempty"`
	CompletedAt       *time.Time    `db:"completed_at" json:"completedAt,omitempty"`
}

type OrderLabTestRequest struct {
	PatientID uuid.UUID `json:"patientId" binding:"required"`
	TestName  string    `json:"testName" binding:"required"`
	TestType  string    `json:"testType" binding:"required"`
}

type LabResultsRequest struct {
	Results        string `json:"results"`
	DoctorComments string `json:"doctorComments"`
	ResultFile     string `json:"resultFile"`
}
