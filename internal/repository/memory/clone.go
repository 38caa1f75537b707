package memory

import (
	"slices"

	"github.com/healthone/clinic-api/internal/model"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneAppointment(a model.Appointment) model.Appointment {
	a.QueueNumber = clonePtr(a.QueueNumber)
	return a
}

func cloneConsultation(c model.Consultation) model.Consultation {
	c.Diagnosis = slices.Clone(c.Diagnosis)
	c.UploadedReports = slices.Clone(c.UploadedReports)
	c.CompletedAt = clonePtr(c.CompletedAt)
	return c
}

func clonePrescription(p model.Prescription) model.Prescription {
	p.Medications = slices.Clone(p.Medications)
	p.ValidUntil = clonePtr(p.ValidUntil)
	return p
}

func cloneLabTest(t model.LabTest) model.LabTest {
	t.SampleCollectedAt = clonePtr(t.SampleCollectedAt)
	t.CompletedAt = clonePtr(t.CompletedAt)
	return t
}

func cloneVitals(v model.Vitals) model.Vitals {
	v.Weight = clonePtr(v.Weight)
	v.Height = clonePtr(v.Height)
	v.BMI = clonePtr(v.BMI)
	return v
}

func cloneBilling(b model.Billing) model.Billing {
	b.Items = slices.Clone(b.Items)
	return b
}

func clonePatientRecord(r model.PatientRecord) model.PatientRecord {
	r.Allergies = slices.Clone(r.Allergies)
	r.Insurance.ValidUntil = clonePtr(r.Insurance.ValidUntil)
	return r
}

func cloneCommunication(m model.Communication) model.Communication {
	m.ReadAt = clonePtr(m.ReadAt)
	return m
}
