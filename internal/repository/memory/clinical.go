package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
)

type appointmentRepository struct{ s *Store }

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.s.write(func() { r.s.appointments.insert(appointment.ID, *appointment) })
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (a *model.Appointment, err error) {
	r.s.read(func() { a, err = r.s.appointments.get(id) })
	return a, err
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) (err error) {
	r.s.write(func() { err = r.s.appointments.replace(appointment.ID, *appointment) })
	return err
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) (out []*model.Appointment, err error) {
	r.s.read(func() {
		out = r.s.appointments.filter(
			func(a *model.Appointment) bool { return a.DoctorID == doctorID },
			func(a, b *model.Appointment) bool {
				if !a.AppointmentDate.Equal(b.AppointmentDate.Time) {
					return a.AppointmentDate.Before(b.AppointmentDate.Time)
				}
				return a.AppointmentTime < b.AppointmentTime
			},
		)
	})
	return out, nil
}

func (r *appointmentRepository) ListByDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time) (out []*model.Appointment, err error) {
	r.s.read(func() {
		out = r.s.appointments.filter(
			func(a *model.Appointment) bool {
				d := a.AppointmentDate.Time
				return a.DoctorID == doctorID && !d.Before(from) && d.Before(to)
			},
			func(a, b *model.Appointment) bool { return a.AppointmentTime < b.AppointmentTime },
		)
	})
	return out, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.Appointment, err error) {
	r.s.read(func() {
		out = r.s.appointments.filter(
			func(a *model.Appointment) bool { return a.PatientID == patientID },
			func(a, b *model.Appointment) bool { return a.AppointmentDate.After(b.AppointmentDate.Time) },
		)
	})
	return out, nil
}

// setAppointmentStatus ignores unknown appointments; references are not
// validated. Callers hold the write lock.
func (s *Store) setAppointmentStatus(id uuid.UUID, status model.AppointmentStatus, now time.Time) {
	if a, ok := s.appointments.rows[id]; ok {
		a.Status = status
		a.UpdatedAt = now
		s.appointments.rows[id] = a
	}
}

type consultationRepository struct{ s *Store }

func (r *consultationRepository) Start(ctx context.Context, consultation *model.Consultation) error {
	r.s.write(func() {
		r.s.setAppointmentStatus(consultation.AppointmentID, model.AppointmentStatusInProgress, consultation.CreatedAt)
		r.s.consultations.insert(consultation.ID, *consultation)
	})
	return nil
}

func (r *consultationRepository) Get(ctx context.Context, id uuid.UUID) (c *model.Consultation, err error) {
	r.s.read(func() { c, err = r.s.consultations.get(id) })
	return c, err
}

func (r *consultationRepository) Update(ctx context.Context, consultation *model.Consultation) (err error) {
	r.s.write(func() { err = r.s.consultations.replace(consultation.ID, *consultation) })
	return err
}

func (r *consultationRepository) Complete(ctx context.Context, consultation *model.Consultation) (err error) {
	r.s.write(func() {
		if err = r.s.consultations.replace(consultation.ID, *consultation); err != nil {
			return
		}
		r.s.setAppointmentStatus(consultation.AppointmentID, model.AppointmentStatusCompleted, consultation.UpdatedAt)
	})
	return err
}

func (r *consultationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.Consultation, err error) {
	r.s.read(func() {
		out = r.s.consultations.filter(
			func(c *model.Consultation) bool { return c.PatientID == patientID },
			func(a, b *model.Consultation) bool { return a.CreatedAt.After(b.CreatedAt) },
		)
	})
	return out, nil
}

func (r *consultationRepository) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (c *model.Consultation, err error) {
	r.s.read(func() {
		matches := r.s.consultations.filter(
			func(c *model.Consultation) bool { return c.AppointmentID == appointmentID },
			func(a, b *model.Consultation) bool { return a.CreatedAt.After(b.CreatedAt) },
		)
		if len(matches) == 0 {
			err = repository.ErrNotFound
			return
		}
		c = matches[0]
	})
	return c, err
}

type prescriptionRepository struct{ s *Store }

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	r.s.write(func() { r.s.prescriptions.insert(prescription.ID, *prescription) })
	return nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id uuid.UUID) (p *model.Prescription, err error) {
	r.s.read(func() { p, err = r.s.prescriptions.get(id) })
	return p, err
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *model.Prescription) (err error) {
	r.s.write(func() { err = r.s.prescriptions.replace(prescription.ID, *prescription) })
	return err
}

func (r *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	r.s.write(func() { err = r.s.prescriptions.remove(id) })
	return err
}

func newestPrescription(a, b *model.Prescription) bool { return a.CreatedAt.After(b.CreatedAt) }

func (r *prescriptionRepository) List(ctx context.Context) (out []*model.Prescription, err error) {
	r.s.read(func() { out = r.s.prescriptions.filter(nil, newestPrescription) })
	return out, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.Prescription, err error) {
	r.s.read(func() {
		out = r.s.prescriptions.filter(
			func(p *model.Prescription) bool { return p.PatientID == patientID },
			newestPrescription,
		)
	})
	return out, nil
}

type labTestRepository struct{ s *Store }

func (r *labTestRepository) Create(ctx context.Context, test *model.LabTest) error {
	r.s.write(func() { r.s.labTests.insert(test.ID, *test) })
	return nil
}

func (r *labTestRepository) Get(ctx context.Context, id uuid.UUID) (t *model.LabTest, err error) {
	r.s.read(func() { t, err = r.s.labTests.get(id) })
	return t, err
}

func (r *labTestRepository) Update(ctx context.Context, test *model.LabTest) (err error) {
	r.s.write(func() { err = r.s.labTests.replace(test.ID, *test) })
	return err
}

func newestOrder(a, b *model.LabTest) bool { return a.OrderedAt.After(b.OrderedAt) }

func (r *labTestRepository) ListPending(ctx context.Context) (out []*model.LabTest, err error) {
	r.s.read(func() {
		out = r.s.labTests.filter(
			func(t *model.LabTest) bool { return t.Status != model.LabTestStatusCompleted },
			newestOrder,
		)
	})
	return out, nil
}

func (r *labTestRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.LabTest, err error) {
	r.s.read(func() {
		out = r.s.labTests.filter(func(t *model.LabTest) bool { return t.PatientID == patientID }, newestOrder)
	})
	return out, nil
}

type vitalsRepository struct{ s *Store }

func (r *vitalsRepository) Create(ctx context.Context, vitals *model.Vitals) error {
	r.s.write(func() { r.s.vitals.insert(vitals.ID, *vitals) })
	return nil
}

func newestVitals(a, b *model.Vitals) bool { return a.RecordedAt.After(b.RecordedAt) }

func (r *vitalsRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.Vitals, err error) {
	r.s.read(func() {
		out = r.s.vitals.filter(func(v *model.Vitals) bool { return v.PatientID == patientID }, newestVitals)
	})
	return out, nil
}

func (r *vitalsRepository) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (v *model.Vitals, err error) {
	r.s.read(func() {
		matches := r.s.vitals.filter(func(v *model.Vitals) bool {
			return v.AppointmentID.Valid && v.AppointmentID.UUID == appointmentID
		}, newestVitals)
		if len(matches) == 0 {
			err = repository.ErrNotFound
			return
		}
		v = matches[0]
	})
	return v, err
}

type medicationLogRepository struct{ s *Store }

func (r *medicationLogRepository) Create(ctx context.Context, log *model.MedicationLog) error {
	r.s.write(func() { r.s.medicationLogs.insert(log.ID, *log) })
	return nil
}

func (r *medicationLogRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.MedicationLog, err error) {
	r.s.read(func() {
		out = r.s.medicationLogs.filter(
			func(l *model.MedicationLog) bool { return l.PatientID == patientID },
			func(a, b *model.MedicationLog) bool { return a.AdministeredAt.After(b.AdministeredAt) },
		)
	})
	return out, nil
}

type billingRepository struct{ s *Store }

func (r *billingRepository) Create(ctx context.Context, billing *model.Billing) (err error) {
	r.s.write(func() {
		if r.s.billing.find(func(b *model.Billing) bool { return b.InvoiceNumber == billing.InvoiceNumber }) != nil {
			err = repository.ErrDuplicate
			return
		}
		r.s.billing.insert(billing.ID, *billing)
	})
	return err
}

func (r *billingRepository) Get(ctx context.Context, id uuid.UUID) (b *model.Billing, err error) {
	r.s.read(func() { b, err = r.s.billing.get(id) })
	return b, err
}

func (r *billingRepository) Update(ctx context.Context, billing *model.Billing) (err error) {
	r.s.write(func() { err = r.s.billing.replace(billing.ID, *billing) })
	return err
}

func (r *billingRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) (out []*model.Billing, err error) {
	r.s.read(func() {
		out = r.s.billing.filter(
			func(b *model.Billing) bool { return b.PatientID == patientID },
			func(a, b *model.Billing) bool { return a.CreatedAt.After(b.CreatedAt) },
		)
	})
	return out, nil
}

func (r *billingRepository) NextInvoiceSequence(ctx context.Context) (int64, error) {
	return r.s.invoiceSeq.Add(1), nil
}

type patientRecordRepository struct{ s *Store }

func (r *patientRecordRepository) Create(ctx context.Context, record *model.PatientRecord) error {
	r.s.write(func() { r.s.patientRecords.insert(record.ID, *record) })
	return nil
}

func (r *patientRecordRepository) Get(ctx context.Context, id uuid.UUID) (rec *model.PatientRecord, err error) {
	r.s.read(func() { rec, err = r.s.patientRecords.get(id) })
	return rec, err
}

func (r *patientRecordRepository) Update(ctx context.Context, record *model.PatientRecord) (err error) {
	r.s.write(func() { err = r.s.patientRecords.replace(record.ID, *record) })
	return err
}

func (r *patientRecordRepository) GetByPatient(ctx context.Context, patientID uuid.UUID) (rec *model.PatientRecord, err error) {
	r.s.read(func() {
		matches := r.s.patientRecords.filter(
			func(p *model.PatientRecord) bool { return p.PatientID == patientID },
			func(a, b *model.PatientRecord) bool { return a.CreatedAt.After(b.CreatedAt) },
		)
		if len(matches) == 0 {
			err = repository.ErrNotFound
			return
		}
		rec = matches[0]
	})
	return rec, err
}

type communicationRepository struct{ s *Store }

func (r *communicationRepository) Create(ctx context.Context, message *model.Communication) error {
	r.s.write(func() { r.s.communications.insert(message.ID, *message) })
	return nil
}

func (r *communicationRepository) Get(ctx context.Context, id uuid.UUID) (m *model.Communication, err error) {
	r.s.read(func() { m, err = r.s.communications.get(id) })
	return m, err
}

func (r *communicationRepository) Update(ctx context.Context, message *model.Communication) (err error) {
	r.s.write(func() { err = r.s.communications.replace(message.ID, *message) })
	return err
}

func (r *communicationRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) (out []*model.Communication, err error) {
	r.s.read(func() {
		out = r.s.communications.filter(
			func(m *model.Communication) bool { return m.ReceiverID == receiverID },
			func(a, b *model.Communication) bool { return a.CreatedAt.After(b.CreatedAt) },
		)
	})
	return out, nil
}

func (r *communicationRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (count int, err error) {
	r.s.read(func() {
		count = len(r.s.communications.filter(func(m *model.Communication) bool {
			return m.ReceiverID == receiverID && !m.ReadStatus
		}, nil))
	})
	return count, nil
}
