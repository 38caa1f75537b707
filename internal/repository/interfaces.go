package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("record already exists")
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		GetByEmail(ctx context.Context, email string) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.ClinicStaff) error
		Get(ctx context.Context, id uuid.UUID) (*model.ClinicStaff, error)
		GetByEmail(ctx context.Context, email string) (*model.ClinicStaff, error)
		ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (bool, error)
		Update(ctx context.Context, staff *model.ClinicStaff) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.ClinicStaff, error)
	}

	AdminRepository interface {
		Create(ctx context.Context, admin *model.Administrator) error
		Get(ctx context.Context, id uuid.UUID) (*model.Administrator, error)
		GetByEmail(ctx context.Context, email string) (*model.Administrator, error)
		ExistsByEmailOrCompanyID(ctx context.Context, email, companyID string) (bool, error)
		Update(ctx context.Context, admin *model.Administrator) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Administrator, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		// ListByDoctor orders by date then time, ascending.
		ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error)
		// ListByDoctorBetween returns appointments with from <= date < to, by time.
		ListByDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*model.Appointment, error)
		// ListByPatient orders by date, newest first.
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
	}

	ConsultationRepository interface {
		// Start inserts the consultation and moves its appointment to in-progress.
		Start(ctx context.Context, consultation *model.Consultation) error
		Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error)
		Update(ctx context.Context, consultation *model.Consultation) error
		// Complete saves the consultation and completes its appointment.
		Complete(ctx context.Context, consultation *model.Consultation) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Consultation, error)
		GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*model.Consultation, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
		Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error)
		Update(ctx context.Context, prescription *model.Prescription) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Prescription, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Prescription, error)
	}

	LabTestRepository interface {
		Create(ctx context.Context, test *model.LabTest) error
		Get(ctx context.Context, id uuid.UUID) (*model.LabTest, error)
		Update(ctx context.Context, test *model.LabTest) error
		ListPending(ctx context.Context) ([]*model.LabTest, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.LabTest, error)
	}

	VitalsRepository interface {
		Create(ctx context.Context, vitals *model.Vitals) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Vitals, error)
		GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*model.Vitals, error)
	}

	MedicationLogRepository interface {
		Create(ctx context.Context, log *model.MedicationLog) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.MedicationLog, error)
	}

	BillingRepository interface {
		Create(ctx context.Context, billing *model.Billing) error
		Get(ctx context.Context, id uuid.UUID) (*model.Billing, error)
		Update(ctx context.Context, billing *model.Billing) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Billing, error)
		// NextInvoiceSequence returns a value never handed out before.
		NextInvoiceSequence(ctx context.Context) (int64, error)
	}

	PatientRecordRepository interface {
		Create(ctx context.Context, record *model.PatientRecord) error
		Get(ctx context.Context, id uuid.UUID) (*model.PatientRecord, error)
		Update(ctx context.Context, record *model.PatientRecord) error
		GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.PatientRecord, error)
	}

	CommunicationRepository interface {
		Create(ctx context.Context, message *model.Communication) error
		Get(ctx context.Context, id uuid.UUID) (*model.Communication, error)
		Update(ctx context.Context, message *model.Communication) error
		ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*model.Communication, error)
		CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error)
	}

	// Pinger reports storage reachability for readiness checks.
	Pinger interface {
		PingContext(ctx context.Context) error
	}
)

// Store groups the repositories of one storage backend.
type Store struct {
	Patients       PatientRepository
	Staff          StaffRepository
	Admins         AdminRepository
	Appointments   AppointmentRepository
	Consultations  ConsultationRepository
	Prescriptions  PrescriptionRepository
	LabTests       LabTestRepository
	Vitals         VitalsRepository
	MedicationLogs MedicationLogRepository
	Billing        BillingRepository
	PatientRecords PatientRecordRepository
	Communications CommunicationRepository
	Health         Pinger
}
