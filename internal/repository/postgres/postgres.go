package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/healthone/clinic-api/internal/repository"
)

type patientRepository struct{ BaseRepository }

type staffRepository struct{ BaseRepository }

type adminRepository struct{ BaseRepository }

type appointmentRepository struct{ BaseRepository }

type consultationRepository struct{ BaseRepository }

type prescriptionRepository struct{ BaseRepository }

type labTestRepository struct{ BaseRepository }

type vitalsRepository struct{ BaseRepository }

type medicationLogRepository struct{ BaseRepository }

type billingRepository struct{ BaseRepository }

type patientRecordRepository struct{ BaseRepository }

type communicationRepository struct{ BaseRepository }

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func NewStaffRepository(base BaseRepository) repository.StaffRepository {
	return &staffRepository{base}
}

func NewAdminRepository(base BaseRepository) repository.AdminRepository {
	return &adminRepository{base}
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

func NewConsultationRepository(base BaseRepository) repository.ConsultationRepository {
	return &consultationRepository{base}
}

func NewPrescriptionRepository(base BaseRepository) repository.PrescriptionRepository {
	return &prescriptionRepository{base}
}

func NewLabTestRepository(base BaseRepository) repository.LabTestRepository {
	return &labTestRepository{base}
}

func NewVitalsRepository(base BaseRepository) repository.VitalsRepository {
	return &vitalsRepository{base}
}

func NewMedicationLogRepository(base BaseRepository) repository.MedicationLogRepository {
	return &medicationLogRepository{base}
}

func NewBillingRepository(base BaseRepository) repository.BillingRepository {
	return &billingRepository{base}
}

func NewPatientRecordRepository(base BaseRepository) repository.PatientRecordRepository {
	return &patientRecordRepository{base}
}

func NewCommunicationRepository(base BaseRepository) repository.CommunicationRepository {
	return &communicationRepository{base}
}

// NewStore wires every repository onto one connection pool.
func NewStore(db *sqlx.DB) repository.Store {
	base := NewBaseRepository(db)
	return repository.Store{
		Patients:       NewPatientRepository(base),
		Staff:          NewStaffRepository(base),
		Admins:         NewAdminRepository(base),
		Appointments:   NewAppointmentRepository(base),
		Consultations:  NewConsultationRepository(base),
		Prescriptions:  NewPrescriptionRepository(base),
		LabTests:       NewLabTestRepository(base),
		Vitals:         NewVitalsRepository(base),
		MedicationLogs: NewMedicationLogRepository(base),
		Billing:        NewBillingRepository(base),
		PatientRecords: NewPatientRecordRepository(base),
		Communications: NewCommunicationRepository(base),
		Health:         db,
	}
}
