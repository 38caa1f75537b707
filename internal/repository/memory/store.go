// Package memory is an in-process storage backend used by tests and by the
// memory database driver. Rows are copied in and out so callers never share
// state with the store.
package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
)

// table keeps rows in insertion order so that sorts are stable on ties.
// clone detaches the slice and pointer fields of a row.
type table[T any] struct {
	rows  map[uuid.UUID]T
	order []uuid.UUID
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[uuid.UUID]T), clone: clone}
}

func (t *table[T]) insert(id uuid.UUID, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(v)
}

func (t *table[T]) get(id uuid.UUID) (*T, error) {
	v, ok := t.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v = t.clone(v)
	return &v, nil
}

func (t *table[T]) replace(id uuid.UUID, v T) error {
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	t.rows[id] = t.clone(v)
	return nil
}

func (t *table[T]) remove(id uuid.UUID) error {
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) find(match func(*T) bool) *T {
	for _, id := range t.order {
		v := t.rows[id]
		if match(&v) {
			v = t.clone(v)
			return &v
		}
	}
	return nil
}

// filter returns copies of matching rows sorted with less; a nil match keeps
// every row.
func (t *table[T]) filter(match func(*T) bool, less func(a, b *T) bool) []*T {
	out := []*T{}
	for _, id := range t.order {
		v := t.rows[id]
		if match == nil || match(&v) {
			v = t.clone(v)
			out = append(out, &v)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// Store holds every table behind one lock.
type Store struct {
	mu sync.RWMutex

	patients       *table[model.Patient]
	staff          *table[model.ClinicStaff]
	admins         *table[model.Administrator]
	appointments   *table[model.Appointment]
	consultations  *table[model.Consultation]
	prescriptions  *table[model.Prescription]
	labTests       *table[model.LabTest]
	vitals         *table[model.Vitals]
	medicationLogs *table[model.MedicationLog]
	billing        *table[model.Billing]
	patientRecords *table[model.PatientRecord]
	communications *table[model.Communication]

	invoiceSeq atomic.Int64
}

func NewStore() *Store {
	return &Store{
		patients:       newTable[model.Patient](nil),
		staff:          newTable[model.ClinicStaff](nil),
		admins:         newTable[model.Administrator](nil),
		appointments:   newTable(cloneAppointment),
		consultations:  newTable(cloneConsultation),
		prescriptions:  newTable(clonePrescription),
		labTests:       newTable(cloneLabTest),
		vitals:         newTable(cloneVitals),
		medicationLogs: newTable[model.MedicationLog](nil),
		billing:        newTable(cloneBilling),
		patientRecords: newTable(clonePatientRecord),
		communications: newTable(cloneCommunication),
	}
}

func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() repository.Store {
	return repository.Store{
		Patients:       &patientRepository{s},
		Staff:          &staffRepository{s},
		Admins:         &adminRepository{s},
		Appointments:   &appointmentRepository{s},
		Consultations:  &consultationRepository{s},
		Prescriptions:  &prescriptionRepository{s},
		LabTests:       &labTestRepository{s},
		Vitals:         &vitalsRepository{s},
		MedicationLogs: &medicationLogRepository{s},
		Billing:        &billingRepository{s},
		PatientRecords: &patientRecordRepository{s},
		Communications: &communicationRepository{s},
		Health:         s,
	}
}

// read and write run fn under the store lock.
func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

func (s *Store) write(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
