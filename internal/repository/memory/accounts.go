package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
)

type patientRepository struct{ s *Store }

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (err error) {
	r.s.write(func() {
		if r.s.patients.find(func(p *model.Patient) bool { return p.Email == patient.Email }) != nil {
			err = repository.ErrDuplicate
			return
		}
		r.s.patients.insert(patient.ID, *patient)
	})
	return err
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (p *model.Patient, err error) {
	r.s.read(func() { p, err = r.s.patients.get(id) })
	return p, err
}

func (r *patientRepository) GetByEmail(ctx context.Context, email string) (p *model.Patient, err error) {
	r.s.read(func() {
		if p = r.s.patients.find(func(p *model.Patient) bool { return p.Email == email }); p == nil {
			err = repository.ErrNotFound
		}
	})
	return p, err
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (err error) {
	r.s.write(func() {
		if r.s.patients.find(func(p *model.Patient) bool { return p.Email == patient.Email && p.ID != patient.ID }) != nil {
			err = repository.ErrDuplicate
			return
		}
		err = r.s.patients.replace(patient.ID, *patient)
	})
	return err
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	r.s.write(func() { err = r.s.patients.remove(id) })
	return err
}

func (r *patientRepository) List(ctx context.Context) (out []*model.Patient, err error) {
	r.s.read(func() {
		out = r.s.patients.filter(nil, func(a, b *model.Patient) bool { return a.CreatedAt.After(b.CreatedAt) })
	})
	return out, nil
}

type staffRepository struct{ s *Store }

func (r *staffRepository) Create(ctx context.Context, staff *model.ClinicStaff) (err error) {
	r.s.write(func() {
		if r.s.staff.find(func(c *model.ClinicStaff) bool { return c.Email == staff.Email }) != nil {
			err = repository.ErrDuplicate
			return
		}
		r.s.staff.insert(staff.ID, *staff)
	})
	return err
}

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (c *model.ClinicStaff, err error) {
	r.s.read(func() { c, err = r.s.staff.get(id) })
	return c, err
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (c *model.ClinicStaff, err error) {
	r.s.read(func() {
		if c = r.s.staff.find(func(c *model.ClinicStaff) bool { return c.Email == email }); c == nil {
			err = repository.ErrNotFound
		}
	})
	return c, err
}

func (r *staffRepository) ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (exists bool, err error) {
	r.s.read(func() {
		exists = r.s.staff.find(func(c *model.ClinicStaff) bool {
			return c.Email == email || c.ClinicRegistrationNumber == registrationNumber
		}) != nil
	})
	return exists, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.ClinicStaff) (err error) {
	r.s.write(func() {
		if r.s.staff.find(func(c *model.ClinicStaff) bool { return c.Email == staff.Email && c.ID != staff.ID }) != nil {
			err = repository.ErrDuplicate
			return
		}
		err = r.s.staff.replace(staff.ID, *staff)
	})
	return err
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	r.s.write(func() { err = r.s.staff.remove(id) })
	return err
}

func (r *staffRepository) List(ctx context.Context) (out []*model.ClinicStaff, err error) {
	r.s.read(func() {
		out = r.s.staff.filter(nil, func(a, b *model.ClinicStaff) bool { return a.CreatedAt.After(b.CreatedAt) })
	})
	return out, nil
}

type adminRepository struct{ s *Store }

func (r *adminRepository) conflict(admin *model.Administrator) bool {
	return r.s.admins.find(func(a *model.Administrator) bool {
		return a.ID != admin.ID && (a.Email == admin.Email || a.CompanyID == admin.CompanyID)
	}) != nil
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Administrator) (err error) {
	r.s.write(func() {
		if r.conflict(admin) {
			err = repository.ErrDuplicate
			return
		}
		r.s.admins.insert(admin.ID, *admin)
	})
	return err
}

func (r *adminRepository) Get(ctx context.Context, id uuid.UUID) (a *model.Administrator, err error) {
	r.s.read(func() { a, err = r.s.admins.get(id) })
	return a, err
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (a *model.Administrator, err error) {
	r.s.read(func() {
		if a = r.s.admins.find(func(a *model.Administrator) bool { return a.Email == email }); a == nil {
			err = repository.ErrNotFound
		}
	})
	return a, err
}

func (r *adminRepository) ExistsByEmailOrCompanyID(ctx context.Context, email, companyID string) (exists bool, err error) {
	r.s.read(func() {
		exists = r.s.admins.find(func(a *model.Administrator) bool {
			return a.Email == email || a.CompanyID == companyID
		}) != nil
	})
	return exists, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *model.Administrator) (err error) {
	r.s.write(func() {
		if r.conflict(admin) {
			err = repository.ErrDuplicate
			return
		}
		err = r.s.admins.replace(admin.ID, *admin)
	})
	return err
}

func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	r.s.write(func() { err = r.s.admins.remove(id) })
	return err
}

func (r *adminRepository) List(ctx context.Context) (out []*model.Administrator, err error) {
	r.s.read(func() {
		out = r.s.admins.filter(nil, func(a, b *model.Administrator) bool { return a.CreatedAt.After(b.CreatedAt) })
	})
	return out, nil
}
