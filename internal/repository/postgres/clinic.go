package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

// staffRow is the flat storage shape of model.ClinicStaff; the license
// variant is spread over user_type and three nullable identifier columns.
type staffRow struct {
	ID                       uuid.UUID `db:"id"`
	ClinicName               string    `db:"clinic_name"`
	UserName                 string    `db:"user_name"`
	ContactName              string    `db:"contact_name"`
	Email                    string    `db:"email"`
	PasswordHash             string    `db:"password_hash"`
	ClinicRegistrationNumber string    `db:"clinic_registration_number"`
	UserType                 string    `db:"user_type"`
	NMRNumber                *string   `db:"nmr_number"`
	NUID                     *string   `db:"nuid"`
	EmployeeCode             *string   `db:"employee_code"`
	CreatedAt                time.Time `db:"created_at"`
	UpdatedAt                time.Time `db:"updated_at"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newStaffRow(s *model.ClinicStaff) staffRow {
	nmr, nuid, code := model.LicenseFields(s.License)
	return staffRow{
		ID:                       s.ID,
		ClinicName:               s.ClinicName,
		UserName:                 s.UserName,
		ContactName:              s.ContactName,
		Email:                    s.Email,
		PasswordHash:             s.PasswordHash,
		ClinicRegistrationNumber: s.ClinicRegistrationNumber,
		UserType:                 string(s.SubRole()),
		NMRNumber:                optional(nmr),
		NUID:                     optional(nuid),
		EmployeeCode:             optional(code),
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	}
}

func (row staffRow) toModel() (*model.ClinicStaff, error) {
	license, err := model.NewLicense(model.SubRole(row.UserType), deref(row.NMRNumber), deref(row.NUID), deref(row.EmployeeCode))
	if err != nil {
		return nil, err
	}
	return &model.ClinicStaff{
		Base:                     model.Base{ID: row.ID, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt},
		ClinicName:               row.ClinicName,
		UserName:                 row.UserName,
		ContactName:              row.ContactName,
		Email:                    row.Email,
		PasswordHash:             row.PasswordHash,
		ClinicRegistrationNumber: row.ClinicRegistrationNumber,
		License:                  license,
	}, nil
}

const staffColumns = `id, clinic_name, user_name, contact_name, email, password_hash,
	clinic_registration_number, user_type, nmr_number, nuid, employee_code, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, staff *model.ClinicStaff) error {
	query := `
		INSERT INTO clinic_staff (` + staffColumns + `)
		VALUES (:id, :clinic_name, :user_name, :contact_name, :email, :password_hash,
			:clinic_registration_number, :user_type, :nmr_number, :nuid, :employee_code, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, newStaffRow(staff))
	return mapError("create clinic staff", err)
}

func (r *staffRepository) getOne(ctx context.Context, op, where string, arg interface{}) (*model.ClinicStaff, error) {
	var row staffRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+staffColumns+` FROM clinic_staff WHERE `+where, arg); err != nil {
		return nil, mapError(op, err)
	}
	staff, err := row.toModel()
	if err != nil {
		return nil, mapError(op, err)
	}
	return staff, nil
}

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (*model.ClinicStaff, error) {
	return r.getOne(ctx, "get clinic staff", "id = $1", id)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*model.ClinicStaff, error) {
	return r.getOne(ctx, "get clinic staff by email", "email = $1", email)
}

func (r *staffRepository) ExistsByEmailOrRegistration(ctx context.Context, email, registrationNumber string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM clinic_staff
			WHERE email = $1 OR clinic_registration_number = $2
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email, registrationNumber); err != nil {
		return false, mapError("check clinic staff", err)
	}
	return exists, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.ClinicStaff) error {
	query := `
		UPDATE clinic_staff
		SET clinic_name = :clinic_name, user_name = :user_name, contact_name = :contact_name,
			email = :email, password_hash = :password_hash,
			clinic_registration_number = :clinic_registration_number, user_type = :user_type,
			nmr_number = :nmr_number, nuid = :nuid, employee_code = :employee_code,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, newStaffRow(staff))
	return expectAffected("update clinic staff", result, err)
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clinic_staff WHERE id = $1`, id)
	return expectAffected("delete clinic staff", result, err)
}

func (r *staffRepository) List(ctx context.Context) ([]*model.ClinicStaff, error) {
	var rows []staffRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+staffColumns+` FROM clinic_staff ORDER BY created_at DESC`); err != nil {
		return nil, mapError("list clinic staff", err)
	}
	staff := make([]*model.ClinicStaff, 0, len(rows))
	for _, row := range rows {
		s, err := row.toModel()
		if err != nil {
			return nil, mapError("list clinic staff", err)
		}
		staff = append(staff, s)
	}
	return staff, nil
}
