package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const adminColumns = `id, name, email, password_hash, company_name, company_id, role, created_at, updated_at`

func (r *adminRepository) Create(ctx context.Context, admin *model.Administrator) error {
	query := `
		INSERT INTO administrators (` + adminColumns + `)
		VALUES (:id, :name, :email, :password_hash, :company_name, :company_id, :role, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, admin)
	return mapError("create admin", err)
}

func (r *adminRepository) Get(ctx context.Context, id uuid.UUID) (*model.Administrator, error) {
	var admin model.Administrator
	if err := r.db.GetContext(ctx, &admin, `SELECT `+adminColumns+` FROM administrators WHERE id = $1`, id); err != nil {
		return nil, mapError("get admin", err)
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Administrator, error) {
	var admin model.Administrator
	if err := r.db.GetContext(ctx, &admin, `SELECT `+adminColumns+` FROM administrators WHERE email = $1`, email); err != nil {
		return nil, mapError("get admin by email", err)
	}
	return &admin, nil
}

func (r *adminRepository) ExistsByEmailOrCompanyID(ctx context.Context, email, companyID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM administrators WHERE email = $1 OR company_id = $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email, companyID); err != nil {
		return false, mapError("check admin", err)
	}
	return exists, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *model.Administrator) error {
	query := `
		UPDATE administrators
		SET name = :name, email = :email, password_hash = :password_hash,
			company_name = :company_name, company_id = :company_id, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, admin)
	return expectAffected("update admin", result, err)
}

func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM administrators WHERE id = $1`, id)
	return expectAffected("delete admin", result, err)
}

func (r *adminRepository) List(ctx context.Context) ([]*model.Administrator, error) {
	admins := []*model.Administrator{}
	if err := r.db.SelectContext(ctx, &admins, `SELECT `+adminColumns+` FROM administrators ORDER BY created_at DESC`); err != nil {
		return nil, mapError("list admins", err)
	}
	return admins, nil
}
