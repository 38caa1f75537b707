package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const labTestColumns = `id, patient_id, ordered_by, test_name, test_type, status, sample_collected_by,
	results, result_file, doctor_comments, ordered_at, sample_collected_at, completed_at, created_at, updated_at`

func (r *labTestRepository) Create(ctx context.Context, test *model.LabTest) error {
	query := `
		INSERT INTO lab_tests (` + labTestColumns + `)
		VALUES (:id, :patient_id, :ordered_by, :test_name, :test_type, :status, :sample_collected_by,
			:results, :result_file, :doctor_comments, :ordered_at, :sample_collected_at, :completed_at,
			:created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, test)
	return mapError("create lab test", err)
}

func (r *labTestRepository) Get(ctx context.Context, id uuid.UUID) (*model.LabTest, error) {
	var test model.LabTest
	if err := r.db.GetContext(ctx, &test, `SELECT `+labTestColumns+` FROM lab_tests WHERE id = $1`, id); err != nil {
		return nil, mapError("get lab test", err)
	}
	return &test, nil
}

func (r *labTestRepository) Update(ctx context.Context, test *model.LabTest) error {
	query := `
		UPDATE lab_tests
		SET status = :status, sample_collected_by = :sample_collected_by, results = :results,
			result_file = :result_file, doctor_comments = :doctor_comments,
			sample_collected_at = :sample_collected_at, completed_at = :completed_at, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, test)
	return expectAffected("update lab test", result, err)
}

func (r *labTestRepository) ListPending(ctx context.Context) ([]*model.LabTest, error) {
	query := `SELECT ` + labTestColumns + ` FROM lab_tests WHERE status <> $1 ORDER BY ordered_at DESC`
	tests := []*model.LabTest{}
	if err := r.db.SelectContext(ctx, &tests, query, model.LabTestStatusCompleted); err != nil {
		return nil, mapError("list pending lab tests", err)
	}
	return tests, nil
}

func (r *labTestRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.LabTest, error) {
	query := `SELECT ` + labTestColumns + ` FROM lab_tests WHERE patient_id = $1 ORDER BY ordered_at DESC`
	tests := []*model.LabTest{}
	if err := r.db.SelectContext(ctx, &tests, query, patientID); err != nil {
		return nil, mapError("list patient lab tests", err)
	}
	return tests, nil
}
