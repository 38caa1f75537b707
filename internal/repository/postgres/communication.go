package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
)

const communicationColumns = `id, sender_id, receiver_id, patient_id, message_type, message, priority,
	read_status, read_at, created_at, updated_at`

func (r *communicationRepository) Create(ctx context.Context, message *model.Communication) error {
	query := `
		INSERT INTO communications (` + communicationColumns + `)
		VALUES (:id, :sender_id, :receiver_id, :patient_id, :message_type, :message, :priority,
			:read_status, :read_at, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, message)
	return mapError("create message", err)
}

func (r *communicationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Communication, error) {
	var message model.Communication
	if err := r.db.GetContext(ctx, &message, `SELECT `+communicationColumns+` FROM communications WHERE id = $1`, id); err != nil {
		return nil, mapError("get message", err)
	}
	return &message, nil
}

func (r *communicationRepository) Update(ctx context.Context, message *model.Communication) error {
	query := `
		UPDATE communications
		SET read_status = :read_status, read_at = :read_at, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, message)
	return expectAffected("update message", result, err)
}

func (r *communicationRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*model.Communication, error) {
	query := `SELECT ` + communicationColumns + ` FROM communications WHERE receiver_id = $1 ORDER BY created_at DESC`
	messages := []*model.Communication{}
	if err := r.db.SelectContext(ctx, &messages, query, receiverID); err != nil {
		return nil, mapError("list inbox", err)
	}
	return messages, nil
}

func (r *communicationRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM communications WHERE receiver_id = $1 AND read_status = FALSE`
	if err := r.db.GetContext(ctx, &count, query, receiverID); err != nil {
		return 0, mapError("count unread messages", err)
	}
	return count, nil
}
