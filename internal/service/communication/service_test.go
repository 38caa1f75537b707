package communication

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository/memory"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

func TestSendReadAndCount(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Communications)
	ctx := context.Background()
	sender := &model.Identity{ID: uuid.New(), Role: model.RoleClinic}
	receiver := uuid.New()

	first, err := svc.Send(ctx, sender, &model.SendMessageRequest{ReceiverID: receiver, Message: "Bed 4 needs vitals"})
	require.NoError(t, err)
	assert.Equal(t, model.MessageTypeNote, first.MessageType)
	assert.Equal(t, model.PriorityNormal, first.Priority)
	assert.False(t, first.ReadStatus)

	_, err = svc.Send(ctx, sender, &model.SendMessageRequest{ReceiverID: receiver, Message: "Lab results ready", Priority: model.PriorityUrgent})
	require.NoError(t, err)
	_, err = svc.Send(ctx, sender, &model.SendMessageRequest{ReceiverID: uuid.New(), Message: "other inbox"})
	require.NoError(t, err)

	n, err := svc.UnreadCount(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	read, err := svc.MarkRead(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, read.ReadStatus)
	require.NotNil(t, read.ReadAt)

	n, err = svc.UnreadCount(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	inbox, err := svc.Inbox(ctx, receiver)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)
}

func TestMarkRead_Missing(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Communications)
	_, err := svc.MarkRead(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, "Message not found", apperrors.As(err).PublicMessage())
}
