package communication

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/service"
)

const resource = "Message"

type Service struct {
	repo repository.CommunicationRepository
	now  func() time.Time
}

func NewService(repo repository.CommunicationRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Send(ctx context.Context, actor *model.Identity, req *model.SendMessageRequest) (*model.Communication, error) {
	msg := &model.Communication{
		SenderID:    actor.ActorID(),
		ReceiverID:  req.ReceiverID,
		PatientID:   model.NullUUIDFrom(req.PatientID),
		MessageType: req.MessageType,
		Message:     strings.TrimSpace(req.Message),
		Priority:    req.Priority,
	}
	if msg.MessageType == "" {
		msg.MessageType = model.MessageTypeNote
	}
	if msg.Priority == "" {
		msg.Priority = model.PriorityNormal
	}
	msg.Touch(s.now().UTC())

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, service.StorageError(err, resource, "send message")
	}
	return msg, nil
}

// Inbox lists messages addressed to the receiver, newest first.
func (s *Service) Inbox(ctx context.Context, receiverID uuid.UUID) ([]*model.Communication, error) {
	out, err := s.repo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, service.StorageError(err, resource, "list inbox")
	}
	return out, nil
}

func (s *Service) UnreadCount(ctx context.Context, receiverID uuid.UUID) (int, error) {
	n, err := s.repo.CountUnread(ctx, receiverID)
	if err != nil {
		return 0, service.StorageError(err, resource, "count unread messages")
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*model.Communication, error) {
	msg, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, service.StorageError(err, resource, "get message")
	}
	now := s.now().UTC()
	msg.ReadStatus = true
	msg.ReadAt = &now
	msg.UpdatedAt = now

	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, service.StorageError(err, resource, "mark message read")
	}
	return msg, nil
}
