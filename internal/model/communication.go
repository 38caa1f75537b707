package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeNote        MessageType = "note"
	MessageTypeAlert       MessageType = "alert"
	MessageTypeInstruction MessageType = "instruction"
)

type Priority string

const (
	PriorityNormal    Priority = "normal"
	PriorityUrgent    Priority = "urgent"
	PriorityEmergency Priority = "emergency"
)

// Communication is an internal staff message.
type Communication struct {
	Base
	SenderID    uuid.NullUUID `db:"sender_id" json:"senderId"`
	ReceiverID  uuid.UUID     `db:"receiver_id" json:"receiverId"`
	PatientID   uuid.NullUUID `db:"patient_id" json:"patientId"`
	MessageType MessageType   `db:"message_type" json:"messageType"`
	Message     string        `db:"message" json:"message"`
	Priority    Priority      `db:"priority" json:"priority"`
	ReadStatus  bool          `db:"read_status" json:"readStatus"`
	ReadAt      *time.Time    `db:"read_at" json:"readAt,omitempty"`
}

type SendMessageRequest struct {
	ReceiverID  uuid.UUID   `json:"receiverId" binding:"required"`
	PatientID   *uuid.UUID  `json:"patientId"`
	MessageType MessageType `json:"messageType" binding:"omitempty,oneof=note alert instruction"`
	Message     string      `json:"message" binding:"required"`
	Priority    Priority    `json:"priority" binding:"omitempty,oneof=normal urgent emergency"`
}
