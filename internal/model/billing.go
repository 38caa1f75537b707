package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodNone      PaymentMethod = ""
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodUPI       PaymentMethod = "upi"
	PaymentMethodInsurance PaymentMethod = "insurance"
)

// PaymentStatusFor derives the payment status from the running totals.
func PaymentStatusFor(paid, total float64) PaymentStatus {
	switch {
	case paid >= total:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// InvoiceNumber formats a sequence value issued on day.
func InvoiceNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%06d", day.UTC().Format("20060102"), seq)
}

type BillingItem struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type BillingItems []BillingItem

func (i BillingItems) Value() (driver.Value, error) {
	if i == nil {
		i = BillingItems{}
	}
	return jsonValue([]BillingItem(i))
}

func (i *BillingItems) Scan(src interface{}) error {
	return scanJSON(src, (*[]BillingItem)(i))
}

type InsuranceClaim struct {
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
	ClaimID string  `json:"claimId"`
}

func (c InsuranceClaim) Value() (driver.Value, error) {
	type plain InsuranceClaim
	return jsonValue(plain(c))
}

func (c *InsuranceClaim) Scan(src interface{}) error {
	type plain InsuranceClaim
	return scanJSON(src, (*plain)(c))
}

type Billing struct {
	Base
	PatientID       uuid.UUID      `db:"patient_id" json:"patientId"`
	AppointmentID   uuid.NullUUID  `db:"appointment_id" json:"appointmentId"`
	CreatedBy       uuid.NullUUID  `db:"created_by" json:"createdBy"`
	Items           BillingItems   `db:"items" json:"items"`
	ConsultationFee float64        `db:"consultation_fee" json:"consultationFee"`
	LabCharges      float64        `db:"lab_charges" json:"labCharges"`
	TotalAmount     float64        `db:"total_amount" json:"totalAmount"`
	PaidAmount      float64        `db:"paid_amount" json:"paidAmount"`
	PaymentStatus   PaymentStatus  `db:"payment_status" json:"paymentStatus"`
	PaymentMethod   PaymentMethod  `db:"payment_method" json:"paymentMethod"`
	InsuranceClaim  InsuranceClaim `db:"insurance_claim" json:"insuranceClaim"`
	InvoiceNumber   string         `db:"invoice_number" json:"invoiceNumber"`
}

// Recompute refreshes the payment status.
func (b *Billing) Recompute() {
	b.PaymentStatus = PaymentStatusFor(b.PaidAmount, b.TotalAmount)
}

type CreateBillingRequest struct {
	PatientID       uuid.UUID       `json:"patientId" binding:"required"`
	AppointmentID   *uuid.UUID      `json:"appointmentId"`
	Items           []BillingItem   `json:"items" binding:"omitempty,dive"`
	ConsultationFee float64         `json:"consultationFee" binding:"gte=0"`
	LabCharges      float64         `json:"labCharges" binding:"gte=0"`
	TotalAmount     *float64        `json:"totalAmount" binding:"required,gte=0"`
	PaidAmount      float64         `json:"paidAmount" binding:"gte=0"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" binding:"omitempty,oneof=cash card upi insurance"`
	InsuranceClaim  *InsuranceClaim `json:"insuranceClaim"`
}

type PaymentRequest struct {
	PaidAmount    *float64      `json:"paidAmount" binding:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash card upi insurance"`
}
