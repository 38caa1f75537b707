package billing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/repository/memory"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

func amount(v float64) *float64 { return &v }

func TestPaymentsAccumulate(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Billing)
	ctx := context.Background()

	bill, err := svc.Create(ctx, nil, &model.CreateBillingRequest{PatientID: uuid.New(), TotalAmount: amount(500)})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPending, bill.PaymentStatus)

	want := []model.PaymentStatus{model.PaymentStatusPartial, model.PaymentStatusPartial, model.PaymentStatusPaid}
	for i, status := range want {
		bill, err = svc.RecordPayment(ctx, bill.ID, &model.PaymentRequest{PaidAmount: amount(200), PaymentMethod: model.PaymentMethodCash})
		require.NoError(t, err)
		assert.Equal(t, status, bill.PaymentStatus, "payment %d", i+1)
	}
	assert.Equal(t, 600.0, bill.PaidAmount)
	assert.Equal(t, model.PaymentMethodCash, bill.PaymentMethod)
}

func TestCreate_PaidUpFront(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Billing)

	bill, err := svc.Create(context.Background(), nil, &model.CreateBillingRequest{
		PatientID:   uuid.New(),
		TotalAmount: amount(300),
		PaidAmount:  300,
		Items:       []model.BillingItem{{Description: "Consultation", Amount: 300}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, bill.PaymentStatus)
}

func TestInvoiceNumbersAreUnique(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Billing)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		bill, err := svc.Create(ctx, nil, &model.CreateBillingRequest{PatientID: uuid.New(), TotalAmount: amount(10)})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(bill.InvoiceNumber, "INV-20240315-"), bill.InvoiceNumber)
		assert.False(t, seen[bill.InvoiceNumber], "duplicate %s", bill.InvoiceNumber)
		seen[bill.InvoiceNumber] = true
	}
}

func TestRecordPayment_MissingBill(t *testing.T) {
	svc := NewService(memory.NewStore().Repositories().Billing)
	_, err := svc.RecordPayment(context.Background(), uuid.New(), &model.PaymentRequest{PaidAmount: amount(1)})
	require.Error(t, err)
	assert.Equal(t, "Bill not found", apperrors.As(err).PublicMessage())
}
