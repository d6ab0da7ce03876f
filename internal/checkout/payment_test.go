package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"stylecraft-backend/internal/checkout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPaymentSimulator_Process(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sim := checkout.NewPaymentSimulator(20*time.Millisecond, logger)

	start := time.Now()
	receipt, err := sim.Process(context.Background(), "upi")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "upi", receipt.Method.ID)
	assert.Equal(t, "UPI", receipt.Method.Label)
}

func TestPaymentSimulator_InvalidMethod(t *testing.T) {
	sim := checkout.NewPaymentSimulator(time.Hour, nil)

	_, err := sim.Process(context.Background(), "")
	assert.ErrorIs(t, err, checkout.ErrInvalidPaymentMethod)

	_, err = sim.Process(context.Background(), "cash")
	assert.ErrorIs(t, err, checkout.ErrInvalidPaymentMethod)
}

func TestPaymentSimulator_Cancelled(t *testing.T) {
	sim := checkout.NewPaymentSimulator(time.Hour, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sim.Process(ctx, "card")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
