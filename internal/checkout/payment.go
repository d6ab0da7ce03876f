package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"stylecraft-backend/internal/catalog"
)

var ErrInvalidPaymentMethod = errors.New("please select a payment method")

type Receipt struct {
	Method      catalog.Option
	ProcessedAt time.Time
}

// PaymentSimulator stands in for a payment processor: it waits a fixed
// delay and always succeeds.
type PaymentSimulator struct {
	delay  time.Duration
	logger logrus.FieldLogger
}

func NewPaymentSimulator(delay time.Duration, logger logrus.FieldLogger) *PaymentSimulator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PaymentSimulator{delay: delay, logger: logger.WithField("component", "payment_simulator")}
}

// Process validates the method and waits for the simulated processing
// time. It returns ctx.Err() if the caller goes away first.
func (p *PaymentSimulator) Process(ctx context.Context, method string) (*Receipt, error) {
	option, ok := catalog.PaymentMethod(method)
	if !ok {
		return nil, ErrInvalidPaymentMethod
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	p.logger.WithField("method", option.ID).Info("payment processed (simulated)")
	return &Receipt{Method: option, ProcessedAt: time.Now()}, nil
}
