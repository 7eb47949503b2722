package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"handymatch/models"
)

// PaymentProcessor captures a payment into escrow and returns a payment
// identifier. There is no real gateway behind it; a production processor
// would have to model declines, timeouts and idempotent retries here.
type PaymentProcessor interface {
	Process(ctx context.Context, amount float64, method models.PaymentMethod) (string, error)
}

// SimulatedProcessor stands in for the payment gateway with a fixed-delay
// unconditional success. The wait is context-aware: cancelling the context
// aborts before any effect, so a dismissed flow never observes a late
// capture.
type SimulatedProcessor struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedProcessor(delay time.Duration, logger *zap.Logger) *SimulatedProcessor {
	return &SimulatedProcessor{Delay: delay, Logger: logger}
}

func (p *SimulatedProcessor) Process(ctx context.Context, amount float64, method models.PaymentMethod) (string, error) {
	if !method.Valid() {
		return "", ErrInvalidMethod
	}

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	paymentID := "pay_" + uuid.New().String()
	p.Logger.Info("Simulated payment held in escrow",
		zap.String("paymentId", paymentID),
		zap.Float64("amount", amount),
		zap.String("method", string(method)),
	)
	return paymentID, nil
}
