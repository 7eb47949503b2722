package models

import "time"

// BookingStep is one state of the linear hire-and-escrow flow.
type BookingStep string

const (
	StepDetails BookingStep = "DETAILS"
	StepPayment BookingStep = "PAYMENT"
	StepEscrow  BookingStep = "ESCROW"
	StepReview  BookingStep = "REVIEW"
	StepSuccess BookingStep = "SUCCESS"
)

// PaymentMethod is one of the fixed simulated payment options.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "CREDIT"
	PaymentDebit  PaymentMethod = "DEBIT"
	PaymentPix    PaymentMethod = "PIX"
	PaymentBoleto PaymentMethod = "BOLETO"
)

// Valid reports whether m is one of the supported methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCredit, PaymentDebit, PaymentPix, PaymentBoleto:
		return true
	}
	return false
}

// Quote is the cost breakdown for a booking. PlatformFee is rounded to
// cents once and ProProceeds derived from it, so fee + proceeds always
// equals the total exactly.
type Quote struct {
	Hours       int     `json:"hours"`
	HourlyRate  float64 `json:"hourlyRate"`
	TotalAmount float64 `json:"totalAmount"`
	PlatformFee float64 `json:"platformFee"`
	ProProceeds float64 `json:"proProceeds"`
	Currency    string  `json:"currency"`
}

// BookingSession is the transient state of one hire-and-escrow flow.
// It lives in the session cache for the lifetime of the flow and is
// discarded on close.
type BookingSession struct {
	ID           string       `json:"id"`
	Professional Professional `json:"professional"`
	Step         BookingStep  `json:"step"`
	Hours        int          `json:"hours"` // always >= 1
	Method       PaymentMethod `json:"method,omitempty"`
	Rating       int          `json:"rating"` // 1-5, defaults to 5
	ReviewText   string       `json:"reviewText,omitempty"`
	Quote        Quote        `json:"quote"`
	PaymentID    string       `json:"paymentId,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Receipt summarizes a released escrow payment.
type Receipt struct {
	SessionID      string    `json:"sessionId"`
	ProfessionalID string    `json:"professionalId"`
	PaymentID      string    `json:"paymentId"`
	AmountPaid     float64   `json:"amountPaid"`
	PlatformFee    float64   `json:"platformFee"`
	ProProceeds    float64   `json:"proProceeds"`
	Rating         int       `json:"rating"`
	Review         string    `json:"review"`
	ReleasedAt     time.Time `json:"releasedAt"`
}
