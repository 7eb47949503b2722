package booking

import (
	"math"

	"handymatch/models"
)

// platformFeeRate is the marketplace cut withheld from the professional's
// payout.
const platformFeeRate = 0.10

const currency = "BRL"

// BuildQuote computes the cost breakdown for a booking. All amounts are
// derived in integer cents: the total is rounded once, the fee is rounded
// once, and the payout is the remainder, so fee + payout always equals the
// total with no penny drift.
func BuildQuote(hours int, hourlyRate float64) models.Quote {
	totalCents := int64(math.Round(float64(hours) * hourlyRate * 100))
	feeCents := int64(math.Round(float64(totalCents) * platformFeeRate))
	proceedsCents := totalCents - feeCents

	return models.Quote{
		Hours:       hours,
		HourlyRate:  hourlyRate,
		TotalAmount: float64(totalCents) / 100,
		PlatformFee: float64(feeCents) / 100,
		ProProceeds: float64(proceedsCents) / 100,
		Currency:    currency,
	}
}
