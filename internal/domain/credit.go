package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// usageMultipliers is the pricing table: credits charged per booked hour.
// This is the only place booking prices live.
var usageMultipliers = map[UsageType]decimal.Decimal{
	UsageIndividual: decimal.NewFromFloat(0.5),
	UsageGroup:      decimal.NewFromInt(1),
}

// RequiredCredits converts a booking duration and usage type into the credit
// cost: duration in hours times the usage multiplier.
func RequiredCredits(duration time.Duration, usage UsageType) (decimal.Decimal, error) {
	mult, ok := usageMultipliers[usage]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown usage type %q", ErrValidation, usage)
	}
	hours := decimal.NewFromInt(int64(duration / time.Minute)).Div(decimal.NewFromInt(60))
	return hours.Mul(mult), nil
}
