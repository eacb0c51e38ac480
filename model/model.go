package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KoboPerNaira is the currency multiplier between the display unit (naira)
// and the storage unit (kobo). Every balance and amount in the store is kobo.
const KoboPerNaira = 100

const referencePrefix = "NEXA"

// GenerateUUIDWithSuffix generates a UUID with a given module name as a prefix.
// e.g. acc_0193b5b3-9d64-79f2-bd82-5e19e68b7a58
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// NewReference stamps a human-auditable transaction reference:
// NEXA-<unix millis>-<4 digit zero padded random>. Uniqueness is guaranteed by
// construction combined with the unique constraint on the transactions table.
func NewReference() string {
	return newReference(referencePrefix)
}

// NewWelcomeReference is the reference format used for the account opening
// deposit.
func NewWelcomeReference() string {
	return newReference("WELCOME")
}

func newReference(prefix string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		n = big.NewInt(time.Now().UnixNano() % 10000)
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixMilli(), n.Int64())
}

// MajorToMinor converts a caller-supplied naira amount to kobo. Any
// fractional kobo remainder truncates toward zero, so the conversion is
// deterministic for all inputs.
func MajorToMinor(major float64) int64 {
	return decimal.NewFromFloat(major).Mul(decimal.NewFromInt(KoboPerNaira)).IntPart()
}

// MinorToMajor converts a stored kobo amount back to naira for responses.
func MinorToMajor(minor int64) float64 {
	f, _ := decimal.NewFromInt(minor).Div(decimal.NewFromInt(KoboPerNaira)).Float64()
	return f
}
