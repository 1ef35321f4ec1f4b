package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixQuote    = "Q"
	PrefixCustomer = "CUST"
	PrefixJob      = "JOB"
	PrefixEmployee = "EMP"
	PrefixPayment  = "PAY"
	PrefixTemp     = "TEMP"
)

const idTimeLayout = "20060102150405"

// NewID returns prefix + UTC timestamp + a 4 character random suffix, e.g.
// Q20250101120000A1B2. The suffix keeps two writes in the same second apart.
func NewID(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return prefix + now.UTC().Format(idTimeLayout) + suffix
}

// TempID marks a confirmation that was never persisted.
func TempID(now time.Time) string {
	return PrefixTemp + now.UTC().Format(idTimeLayout)
}

func IsTempID(id string) bool {
	return strings.HasPrefix(id, PrefixTemp)
}
