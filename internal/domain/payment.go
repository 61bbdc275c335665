package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a ledger entry for a payment-processor interaction. The
// processor remains the source of truth for the payment itself.
type Payment struct {
	ID          uuid.UUID
	IntentID    string
	Email       string
	PackageType PackageType
	Amount      int64 // smallest currency unit
	Currency    string
	Status      string
	CreatedAt   time.Time
}
