package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubscriberKind string

const (
	KindFreeSignup SubscriberKind = "free-signup"
	KindPaid       SubscriberKind = "paid"
)

type PackageType string

const (
	PackageFree    PackageType = "free"
	PackageWeekly  PackageType = "weekly"
	PackageMonthly PackageType = "monthly"
	PackageSeason  PackageType = "season"
)

// Paid reports whether the package grants premium access.
func (p PackageType) Paid() bool {
	switch p {
	case PackageWeekly, PackageMonthly, PackageSeason:
		return true
	}
	return false
}

// Subscriber is an email-identified entity tracking free or paid access.
// Email holds the normalized form and is the identity key.
type Subscriber struct {
	ID              uuid.UUID
	Email           string
	Name            string
	Kind            SubscriberKind
	PackageType     PackageType
	SignedUpAt      time.Time
	SubscriptionEnd *time.Time
	PaymentRef      string
}

// Active reports whether the subscriber holds a paid subscription that
// has not yet ended.
func (s Subscriber) Active(now time.Time) bool {
	return s.Kind == KindPaid && s.SubscriptionEnd != nil && s.SubscriptionEnd.After(now)
}

// Status returns the display status used by the admin export.
func (s Subscriber) Status(now time.Time) string {
	switch {
	case s.Active(now):
		return "active"
	case s.Kind == KindPaid:
		return "expired"
	default:
		return "free"
	}
}
