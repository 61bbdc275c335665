// Package subscription holds the policy that maps a purchased package
// to a subscription end date.
package subscription

import (
	"time"

	"github.com/yardlineiq/picksserver/internal/domain"
)

type Policy struct {
	seasonEnd time.Time
}

// NewPolicy returns a policy whose season package runs until the given
// fixed end-of-season date.
func NewPolicy(seasonEnd time.Time) Policy {
	return Policy{seasonEnd: seasonEnd}
}

// EndDate computes when access purchased at now runs out. The season
// package ends at the configured date regardless of purchase time.
func (p Policy) EndDate(pkg domain.PackageType, now time.Time) (time.Time, error) {
	switch pkg {
	case domain.PackageWeekly:
		return now.Add(7 * 24 * time.Hour), nil
	case domain.PackageMonthly:
		return now.Add(30 * 24 * time.Hour), nil
	case domain.PackageSeason:
		return p.seasonEnd, nil
	}
	return time.Time{}, domain.ErrInvalidPackage
}
