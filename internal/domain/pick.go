package domain

import "time"

type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
	ConfidenceLock   Confidence = "Lock"
)

func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh, ConfidenceLock:
		return true
	}
	return false
}

type PickType string

const (
	PickFree    PickType = "free"
	PickPremium PickType = "premium"
)

func (t PickType) Valid() bool {
	return t == PickFree || t == PickPremium
}

type PickResult string

const (
	ResultPending PickResult = "pending"
	ResultWin     PickResult = "win"
	ResultLoss    PickResult = "loss"
	ResultPush    PickResult = "push"
)

// Terminal reports whether the result may no longer change.
func (r PickResult) Terminal() bool {
	return r == ResultWin || r == ResultLoss || r == ResultPush
}

func (r PickResult) Valid() bool {
	return r == ResultPending || r.Terminal()
}

// Pick is a published wager recommendation. IDs are assigned by storage
// and are monotonic by creation order. Result moves from pending to a
// terminal value exactly once; picks are never deleted.
type Pick struct {
	ID         int64
	Week       int
	Season     int
	Game       string
	PickText   string
	Analysis   string
	Confidence Confidence
	PickType   PickType
	GameTime   time.Time
	Result     PickResult
	CreatedAt  time.Time
}
