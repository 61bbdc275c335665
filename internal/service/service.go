// Package service owns subscriber and pick state transitions and the
// aggregate stats derived from them.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/normalize"
	"github.com/yardlineiq/picksserver/internal/storage"
	"github.com/yardlineiq/picksserver/internal/subscription"
)

// Notifier is told about confirmed purchases. Failures are logged and
// never fail the payment.
type Notifier interface {
	PurchaseConfirmed(ctx context.Context, sub domain.Subscriber) error
}

// Announcer is told about newly published picks.
type Announcer interface {
	AnnouncePick(pick domain.Pick)
}

type Ledger struct {
	subscribers storage.SubscriberStorage
	picks       storage.PickStorage
	payments    storage.PaymentStorage
	policy      subscription.Policy

	notifier  Notifier
	announcer Announcer

	fallbackWinRate string
	log             *logrus.Entry
	now             func() time.Time
}

func New(
	subscribers storage.SubscriberStorage,
	picks storage.PickStorage,
	payments storage.PaymentStorage,
	policy subscription.Policy,
	fallbackWinRate string,
	log *logrus.Logger,
) *Ledger {
	return &Ledger{
		subscribers:     subscribers,
		picks:           picks,
		payments:        payments,
		policy:          policy,
		fallbackWinRate: fallbackWinRate,
		log:             log.WithField("name", "ledger"),
		now:             time.Now,
	}
}

// SetNotifier attaches the purchase notifier. Optional.
func (s *Ledger) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetAnnouncer attaches the pick announcer. Optional.
func (s *Ledger) SetAnnouncer(a Announcer) {
	s.announcer = a
}

// RegisterFreeSignup adds an email to the free-picks list. Signing up
// an address that is already on the list is not an error: the existing
// record is returned untouched with alreadyRegistered true.
func (s *Ledger) RegisterFreeSignup(ctx context.Context, email, name string) (domain.Subscriber, bool, error) {
	key, err := normalize.Email(email)
	if err != nil {
		return domain.Subscriber{}, false, err
	}
	existing, err := s.subscribers.GetByEmail(ctx, key)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, domain.ErrSubscriberNotFound) {
		return domain.Subscriber{}, false, fmt.Errorf("looking up subscriber: %w", err)
	}
	sub := domain.Subscriber{
		ID:         uuid.New(),
		Email:      key,
		Name:       strings.TrimSpace(name),
		Kind:       domain.KindFreeSignup,
		SignedUpAt: s.now(),
	}
	if err := s.subscribers.UpsertSubscriber(ctx, sub); err != nil {
		return domain.Subscriber{}, false, fmt.Errorf("saving subscriber: %w", err)
	}
	return sub, false, nil
}

// GetSubscriber looks up a subscriber by (unnormalized) email.
func (s *Ledger) GetSubscriber(ctx context.Context, email string) (domain.Subscriber, error) {
	key, err := normalize.Email(email)
	if err != nil {
		return domain.Subscriber{}, err
	}
	return s.subscribers.GetByEmail(ctx, key)
}

// RecordPaidSubscription upserts a subscriber to paid after the caller
// has verified the payment with the processor. Existing subscribers
// upgrade in place; kind never moves back to free-signup. A non-empty
// name overwrites the stored one.
func (s *Ledger) RecordPaidSubscription(ctx context.Context, email, name string, pkg domain.PackageType, paymentRef string) (domain.Subscriber, error) {
	key, err := normalize.Email(email)
	if err != nil {
		return domain.Subscriber{}, err
	}
	end, err := s.policy.EndDate(pkg, s.now())
	if err != nil {
		return domain.Subscriber{}, err
	}

	sub, err := s.subscribers.GetByEmail(ctx, key)
	switch {
	case errors.Is(err, domain.ErrSubscriberNotFound):
		sub = domain.Subscriber{
			ID:         uuid.New(),
			Email:      key,
			SignedUpAt: s.now(),
		}
	case err != nil:
		return domain.Subscriber{}, fmt.Errorf("looking up subscriber: %w", err)
	}

	sub.Kind = domain.KindPaid
	sub.PackageType = pkg
	sub.SubscriptionEnd = &end
	sub.PaymentRef = paymentRef
	if name = strings.TrimSpace(name); name != "" {
		sub.Name = name
	}

	if err := s.subscribers.UpsertSubscriber(ctx, sub); err != nil {
		return domain.Subscriber{}, fmt.Errorf("saving subscriber: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.PurchaseConfirmed(ctx, sub); err != nil {
			s.log.WithError(err).Error("purchase notification failed")
		}
	}
	return sub, nil
}

// ListSubscribers returns every subscriber for the admin views.
func (s *Ledger) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.subscribers.ListSubscribers(ctx)
}

// RecordPayment appends a payment ledger entry.
func (s *Ledger) RecordPayment(ctx context.Context, payment domain.Payment) error {
	payment.ID = uuid.New()
	payment.CreatedAt = s.now()
	return s.payments.AddPayment(ctx, payment)
}

// ListPicksFilter describes what the caller may see. Inactive and
// anonymous callers only ever receive free picks, whatever they ask
// for.
type ListPicksFilter struct {
	Type             domain.PickType
	ActiveSubscriber bool
	Limit            int
}

func (s *Ledger) ListPicks(ctx context.Context, filter ListPicksFilter) ([]domain.Pick, error) {
	f := storage.PickFilter{Limit: filter.Limit}
	if filter.ActiveSubscriber {
		f.Type = filter.Type
	} else {
		f.Type = domain.PickFree
	}
	return s.picks.ListPicks(ctx, f)
}

func (s *Ledger) GetPick(ctx context.Context, id int64) (domain.Pick, error) {
	return s.picks.GetPick(ctx, id)
}

// CreatePick publishes a new pick. The result always starts pending.
func (s *Ledger) CreatePick(ctx context.Context, pick domain.Pick) (domain.Pick, error) {
	if pick.Game == "" || pick.PickText == "" || pick.Week <= 0 {
		return domain.Pick{}, domain.ErrInvalidPick
	}
	if !pick.Confidence.Valid() || !pick.PickType.Valid() {
		return domain.Pick{}, domain.ErrInvalidPick
	}
	pick.Result = domain.ResultPending
	pick.CreatedAt = s.now()
	if pick.Season == 0 {
		pick.Season = pick.GameTime.Year()
	}
	created, err := s.picks.CreatePick(ctx, pick)
	if err != nil {
		return domain.Pick{}, fmt.Errorf("saving pick: %w", err)
	}
	if s.announcer != nil {
		s.announcer.AnnouncePick(created)
	}
	return created, nil
}

// ResolvePick sets a pick's final result. Setting the same terminal
// result twice is ignored; changing a terminal result is rejected.
func (s *Ledger) ResolvePick(ctx context.Context, id int64, result domain.PickResult) (domain.Pick, error) {
	if !result.Terminal() {
		return domain.Pick{}, domain.ErrInvalidPick
	}
	pick, err := s.picks.GetPick(ctx, id)
	if err != nil {
		return domain.Pick{}, err
	}
	if pick.Result.Terminal() {
		if pick.Result == result {
			return pick, nil
		}
		return domain.Pick{}, domain.ErrPickResolved
	}
	if err := s.picks.UpdatePickResult(ctx, id, result); err != nil {
		return domain.Pick{}, err
	}
	pick.Result = result
	return pick, nil
}
