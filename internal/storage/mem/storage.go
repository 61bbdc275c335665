// Package mem is a mutex-guarded in-memory storage adapter. It backs
// tests and the zero-setup configuration; data does not survive a
// restart.
package mem

import (
	"context"
	"sort"
	"sync"

	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/storage"
)

type Storage struct {
	mu          sync.RWMutex
	subscribers map[string]domain.Subscriber
	picks       []domain.Pick
	payments    []domain.Payment
	chats       map[int64]struct{}
	nextPickID  int64
}

var _ storage.SubscriberStorage = (*Storage)(nil)
var _ storage.PickStorage = (*Storage)(nil)
var _ storage.PaymentStorage = (*Storage)(nil)
var _ storage.ChatStorage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		subscribers: make(map[string]domain.Subscriber),
		chats:       make(map[int64]struct{}),
		nextPickID:  1,
	}
}

func (s *Storage) GetByEmail(_ context.Context, email string) (domain.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscribers[email]
	if !ok {
		return domain.Subscriber{}, domain.ErrSubscriberNotFound
	}
	return sub, nil
}

func (s *Storage) ListSubscribers(_ context.Context) ([]domain.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]domain.Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SignedUpAt.After(subs[j].SignedUpAt)
	})
	return subs, nil
}

func (s *Storage) UpsertSubscriber(_ context.Context, sub domain.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers[sub.Email] = sub
	return nil
}

func (s *Storage) ListPicks(_ context.Context, filter storage.PickFilter) ([]domain.Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	picks := make([]domain.Pick, 0, len(s.picks))
	for _, pick := range s.picks {
		if filter.Type != "" && pick.PickType != filter.Type {
			continue
		}
		picks = append(picks, pick)
	}
	sort.SliceStable(picks, func(i, j int) bool {
		if !picks[i].GameTime.Equal(picks[j].GameTime) {
			return picks[i].GameTime.After(picks[j].GameTime)
		}
		return picks[i].ID > picks[j].ID
	})
	if filter.Limit > 0 && len(picks) > filter.Limit {
		picks = picks[:filter.Limit]
	}
	return picks, nil
}

func (s *Storage) GetPick(_ context.Context, id int64) (domain.Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, pick := range s.picks {
		if pick.ID == id {
			return pick, nil
		}
	}
	return domain.Pick{}, domain.ErrPickNotFound
}

func (s *Storage) CreatePick(_ context.Context, pick domain.Pick) (domain.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pick.ID = s.nextPickID
	s.nextPickID++
	s.picks = append(s.picks, pick)
	return pick, nil
}

func (s *Storage) UpdatePickResult(_ context.Context, id int64, result domain.PickResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.picks {
		if s.picks[i].ID != id {
			continue
		}
		if s.picks[i].Result.Terminal() {
			return domain.ErrPickResolved
		}
		s.picks[i].Result = result
		return nil
	}
	return domain.ErrPickNotFound
}

func (s *Storage) AddPayment(_ context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, payment)
	return nil
}

func (s *Storage) ListPayments(_ context.Context) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]domain.Payment, len(s.payments))
	copy(payments, s.payments)
	return payments, nil
}

func (s *Storage) ListChats(_ context.Context) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.chats))
	for id := range s.chats {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Storage) AddChat(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats[chatID] = struct{}{}
	return nil
}

func (s *Storage) RemoveChat(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.chats, chatID)
	return nil
}
