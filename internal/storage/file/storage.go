// Package file is a flat-file storage adapter persisting the whole
// ledger as a single JSON document. It suits a single-instance
// deployment with a handful of subscribers; writes rewrite the file
// atomically via a temp-and-rename.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/storage"
)

const documentVersion = 1

type document struct {
	Version     int
	NextPickID  int64
	Subscribers []domain.Subscriber
	Picks       []domain.Pick
	Payments    []domain.Payment
	Chats       []int64
}

type Storage struct {
	mu   sync.Mutex
	path string
	doc  document
}

var _ storage.SubscriberStorage = (*Storage)(nil)
var _ storage.PickStorage = (*Storage)(nil)
var _ storage.PaymentStorage = (*Storage)(nil)
var _ storage.ChatStorage = (*Storage)(nil)

func New(path string) (*Storage, error) {
	s := &Storage{
		path: path,
		doc:  document{Version: documentVersion, NextPickID: 1},
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w", path, err)
	}
	if s.doc.Version != documentVersion {
		return nil, fmt.Errorf("unsupported store file version %d", s.doc.Version)
	}
	if s.doc.NextPickID < 1 {
		s.doc.NextPickID = 1
	}
	return s, nil
}

// flush is called with the mutex held.
func (s *Storage) flush() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Storage) GetByEmail(_ context.Context, email string) (domain.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.doc.Subscribers {
		if sub.Email == email {
			return sub, nil
		}
	}
	return domain.Subscriber{}, domain.ErrSubscriberNotFound
}

func (s *Storage) ListSubscribers(_ context.Context) ([]domain.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := make([]domain.Subscriber, len(s.doc.Subscribers))
	copy(subs, s.doc.Subscribers)
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SignedUpAt.After(subs[j].SignedUpAt)
	})
	return subs, nil
}

func (s *Storage) UpsertSubscriber(_ context.Context, sub domain.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.doc.Subscribers {
		if s.doc.Subscribers[i].Email == sub.Email {
			s.doc.Subscribers[i] = sub
			replaced = true
			break
		}
	}
	if !replaced {
		s.doc.Subscribers = append(s.doc.Subscribers, sub)
	}
	return s.flush()
}

func (s *Storage) ListPicks(_ context.Context, filter storage.PickFilter) ([]domain.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	picks := make([]domain.Pick, 0, len(s.doc.Picks))
	for _, pick := range s.doc.Picks {
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
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pick := range s.doc.Picks {
		if pick.ID == id {
			return pick, nil
		}
	}
	return domain.Pick{}, domain.ErrPickNotFound
}

func (s *Storage) CreatePick(_ context.Context, pick domain.Pick) (domain.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pick.ID = s.doc.NextPickID
	s.doc.NextPickID++
	s.doc.Picks = append(s.doc.Picks, pick)
	if err := s.flush(); err != nil {
		return domain.Pick{}, err
	}
	return pick, nil
}

func (s *Storage) UpdatePickResult(_ context.Context, id int64, result domain.PickResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Picks {
		if s.doc.Picks[i].ID != id {
			continue
		}
		if s.doc.Picks[i].Result.Terminal() {
			return domain.ErrPickResolved
		}
		s.doc.Picks[i].Result = result
		return s.flush()
	}
	return domain.ErrPickNotFound
}

func (s *Storage) AddPayment(_ context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Payments = append(s.doc.Payments, payment)
	return s.flush()
}

func (s *Storage) ListPayments(_ context.Context) ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]domain.Payment, len(s.doc.Payments))
	copy(payments, s.doc.Payments)
	return payments, nil
}

func (s *Storage) ListChats(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.doc.Chats))
	copy(ids, s.doc.Chats)
	return ids, nil
}

func (s *Storage) AddChat(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.doc.Chats {
		if id == chatID {
			return nil
		}
	}
	s.doc.Chats = append(s.doc.Chats, chatID)
	return s.flush()
}

func (s *Storage) RemoveChat(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.doc.Chats {
		if id == chatID {
			s.doc.Chats = append(s.doc.Chats[:i], s.doc.Chats[i+1:]...)
			return s.flush()
		}
	}
	return nil
}
