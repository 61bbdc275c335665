package storage

import (
	"context"

	"github.com/yardlineiq/picksserver/internal/domain"
)

// PickFilter narrows ListPicks. A zero value returns everything.
type PickFilter struct {
	Type  domain.PickType // empty matches all types
	Limit int             // 0 means no limit
}

type SubscriberStorage interface {
	// GetByEmail looks a subscriber up by its normalized email key and
	// returns domain.ErrSubscriberNotFound when absent.
	GetByEmail(ctx context.Context, email string) (domain.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	// UpsertSubscriber inserts or replaces by email key, last writer wins.
	UpsertSubscriber(ctx context.Context, sub domain.Subscriber) error
}

type PickStorage interface {
	// ListPicks returns picks ordered by game time descending, newest
	// id first on ties.
	ListPicks(ctx context.Context, filter PickFilter) ([]domain.Pick, error)
	GetPick(ctx context.Context, id int64) (domain.Pick, error)
	// CreatePick assigns the id and returns the stored pick.
	CreatePick(ctx context.Context, pick domain.Pick) (domain.Pick, error)
	// UpdatePickResult sets the result of a still-pending pick and
	// returns domain.ErrPickResolved when it already has a final one.
	UpdatePickResult(ctx context.Context, id int64, result domain.PickResult) error
}

type PaymentStorage interface {
	AddPayment(ctx context.Context, payment domain.Payment) error
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// ChatStorage persists the telegram chats subscribed to announcements.
type ChatStorage interface {
	ListChats(ctx context.Context) ([]int64, error)
	AddChat(ctx context.Context, chatID int64) error
	RemoveChat(ctx context.Context, chatID int64) error
}
