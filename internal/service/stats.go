package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/storage"
)

// listAllPicks matches every pick regardless of type.
var listAllPicks = storage.PickFilter{}

type Stats struct {
	TotalSubscribers int    `json:"totalSubscribers"`
	PaidSubscribers  int    `json:"paidSubscribers"`
	EmailSignups     int    `json:"emailSignups"`
	TotalPicks       int    `json:"totalPicks"`
	WinRate          string `json:"winRate"`
}

// Stats aggregates the ledger for the admin dashboard. Paid counts
// only currently active subscriptions. With no resolved picks the win
// rate falls back to the configured constant instead of dividing by
// zero.
func (s *Ledger) Stats(ctx context.Context) (Stats, error) {
	now := s.now()

	subs, err := s.subscribers.ListSubscribers(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("listing subscribers: %w", err)
	}
	picks, err := s.picks.ListPicks(ctx, listAllPicks)
	if err != nil {
		return Stats{}, fmt.Errorf("listing picks: %w", err)
	}

	stats := Stats{
		TotalSubscribers: len(subs),
		TotalPicks:       len(picks),
		WinRate:          winRate(picks, s.fallbackWinRate),
	}
	for _, sub := range subs {
		if sub.Active(now) {
			stats.PaidSubscribers++
		}
		if sub.Kind == domain.KindFreeSignup {
			stats.EmailSignups++
		}
	}
	return stats, nil
}

func winRate(picks []domain.Pick, fallback string) string {
	var resolved, won int
	for _, pick := range picks {
		if !pick.Result.Terminal() {
			continue
		}
		resolved++
		if pick.Result == domain.ResultWin {
			won++
		}
	}
	if resolved == 0 {
		return fallback
	}
	return fmt.Sprintf("%.1f%%", float64(won)/float64(resolved)*100)
}

// ExportSubscribersCSV writes every subscriber as CSV for the admin
// export download.
func (s *Ledger) ExportSubscribersCSV(ctx context.Context, w io.Writer) error {
	subs, err := s.subscribers.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("listing subscribers: %w", err)
	}
	now := s.now()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"email", "name", "signup_date", "kind", "package_type", "status"}); err != nil {
		return err
	}
	for _, sub := range subs {
		record := []string{
			sub.Email,
			sub.Name,
			sub.SignedUpAt.UTC().Format(time.RFC3339),
			string(sub.Kind),
			string(sub.PackageType),
			sub.Status(now),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
