package tgbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/service"
)

const recentPicksLimit = 5

func (b *Bot) runCommand(ctx context.Context, chatID int64, command string) (string, error) {
	switch command {
	case "start", "help":
		return strings.Join([]string{
			"/sub - get new free picks as they drop",
			"/unsub - stop notifications",
			"/picks - latest free picks",
			"/stats - season record",
		}, "\n"), nil
	case "sub":
		if err := b.chats.AddChat(ctx, chatID); err != nil {
			return "", err
		}
		b.subs.Add(chatID)
		return "Subscribed. New free picks will land here.", nil
	case "unsub":
		if err := b.chats.RemoveChat(ctx, chatID); err != nil {
			return "", err
		}
		b.subs.Remove(chatID)
		return "Unsubscribed.", nil
	case "picks":
		return b.recentPicks(ctx)
	case "stats":
		stats, err := b.ledger.Stats(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d picks published, win rate %s", stats.TotalPicks, stats.WinRate), nil
	case "":
		return "", nil
	default:
		return "unknown command, try /help", nil
	}
}

func (b *Bot) recentPicks(ctx context.Context) (string, error) {
	picks, err := b.ledger.ListPicks(ctx, service.ListPicksFilter{
		Type:  domain.PickFree,
		Limit: recentPicksLimit,
	})
	if err != nil {
		return "", err
	}
	if len(picks) == 0 {
		return "No picks yet.", nil
	}
	lines := make([]string, 0, len(picks))
	for _, pick := range picks {
		lines = append(lines, formatPick(pick))
	}
	return strings.Join(lines, "\n\n"), nil
}

func formatPick(pick domain.Pick) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Week %d: %s\n", pick.Week, pick.Game)
	fmt.Fprintf(&sb, "Pick: %s (%s)\n", pick.PickText, pick.Confidence)
	fmt.Fprintf(&sb, "Kickoff: %s", pick.GameTime.Format("Mon Jan 2 15:04 MST"))
	if pick.Result.Terminal() {
		fmt.Fprintf(&sb, "\nResult: %s", pick.Result)
	}
	return sb.String()
}
