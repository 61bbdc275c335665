package file

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/storage"
)

func TestStorage_survivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.json")

	st, err := New(path)
	require.NoError(t, err)

	sub := domain.Subscriber{
		ID:         uuid.New(),
		Email:      "ann@test.com",
		Name:       "Ann",
		Kind:       domain.KindFreeSignup,
		SignedUpAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.UpsertSubscriber(ctx, sub))

	pick, err := st.CreatePick(ctx, domain.Pick{
		Week:       1,
		Season:     2025,
		Game:       "Chiefs vs Patriots",
		PickText:   "Chiefs -3.5",
		Confidence: domain.ConfidenceHigh,
		PickType:   domain.PickFree,
		GameTime:   time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC),
		Result:     domain.ResultPending,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, pick.ID)
	require.NoError(t, st.AddChat(ctx, 42))

	reopened, err := New(path)
	require.NoError(t, err)

	got, err := reopened.GetByEmail(ctx, "ann@test.com")
	require.NoError(t, err)
	require.Equal(t, sub.ID, got.ID)

	picks, err := reopened.ListPicks(ctx, storage.PickFilter{})
	require.NoError(t, err)
	require.Len(t, picks, 1)

	next, err := reopened.CreatePick(ctx, domain.Pick{
		Week:     2,
		Game:     "Bills vs Jets",
		PickText: "Bills ML",
		PickType: domain.PickPremium,
		Result:   domain.ResultPending,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, next.ID, "pick ids stay monotonic across restarts")

	chats, err := reopened.ListChats(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{42}, chats)
}

func TestStorage_resultSetOnce(t *testing.T) {
	ctx := context.Background()
	st, err := New(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	pick, err := st.CreatePick(ctx, domain.Pick{
		Week:     1,
		Game:     "A vs B",
		PickText: "A -3",
		PickType: domain.PickFree,
		Result:   domain.ResultPending,
	})
	require.NoError(t, err)

	require.NoError(t, st.UpdatePickResult(ctx, pick.ID, domain.ResultWin))
	err = st.UpdatePickResult(ctx, pick.ID, domain.ResultLoss)
	require.ErrorIs(t, err, domain.ErrPickResolved)

	err = st.UpdatePickResult(ctx, 999, domain.ResultWin)
	require.ErrorIs(t, err, domain.ErrPickNotFound)
}
