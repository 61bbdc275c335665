package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"

	"github.com/yardlineiq/picksserver/gen/model"
	"github.com/yardlineiq/picksserver/gen/table"
	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.SubscriberStorage = (*Storage)(nil)
var _ storage.PickStorage = (*Storage)(nil)
var _ storage.PaymentStorage = (*Storage)(nil)
var _ storage.ChatStorage = (*Storage)(nil)

func New(db *sql.DB, log *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: log.WithField("name", "sqlite_storage"),
	}
}

func (s *Storage) GetByEmail(ctx context.Context, email string) (domain.Subscriber, error) {
	var dest model.Subscribers
	err := table.Subscribers.
		SELECT(table.Subscribers.AllColumns).
		FROM(table.Subscribers).
		WHERE(table.Subscribers.Email.EQ(sqlite.String(email))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Subscriber{}, domain.ErrSubscriberNotFound
		}
		return domain.Subscriber{}, err
	}
	return convertSubscriberToDomain(dest)
}

func (s *Storage) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var dest []model.Subscribers
	err := table.Subscribers.
		SELECT(table.Subscribers.AllColumns).
		FROM(table.Subscribers).
		ORDER_BY(table.Subscribers.SignedUpAt.DESC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	return convertSubscribersToDomain(dest)
}

func (s *Storage) UpsertSubscriber(ctx context.Context, sub domain.Subscriber) error {
	dbSub := convertSubscriberFromDomain(sub)
	_, err := table.Subscribers.
		INSERT(table.Subscribers.AllColumns).
		MODEL(dbSub).
		ON_CONFLICT(table.Subscribers.Email).
		DO_UPDATE(sqlite.SET(
			table.Subscribers.Name.SET(table.Subscribers.EXCLUDED.Name),
			table.Subscribers.Kind.SET(table.Subscribers.EXCLUDED.Kind),
			table.Subscribers.PackageType.SET(table.Subscribers.EXCLUDED.PackageType),
			table.Subscribers.SubscriptionEnd.SET(table.Subscribers.EXCLUDED.SubscriptionEnd),
			table.Subscribers.PaymentRef.SET(table.Subscribers.EXCLUDED.PaymentRef),
		)).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}
	return nil
}

func (s *Storage) ListPicks(ctx context.Context, filter storage.PickFilter) ([]domain.Pick, error) {
	condition := sqlite.Bool(true)
	if filter.Type != "" {
		condition = condition.AND(table.Picks.PickType.EQ(sqlite.String(string(filter.Type))))
	}
	stmt := table.Picks.
		SELECT(table.Picks.AllColumns).
		FROM(table.Picks).
		WHERE(condition).
		ORDER_BY(table.Picks.GameTime.DESC(), table.Picks.ID.DESC())
	if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit))
	}
	var dest []model.Picks
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	return convertPicksToDomain(dest), nil
}

func (s *Storage) GetPick(ctx context.Context, id int64) (domain.Pick, error) {
	var dest model.Picks
	err := table.Picks.
		SELECT(table.Picks.AllColumns).
		FROM(table.Picks).
		WHERE(table.Picks.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Pick{}, domain.ErrPickNotFound
		}
		return domain.Pick{}, err
	}
	return convertPickToDomain(dest), nil
}

func (s *Storage) CreatePick(ctx context.Context, pick domain.Pick) (domain.Pick, error) {
	dbPick := convertPickFromDomain(pick)
	res, err := table.Picks.
		INSERT(table.Picks.MutableColumns).
		MODEL(dbPick).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Pick{}, fmt.Errorf("insert pick: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Pick{}, err
	}
	pick.ID = id
	return pick, nil
}

func (s *Storage) UpdatePickResult(ctx context.Context, id int64, result domain.PickResult) error {
	res, err := table.Picks.
		UPDATE(table.Picks.Result).
		SET(sqlite.String(string(result))).
		WHERE(table.Picks.ID.EQ(sqlite.Int(id)).
			AND(table.Picks.Result.EQ(sqlite.String(string(domain.ResultPending))))).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("update pick result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the pick is unknown or it is no longer pending.
		_, err := s.GetPick(ctx, id)
		if err != nil {
			return err
		}
		return domain.ErrPickResolved
	}
	return nil
}

func (s *Storage) AddPayment(ctx context.Context, payment domain.Payment) error {
	dbPayment := convertPaymentFromDomain(payment)
	_, err := table.Payments.
		INSERT(table.Payments.AllColumns).
		MODEL(dbPayment).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *Storage) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var dest []model.Payments
	err := table.Payments.
		SELECT(table.Payments.AllColumns).
		FROM(table.Payments).
		ORDER_BY(table.Payments.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	return convertPaymentsToDomain(dest)
}

func (s *Storage) ListChats(ctx context.Context) ([]int64, error) {
	var dest []model.BotChats
	err := table.BotChats.
		SELECT(table.BotChats.AllColumns).
		FROM(table.BotChats).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(dest))
	for _, chat := range dest {
		ids = append(ids, chat.ChatID)
	}
	return ids, nil
}

func (s *Storage) AddChat(ctx context.Context, chatID int64) error {
	_, err := table.BotChats.
		INSERT(table.BotChats.AllColumns).
		MODEL(model.BotChats{ChatID: chatID}).
		ON_CONFLICT(table.BotChats.ChatID).
		DO_NOTHING().
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) RemoveChat(ctx context.Context, chatID int64) error {
	_, err := table.BotChats.
		DELETE().
		WHERE(table.BotChats.ChatID.EQ(sqlite.Int(chatID))).
		ExecContext(ctx, s.db)
	return err
}
