package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	authservice "github.com/yardlineiq/picksserver/auth/service"
	"github.com/yardlineiq/picksserver/bot/tgbot"
	"github.com/yardlineiq/picksserver/internal/config"
	"github.com/yardlineiq/picksserver/internal/logger"
	"github.com/yardlineiq/picksserver/internal/migrate"
	"github.com/yardlineiq/picksserver/internal/notify"
	"github.com/yardlineiq/picksserver/internal/payment"
	"github.com/yardlineiq/picksserver/internal/service"
	"github.com/yardlineiq/picksserver/internal/storage"
	filestorage "github.com/yardlineiq/picksserver/internal/storage/file"
	memstorage "github.com/yardlineiq/picksserver/internal/storage/mem"
	sqlitestorage "github.com/yardlineiq/picksserver/internal/storage/sqlite"
	"github.com/yardlineiq/picksserver/internal/subscription"
	"github.com/yardlineiq/picksserver/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	var (
		subscribers storage.SubscriberStorage
		picks       storage.PickStorage
		payments    storage.PaymentStorage
		chats       storage.ChatStorage
	)
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := storage.Open(cfg.Storage.SqliteFile)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := migrate.Up(db); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
		st := sqlitestorage.New(db, log)
		subscribers, picks, payments, chats = st, st, st, st
	case "memory":
		st := memstorage.New()
		subscribers, picks, payments, chats = st, st, st, st
	case "file":
		st, err := filestorage.New(cfg.Storage.FilePath)
		if err != nil {
			return err
		}
		subscribers, picks, payments, chats = st, st, st, st
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	seasonEnd, err := cfg.Subscriptions.SeasonEndTime()
	if err != nil {
		return err
	}
	policy := subscription.NewPolicy(seasonEnd)

	ledger := service.New(subscribers, picks, payments, policy, cfg.Subscriptions.FallbackWinRate, log)
	if cfg.Mail.Enabled {
		ledger.SetNotifier(notify.NewMailer(
			cfg.Mail.PublicKey, cfg.Mail.PrivateKey, cfg.Mail.Sender, cfg.Mail.Recipients, log))
	}

	gate := payment.NewStripeGate(cfg.Stripe.SecretKey, time.Duration(cfg.Stripe.TimeoutSeconds)*time.Second)

	auth, err := authservice.New(cfg.Auth)
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(ledger, chats, cfg, log)
		if err != nil {
			return err
		}
		ledger.SetAnnouncer(bot)
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(ledger, gate, auth, cfg.Server, log)
	log.WithField("port", cfg.Server.Port).Info("starting server")
	return server.Serve()
}
