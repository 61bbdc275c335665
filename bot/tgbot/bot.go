// Package tgbot pushes new picks to subscribed Telegram chats and
// answers a few read-only commands.
package tgbot

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/yardlineiq/picksserver/internal/config"
	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/service"
	"github.com/yardlineiq/picksserver/internal/storage"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	ledger *service.Ledger
	chats  storage.ChatStorage
	log    *logrus.Entry

	// subs mirrors the stored chat ids so announcements don't hit
	// storage on every pick.
	subs mapset.Set[int64]

	// cancel func to stop the bot
	cancel func()
}

func New(ledger *service.Ledger, chats storage.ChatStorage, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.ApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Server.Debug
	if _, err := bot.GetMe(); err != nil {
		return nil, err
	}

	stored, err := chats.ListChats(context.Background())
	if err != nil {
		return nil, err
	}
	subs := mapset.NewSet[int64]()
	for _, chatID := range stored {
		subs.Add(chatID)
	}

	return &Bot{
		bot:    bot,
		ledger: ledger,
		chats:  chats,
		log:    log.WithField("name", "tg_bot"),
		subs:   subs,
	}, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	chatID := update.Message.Chat.ID
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": chatID,
		"text":    update.Message.Text,
	})

	text, err := b.runCommand(ctx, chatID, update.Message.Command())
	if err != nil {
		log.WithError(err).Error("command failed")
		text = "something went wrong, try again later"
	}
	if text == "" {
		return
	}
	if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.WithError(err).Error("send error")
	}
}

// AnnouncePick pushes a freshly published pick to every subscribed
// chat. Implements service.Announcer.
func (b *Bot) AnnouncePick(pick domain.Pick) {
	text := formatPick(pick)
	for _, chatID := range b.subs.ToSlice() {
		if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			b.log.WithError(err).WithField("chat_id", chatID).Error("announce error")
		}
	}
}
