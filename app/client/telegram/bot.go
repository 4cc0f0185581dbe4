package telegram

import (
	"context"
	"log/slog"
	"strings"

	"legalmind/app/config"
	"legalmind/app/domain"
	"legalmind/app/service/intake"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/do"
	"github.com/samber/oops"
)

const updateTimeoutSeconds = 30

// Bot is the Telegram binding: it long-polls for updates, dispatches
// commands and free text to the intake service, and sends the replies back.
type Bot struct {
	cfg       *config.Config
	intakeSvc *intake.Service
	api       *tgbotapi.BotAPI
}

func New(di *do.Injector) (*Bot, error) {
	cfg := do.MustInvoke[*config.Config](di)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, oops.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram bot authorized", "username", api.Self.UserName)

	return &Bot{
		cfg:       cfg,
		intakeSvc: do.MustInvoke[*intake.Service](di),
		api:       api,
	}, nil
}

// Run polls for updates until the context is cancelled. Each update is
// handled in its own goroutine so one user's turn never blocks another's;
// ordering per user is enforced by the session lock inside the engine.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			slog.Info("Telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			if update.Message == nil || update.Message.From == nil {
				continue
			}

			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	var reply string

	switch {
	case msg.IsCommand():
		reply = b.dispatchCommand(msg.Command(), userID)
	case text != "":
		// The analysis round-trip can take tens of seconds, keep the
		// user informed meanwhile.
		b.sendTyping(msg.Chat.ID)
		reply = b.intakeSvc.HandleText(ctx, userID, text)
	default:
		return
	}

	if reply == "" {
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		slog.Error("Failed to send telegram reply",
			"error", err,
			"user_id", userID)
	}
}

func (b *Bot) dispatchCommand(command string, userID int64) string {
	switch command {
	case "start":
		return b.intakeSvc.Welcome()
	case "help":
		return b.intakeSvc.Help()
	case "new":
		return b.intakeSvc.StartCase(userID)
	case "end":
		return b.intakeSvc.EndCase(userID)
	case "resources":
		return b.intakeSvc.ResourcesMenu()
	case "resources_shopping":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryShopping)
	case "resources_rent":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryRental)
	case "resources_privacy":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryPrivacy)
	case "resources_contracts":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryContracts)
	case "resources_damage":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryDamage)
	case "resources_work":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryEmployment)
	case "resources_general":
		return b.intakeSvc.ResourcesByTopic(domain.CategoryOther)
	default:
		return ""
	}
}

func (b *Bot) sendTyping(chatID int64) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		slog.Debug("Failed to send chat action", "error", err)
	}
}
