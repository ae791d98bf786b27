package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

// TelegramNotifier turns booking and entry transaction results into member
// notifications. It is fed plain result data by the HTTP layer; the engine
// never calls it.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, res *domain.BookingResult) {
	if res.Member == nil {
		return
	}
	text := fmt.Sprintf(
		"*Prenotazione confermata!*\n\n"+"Sala: %s\n"+"Orario: %s - %s\n"+"Crediti: %s",
		res.Room.Name,
		res.Booking.StartTime.Format("02.01.2006 15:04"),
		res.Booking.EndTime.Format("15:04"),
		res.Booking.CreditsConsumed.String(),
	)
	if res.Unmet.IsPositive() {
		text += fmt.Sprintf("\nOre extra da saldare: %s", res.Unmet.String())
	}
	n.send(ctx, res.Member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, res *domain.BookingResult) {
	if res.Member == nil {
		return
	}
	text := fmt.Sprintf(
		"*Prenotazione annullata*\n\n"+"Sala: %s\n"+"Orario: %s\n"+"Crediti rimborsati: %s",
		res.Room.Name,
		res.Booking.StartTime.Format("02.01.2006 15:04"),
		res.Booking.CreditsConsumed.String(),
	)
	n.send(ctx, res.Member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyEntryRegistered(ctx context.Context, res *domain.EntryResult) {
	text := fmt.Sprintf(
		"*Ingresso registrato*\n\n"+"Data: %s\n"+"Ingressi scalati: %d",
		res.Entry.EntryDate.Format("02.01.2006"),
		res.Entry.TokensConsumed,
	)
	n.send(ctx, res.Member.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
