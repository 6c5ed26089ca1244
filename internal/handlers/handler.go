package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"telegram-remind-bot/internal/conversation"
	"telegram-remind-bot/internal/models"
	"telegram-remind-bot/internal/scheduler"
	"telegram-remind-bot/internal/storage"
)

type Handler struct {
	Bot   *tgbotapi.BotAPI
	DB    *storage.DB
	Conv  *conversation.Controller
	Sched *scheduler.Scheduler
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.HandleCommand(msg.Chat.ID, msg.Command())
		return
	}
	h.HandleText(msg)
}

func (h *Handler) HandleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	reply := h.Conv.HandleText(chatID, msg.Text)

	switch reply.Kind {
	case conversation.ReplyPrompt:
		h.send(chatID, fmt.Sprintf(textPromptWhen, reply.Label))
	case conversation.ReplyConfirmed:
		h.send(chatID, fmt.Sprintf(textConfirmed, reply.Moment.Format(dateLayout)))
	case conversation.ReplyPastRejected:
		h.send(chatID, textPastDate)
	case conversation.ReplyUnrecognized:
		h.send(chatID, textUnrecognized)
	case conversation.ReplyNone:
		// whitespace-only label, stay silent
	}
}

// SendReminder delivers a fired reminder with its snooze keyboard. Used
// as the scheduler's fire callback.
func (h *Handler) SendReminder(r models.Reminder) {
	msg := tgbotapi.NewMessage(r.ChatID, fmt.Sprintf(textReminderFired, r.Label))
	msg.ReplyMarkup = snoozeKeyboard(r.ID)
	_, _ = h.Bot.Send(msg)
}

func snoozeKeyboard(id uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(snoozeOptions); i += 2 {
		row := tgbotapi.NewInlineKeyboardRow()
		for _, opt := range snoozeOptions[i:min(i+2, len(snoozeOptions))] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				opt.title, fmt.Sprintf("snooze:%s:%d", id, opt.minutes)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *Handler) send(chatID int64, text string) {
	_, _ = h.Bot.Send(tgbotapi.NewMessage(chatID, text))
}
