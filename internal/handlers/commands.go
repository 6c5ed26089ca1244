package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) HandleCommand(chatID int64, cmd string) {
	switch cmd {
	case "start":
		h.HandleStart(chatID)
	case "list":
		h.HandleList(chatID)
	}
}

// ---------------- /start --------------------
func (h *Handler) HandleStart(chatID int64) {
	h.Conv.Reset(chatID)
	h.send(chatID, textStart)
}

// ---------------- /list ---------------------
// One message per reminder, each with its delete button.
func (h *Handler) HandleList(chatID int64) {
	rems, err := h.DB.ListChatReminders(chatID)
	if err != nil || len(rems) == 0 {
		h.send(chatID, textListEmpty)
		return
	}

	for _, r := range rems {
		msg := tgbotapi.NewMessage(chatID,
			fmt.Sprintf("%s\n%s", r.Label, r.DueAt.Format(dateLayout)))
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(btnDelete, "del:"+r.ID.String()),
			),
		)
		_, _ = h.Bot.Send(msg)
	}
}
