package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"telegram-remind-bot/internal/resolve"
)

func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	// always answer callback
	_, _ = h.Bot.Request(tgbotapi.NewCallback(cq.ID, ""))

	parts := strings.Split(cq.Data, ":")
	switch {
	case parts[0] == "snooze" && len(parts) == 3:
		h.handleSnooze(chatID, parts[1], parts[2])
	case parts[0] == "del" && len(parts) == 2:
		h.handleDelete(chatID, parts[1])
	}
}

// handleSnooze pushes the reminder forward from its current due time,
// replaces the trigger and keeps the same reminder row.
func (h *Handler) handleSnooze(chatID int64, rawID, rawMinutes string) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return
	}
	minutes, err := strconv.Atoi(rawMinutes)
	if err != nil {
		return
	}

	r, err := h.DB.GetReminder(id)
	if err != nil || r == nil {
		log.Println("snooze: reminder not found:", rawID)
		return
	}

	if err := h.Sched.Cancel(r.ID); err != nil {
		log.Println("snooze: cancel trigger:", err)
	}
	r.DueAt = resolve.Snooze(r.DueAt, minutes)
	if err := h.DB.SaveReminder(r); err != nil {
		log.Println("snooze: save reminder:", err)
	}
	if err := h.Sched.Schedule(r.ID, r.Label, r.DueAt); err != nil {
		log.Println("snooze: schedule trigger:", err)
	}

	h.send(chatID, fmt.Sprintf(textSnoozed, r.DueAt.Format(dateLayout)))
}

func (h *Handler) handleDelete(chatID int64, rawID string) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return
	}

	if err := h.Sched.Cancel(id); err != nil {
		log.Println("delete: cancel trigger:", err)
	}
	if err := h.DB.DeleteReminder(id); err != nil {
		log.Println("delete: remove reminder:", err)
		return
	}
	h.send(chatID, textDeleted)
}
