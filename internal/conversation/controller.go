package conversation

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"telegram-remind-bot/internal/models"
	"telegram-remind-bot/internal/resolve"
)

// Store persists reminders and the per-chat capture state.
type Store interface {
	SaveReminder(r *models.Reminder) error
	ConversationState(chatID int64) (models.State, string, error)
	SetConversationState(chatID int64, st models.State, pendingLabel string) error
}

// Notifier schedules the notification trigger for a reminder.
type Notifier interface {
	Schedule(id uuid.UUID, body string, at time.Time) error
}

type ReplyKind int

const (
	// ReplyNone: empty label input, say nothing.
	ReplyNone ReplyKind = iota
	// ReplyPrompt: label accepted, ask when to remind.
	ReplyPrompt
	// ReplyConfirmed: reminder created at Moment.
	ReplyConfirmed
	// ReplyPastRejected: a moment was parsed but is not in the future.
	ReplyPastRejected
	// ReplyUnrecognized: nothing parseable in the text.
	ReplyUnrecognized
)

type Reply struct {
	Kind   ReplyKind
	Label  string
	Moment time.Time
}

// Controller drives the two-state capture protocol: a chat is either
// awaiting a label or awaiting a datetime for the pending label.
type Controller struct {
	store  Store
	notify Notifier
	clock  clockwork.Clock
	loc    *time.Location

	mu sync.Mutex // one in-flight resolution per conversation
}

func New(store Store, notify Notifier, clock clockwork.Clock, loc *time.Location) *Controller {
	return &Controller{store: store, notify: notify, clock: clock, loc: loc}
}

// HandleText feeds one user message through the protocol and reports
// how to answer. On a successful capture the reminder is persisted and
// its trigger scheduled; both are fire-and-forget, a failure is logged
// and never shown as a protocol error.
func (c *Controller) HandleText(chatID int64, text string) Reply {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, pending, err := c.store.ConversationState(chatID)
	if err != nil {
		log.Println("read conversation state:", err)
		st = models.StateAwaitingLabel
	}

	if st == models.StateAwaitingLabel {
		label := strings.TrimSpace(text)
		if label == "" {
			return Reply{Kind: ReplyNone}
		}
		c.setState(chatID, models.StateAwaitingDateTime, label)
		return Reply{Kind: ReplyPrompt, Label: label}
	}

	// Every datetime attempt ends the capture cycle. On failure the
	// label is discarded and the user restates it.
	c.setState(chatID, models.StateAwaitingLabel, "")

	at, err := resolve.Resolve(text, c.clock.Now().In(c.loc))
	switch {
	case errors.Is(err, resolve.ErrPastMoment):
		return Reply{Kind: ReplyPastRejected}
	case err != nil:
		return Reply{Kind: ReplyUnrecognized}
	}

	r := &models.Reminder{ID: uuid.New(), ChatID: chatID, Label: pending, DueAt: at}
	if err := c.store.SaveReminder(r); err != nil {
		log.Println("save reminder:", err)
	}
	if err := c.notify.Schedule(r.ID, r.Label, r.DueAt); err != nil {
		log.Println("schedule notification:", err)
	}
	return Reply{Kind: ReplyConfirmed, Label: pending, Moment: at}
}

// Reset drops any pending label and returns the chat to label capture.
func (c *Controller) Reset(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setState(chatID, models.StateAwaitingLabel, "")
}

func (c *Controller) setState(chatID int64, st models.State, label string) {
	if err := c.store.SetConversationState(chatID, st, label); err != nil {
		log.Println("write conversation state:", err)
	}
}
