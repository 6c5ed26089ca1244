package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"telegram-remind-bot/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReminderRoundTrip(t *testing.T) {
	db := newTestDB(t)

	r := &models.Reminder{
		ID:     uuid.New(),
		ChatID: 42,
		Label:  "buy milk",
		DueAt:  time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.SaveReminder(r))

	got, err := db.GetReminder(r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, r.ID, got.ID)
	require.Equal(t, r.ChatID, got.ChatID)
	require.Equal(t, r.Label, got.Label)
	require.True(t, r.DueAt.Equal(got.DueAt))
}

func TestGetReminderMissing(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetReminder(uuid.New())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSaveReminderOverwritesDueAt(t *testing.T) {
	db := newTestDB(t)

	r := &models.Reminder{
		ID:     uuid.New(),
		ChatID: 42,
		Label:  "buy milk",
		DueAt:  time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.SaveReminder(r))

	r.DueAt = r.DueAt.Add(90 * time.Minute)
	require.NoError(t, db.SaveReminder(r))

	got, err := db.GetReminder(r.ID)
	require.NoError(t, err)
	require.True(t, got.DueAt.Equal(time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)))

	all, err := db.ListReminders()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestListChatRemindersFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveReminder(&models.Reminder{
		ID: uuid.New(), ChatID: 1, Label: "later", DueAt: base.Add(2 * time.Hour),
	}))
	require.NoError(t, db.SaveReminder(&models.Reminder{
		ID: uuid.New(), ChatID: 1, Label: "sooner", DueAt: base,
	}))
	require.NoError(t, db.SaveReminder(&models.Reminder{
		ID: uuid.New(), ChatID: 2, Label: "other chat", DueAt: base,
	}))

	rems, err := db.ListChatReminders(1)
	require.NoError(t, err)
	require.Len(t, rems, 2)
	require.Equal(t, "sooner", rems[0].Label)
	require.Equal(t, "later", rems[1].Label)
}

func TestDeleteReminder(t *testing.T) {
	db := newTestDB(t)

	r := &models.Reminder{ID: uuid.New(), ChatID: 1, Label: "gone", DueAt: time.Now()}
	require.NoError(t, db.SaveReminder(r))
	require.NoError(t, db.DeleteReminder(r.ID))

	got, err := db.GetReminder(r.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestListSkipsMalformedRows(t *testing.T) {
	db := newTestDB(t)

	r := &models.Reminder{
		ID: uuid.New(), ChatID: 1, Label: "good", DueAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.SaveReminder(r))
	_, err := db.Exec(`INSERT INTO reminders (id, chat_id, label, due_at)
		VALUES ('not-a-uuid', 1, 'bad', 'not-a-date')`)
	require.NoError(t, err)

	rems, err := db.ListReminders()
	require.NoError(t, err)
	require.Len(t, rems, 1)
	require.Equal(t, "good", rems[0].Label)
}

func TestConversationStateDefaults(t *testing.T) {
	db := newTestDB(t)

	st, label, err := db.ConversationState(42)
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingLabel, st)
	require.Empty(t, label)
}

func TestConversationStateRoundTrip(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.SetConversationState(42, models.StateAwaitingDateTime, "buy milk"))

	st, label, err := db.ConversationState(42)
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingDateTime, st)
	require.Equal(t, "buy milk", label)

	require.NoError(t, db.SetConversationState(42, models.StateAwaitingLabel, ""))

	st, label, err = db.ConversationState(42)
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingLabel, st)
	require.Empty(t, label)
}
