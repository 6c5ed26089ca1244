package storage

import (
	"database/sql"
	"embed"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"telegram-remind-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- reminders -------------------------------------------------------

// SaveReminder inserts or replaces a reminder; snoozing reuses it to
// overwrite due_at.
func (d *DB) SaveReminder(r *models.Reminder) error {
	_, err := d.Exec(`
        INSERT OR REPLACE INTO reminders (id, chat_id, label, due_at)
        VALUES (?,?,?,?)
    `, r.ID.String(), r.ChatID, r.Label, r.DueAt.Format(time.RFC3339))
	return err
}

func (d *DB) GetReminder(id uuid.UUID) (*models.Reminder, error) {
	var r models.Reminder
	var rawID, rawDue string

	err := d.QueryRow(`
        SELECT id, chat_id, label, due_at
        FROM reminders WHERE id=?`, id.String(),
	).Scan(&rawID, &r.ChatID, &r.Label, &rawDue)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if r.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	if r.DueAt, err = time.Parse(time.RFC3339, rawDue); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReminders returns every stored reminder ordered by due time.
// Rows that fail to decode are skipped, never fatal.
func (d *DB) ListReminders() ([]models.Reminder, error) {
	return d.listWhere(`SELECT id, chat_id, label, due_at FROM reminders ORDER BY due_at`)
}

// ListChatReminders returns one chat's reminders ordered by due time.
func (d *DB) ListChatReminders(chatID int64) ([]models.Reminder, error) {
	return d.listWhere(`
        SELECT id, chat_id, label, due_at FROM reminders
        WHERE chat_id=? ORDER BY due_at`, chatID)
}

func (d *DB) listWhere(query string, args ...any) ([]models.Reminder, error) {
	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var rawID, rawDue string
		if err := rows.Scan(&rawID, &r.ChatID, &r.Label, &rawDue); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(rawID); err != nil {
			log.Println("skipping malformed reminder row:", err)
			continue
		}
		if r.DueAt, err = time.Parse(time.RFC3339, rawDue); err != nil {
			log.Println("skipping malformed reminder row:", err)
			continue
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func (d *DB) DeleteReminder(id uuid.UUID) error {
	_, err := d.Exec(`DELETE FROM reminders WHERE id=?`, id.String())
	return err
}

// ---------- conversation state (fsm) ----------------------------------------

func (d *DB) ConversationState(chatID int64) (models.State, string, error) {
	var st int
	var label string

	err := d.QueryRow(`
        SELECT state, pending_label FROM conversations WHERE chat_id=?`, chatID,
	).Scan(&st, &label)

	if errors.Is(err, sql.ErrNoRows) {
		return models.StateAwaitingLabel, "", nil
	}
	if err != nil {
		return models.StateAwaitingLabel, "", err
	}
	return models.State(st), label, nil
}

func (d *DB) SetConversationState(chatID int64, st models.State, pendingLabel string) error {
	_, err := d.Exec(`
        INSERT INTO conversations(chat_id, state, pending_label) VALUES (?,?,?)
        ON CONFLICT(chat_id) DO UPDATE SET state=excluded.state,
            pending_label=excluded.pending_label`,
		chatID, int(st), pendingLabel)
	return err
}
