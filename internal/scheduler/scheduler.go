package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"telegram-remind-bot/internal/models"
	"telegram-remind-bot/internal/storage"
)

// Scheduler owns the one-shot notification triggers, one per reminder.
// It is the process-local stand-in for a platform notification center:
// triggers do not survive a restart, Start reconciles the stored
// reminders against that.
type Scheduler struct {
	s     gocron.Scheduler
	db    *storage.DB
	clock clockwork.Clock
	fired func(models.Reminder)

	mu   sync.Mutex
	jobs map[uuid.UUID]pendingJob // reminder id -> live trigger
}

type pendingJob struct {
	jobID uuid.UUID
	body  string
}

func New(db *storage.DB, clock clockwork.Clock, fired func(models.Reminder)) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		s:     s,
		db:    db,
		clock: clock,
		fired: fired,
		jobs:  make(map[uuid.UUID]pendingJob),
	}, nil
}

// Start re-schedules stored reminders that are still in the future and
// drops the ones whose trigger is gone (already fired before the
// restart), then begins dispatching.
func (sc *Scheduler) Start() error {
	rems, err := sc.db.ListReminders()
	if err != nil {
		return err
	}

	now := sc.clock.Now()
	for _, r := range rems {
		if !r.DueAt.After(now) {
			if err := sc.db.DeleteReminder(r.ID); err != nil {
				log.Println("drop stale reminder:", err)
			}
			continue
		}
		if err := sc.Schedule(r.ID, r.Label, r.DueAt); err != nil {
			log.Println("reschedule reminder:", err)
		}
	}

	sc.s.Start()
	return nil
}

// Schedule registers a one-shot trigger for the reminder. The reminder
// row is re-read at fire time so a deleted reminder never notifies.
func (sc *Scheduler) Schedule(id uuid.UUID, body string, at time.Time) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	j, err := sc.s.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(func() { sc.fire(id) }),
	)
	if err != nil {
		return err
	}
	sc.jobs[id] = pendingJob{jobID: j.ID(), body: body}
	return nil
}

// Cancel removes the reminder's trigger if one is still pending.
func (sc *Scheduler) Cancel(id uuid.UUID) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	p, ok := sc.jobs[id]
	if !ok {
		return nil
	}
	delete(sc.jobs, id)
	return sc.s.RemoveJob(p.jobID)
}

// ListPending reports the bodies of reminders still holding a live
// trigger.
func (sc *Scheduler) ListPending() []string {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	bodies := make([]string, 0, len(sc.jobs))
	for _, p := range sc.jobs {
		bodies = append(bodies, p.body)
	}
	return bodies
}

func (sc *Scheduler) Shutdown() error {
	return sc.s.Shutdown()
}

func (sc *Scheduler) fire(id uuid.UUID) {
	sc.mu.Lock()
	delete(sc.jobs, id)
	sc.mu.Unlock()

	r, err := sc.db.GetReminder(id)
	if err != nil {
		log.Println("load fired reminder:", err)
		return
	}
	if r == nil {
		return // deleted while the trigger was pending
	}
	sc.fired(*r)
}
