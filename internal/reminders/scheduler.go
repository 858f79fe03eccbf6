// Package reminders runs the daily job that notifies about tomorrow's
// hearings.
package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type Scheduler struct {
	db       *gorm.DB
	notifier Notifier
	limiter  *rate.Limiter
	metrics  *metrics.Metrics
	hour     int
	now      func() time.Time
}

// NewScheduler builds a job that fires every day at hour:00 UTC and sends at
// most perSecond notifications per second.
func NewScheduler(db *gorm.DB, notifier Notifier, m *metrics.Metrics, hour int, perSecond float64) *Scheduler {
	return &Scheduler{
		db:       db,
		notifier: notifier,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), 1),
		metrics:  m,
		hour:     hour,
		now:      time.Now,
	}
}

// Start runs the job in a goroutine until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		for {
			timer := time.NewTimer(s.nextRun(s.now()).Sub(s.now()))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			sent, err := s.RunOnce(ctx)
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				slog.Error("hearing reminders failed", "action", "hearing_reminders", "sent", sent, "error", err)
			default:
				slog.Info("hearing reminders completed", "sent", sent)
			}
		}
	}()
}

func (s *Scheduler) nextRun(now time.Time) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// RunOnce notifies about every pending hearing dated tomorrow (UTC) and
// marks it sent. A failed notification leaves the hearing pending and the
// run continues with the next one.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	var hearings []models.Hearing
	err := s.db.WithContext(ctx).
		Where("hearing_date >= ? AND hearing_date < ?", from, to).
		Where("reminder_sent = ? AND is_active = ?", false, true).
		Where("status <> ? AND reminder_method <> ?", models.HearingCancelled, models.ReminderNone).
		Order("hearing_date ASC").
		Find(&hearings).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load hearings: %w", err)
	}
	if len(hearings) == 0 {
		return 0, nil
	}

	cases, err := s.casesFor(ctx, hearings)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, h := range hearings {
		if err := s.limiter.Wait(ctx); err != nil {
			return sent, err
		}

		c := cases[h.CaseID]
		r := Reminder{
			TenantID:    h.TenantID,
			HearingID:   h.ID,
			CaseID:      h.CaseID,
			CaseNumber:  c.CaseNumber,
			CaseTitle:   c.Title,
			HearingDate: h.HearingDate,
			HearingTime: h.HearingTime,
			Courtroom:   h.Courtroom,
			Method:      h.ReminderMethod,
		}
		if err := s.notifier.Notify(ctx, r); err != nil {
			s.metrics.Reminder("failed")
			slog.Error("hearing reminder not delivered",
				"action", "hearing_reminder", "tenant_id", h.TenantID.String(), "hearing_id", h.ID.String(), "error", err)
			continue
		}

		sentAt := s.now().UTC()
		err := s.db.WithContext(ctx).Model(&models.Hearing{}).
			Where("id = ? AND tenant_id = ?", h.ID, h.TenantID).
			Updates(map[string]interface{}{"reminder_sent": true, "reminder_sent_at": sentAt}).Error
		if err != nil {
			s.metrics.Reminder("failed")
			return sent, fmt.Errorf("failed to mark reminder sent: %w", err)
		}
		s.metrics.Reminder("sent")
		sent++
	}
	return sent, nil
}

// casesFor loads the cases referenced by hearings, matched on tenant as well
// as id.
func (s *Scheduler) casesFor(ctx context.Context, hearings []models.Hearing) (map[uuid.UUID]models.Case, error) {
	ids := make([]uuid.UUID, 0, len(hearings))
	for _, h := range hearings {
		ids = append(ids, h.CaseID)
	}

	var found []models.Case
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}

	byID := make(map[uuid.UUID]models.Case, len(found))
	tenantOf := make(map[uuid.UUID]uuid.UUID, len(hearings))
	for _, h := range hearings {
		tenantOf[h.CaseID] = h.TenantID
	}
	for _, c := range found {
		if tenantOf[c.ID] == c.TenantID {
			byID[c.ID] = c
		}
	}
	return byID, nil
}
