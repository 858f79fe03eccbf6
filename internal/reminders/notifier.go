package reminders

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Reminder is what a notifier receives for one hearing.
type Reminder struct {
	TenantID    uuid.UUID
	HearingID   uuid.UUID
	CaseID      uuid.UUID
	CaseNumber  string
	CaseTitle   string
	HearingDate time.Time
	HearingTime string
	Courtroom   string
	Method      string
}

type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// LogNotifier writes each reminder as a structured log line. SMS and email
// delivery plug in behind Notifier.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, r Reminder) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "hearing reminder",
		"action", "hearing_reminder",
		"tenant_id", r.TenantID.String(),
		"hearing_id", r.HearingID.String(),
		"case_number", r.CaseNumber,
		"hearing_date", r.HearingDate.Format("2006-01-02"),
		"hearing_time", r.HearingTime,
		"method", r.Method,
	)
	return nil
}
