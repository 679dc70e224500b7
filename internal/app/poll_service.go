// internal/app/poll_service.go
package app

import (
	"context"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const errorMessagePrefix = "Сбой в работе программы: "

// Poller runs the fetch, validate, format, dedupe and notify cycle.
// It is not safe for concurrent use; Run drives it from a single goroutine.
type Poller struct {
	fetcher  homework.Fetcher
	notifier *Notifier
	schedule cron.Schedule
	chatID   int64
	logger   *logrus.Entry

	// fromDate is fixed at startup and sent unchanged on every request.
	fromDate int64

	lastNotificationMessage string
	lastErrorMessage        string

	now func() time.Time
}

func NewPoller(
	fetcher homework.Fetcher,
	notifier *Notifier,
	schedule cron.Schedule,
	logger *logrus.Entry,
	chatID int64, // Destination for both status and failure messages
	startedAt time.Time, // Sent as from_date on every request
) *Poller {
	return &Poller{
		fetcher:  fetcher,
		notifier: notifier,
		schedule: schedule,
		chatID:   chatID,
		fromDate: startedAt.Unix(),
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes cycles until ctx is done, pausing per the schedule after each
// one regardless of its outcome. It returns ctx.Err().
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.fromDate).Info("Starting homework status polling")
	for {
		p.RunCycle(ctx)
		if err := ctx.Err(); err != nil {
			p.logger.Info("Stopping homework status polling")
			return err
		}

		timer := time.NewTimer(p.pause())
		select {
		case <-ctx.Done():
			timer.Stop()
			p.logger.Info("Stopping homework status polling")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// pause returns how long to wait after a cycle that ended now.
func (p *Poller) pause() time.Duration {
	now := p.now()
	next := p.schedule.Next(now)
	p.logger.WithField("next_cycle", next.Format(time.RFC3339)).Debug("Cycle finished")
	return next.Sub(now)
}

// RunCycle performs a single cycle without pausing.
func (p *Poller) RunCycle(ctx context.Context) {
	message, err := p.check(ctx)
	if err != nil {
		kind, _ := homework.KindOf(err)
		p.logger.WithError(err).WithField("kind", kind.String()).Error("Homework status check failed")
		p.deliver(errorMessagePrefix+err.Error(), &p.lastErrorMessage)
		return
	}
	p.deliver(message, &p.lastNotificationMessage)
}

func (p *Poller) check(ctx context.Context) (string, error) {
	raw, err := p.fetcher.FetchStatuses(ctx, p.fromDate)
	if err != nil {
		return "", err
	}
	rec, err := CheckResponse(raw)
	if err != nil {
		return "", err
	}
	p.logger.WithFields(logrus.Fields{"homework": rec.Name, "status": string(rec.Status)}).Debug("Latest homework received")
	return FormatStatus(rec)
}

// deliver sends message unless it equals *last. The slot only moves on a
// successful send so a failed delivery is attempted again next cycle.
func (p *Poller) deliver(message string, last *string) {
	if message == *last {
		p.logger.Debug("Message unchanged since last delivery, skipping")
		return
	}
	if p.notifier.Notify(p.chatID, message) {
		*last = message
		p.logger.Info("Notification delivered")
	}
}
