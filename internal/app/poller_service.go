package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// PollerService runs the homework status poll loop: fetch, validate,
// interpret, notify, sleep. It owns the query cursor and the last notified
// error message. A processing failure is reported to the chat and the loop
// carries on; only process termination stops it.
type PollerService struct {
	client         homework.Client
	telegramClient domainTelegram.Client // Use the interface from the domain package
	chatID         int64
	interval       time.Duration
	stats          *Stats
	logger         *logrus.Logger

	// Mutated only between iterations, by the loop goroutine itself.
	cursor       int64
	lastErrorMsg string
}

func NewPollerService(
	client homework.Client,
	tc domainTelegram.Client,
	chatID int64,
	interval time.Duration,
	stats *Stats,
	logger *logrus.Logger,
) *PollerService {
	return &PollerService{
		client:         client,
		telegramClient: tc,
		chatID:         chatID,
		interval:       interval,
		stats:          stats,
		logger:         logger,
		cursor:         time.Now().Unix(),
	}
}

// Run polls until ctx is cancelled.
func (s *PollerService) Run(ctx context.Context) {
	s.logger.Infof("Poller started. Interval: %s, initial cursor: %d", s.interval, s.cursor)
	for {
		s.runCycle(ctx)
		select {
		case <-ctx.Done():
			s.logger.Info("Poller stopped.")
			return
		case <-time.After(s.interval):
		}
	}
}

// runCycle executes one fetch-validate-interpret-notify pass.
func (s *PollerService) runCycle(ctx context.Context) {
	s.stats.CycleDone()

	raw, err := s.client.HomeworkStatuses(ctx, s.cursor)
	if err != nil {
		s.failCycle(err)
		return
	}
	s.logger.Info("Homework statuses fetched. Endpoint reachable.")

	envelope, err := homework.CheckResponse(raw)
	if err != nil {
		s.failCycle(err)
		return
	}
	s.logger.Infof("Response envelope validated. Records: %d", len(envelope.Homeworks))

	if len(envelope.Homeworks) > 0 {
		// Index 0 is the newest record in the chronological feed.
		msg, ok, err := homework.ParseStatus(envelope.Homeworks[0])
		switch {
		case err != nil:
			s.failCycle(err)
			return
		case !ok:
			s.logger.Debug("Newest record carries no status yet. Nothing to report.")
		default:
			s.notify(msg)
		}
	}

	// The query window is bounded by from_date, so the cursor advances on
	// every validated response, with or without records.
	s.advanceCursor(envelope.CurrentDate)
}

// failCycle converts a cycle error into a single notification attempt. An
// error identical to the previously notified one is suppressed so a stuck
// upstream does not flood the chat every interval.
func (s *PollerService) failCycle(err error) {
	s.stats.CycleFailed()
	s.logger.Errorf("Poll cycle failed: %v", err)

	msg := fmt.Sprintf("Program failure: %v", err)
	if msg == s.lastErrorMsg {
		s.stats.ErrorSuppressed()
		s.logger.Debug("Identical failure already notified. Suppressing repeat.")
		return
	}
	s.notify(msg)
	s.lastErrorMsg = msg
}

// notify delivers text to the configured chat. A delivery failure is a lost
// notification, not a fatal condition.
func (s *PollerService) notify(text string) {
	if err := s.telegramClient.SendMessage(s.chatID, text, nil); err != nil {
		s.logger.Errorf("Failed to send Telegram message to chat %d: %v", s.chatID, err)
		return
	}
	s.stats.NotificationSent()
	s.logger.Infof("Notification sent to chat %d.", s.chatID)
}

// advanceCursor moves the query window forward. The cursor is monotonic:
// a current_date behind it is ignored.
func (s *PollerService) advanceCursor(currentDate int64) {
	if currentDate < s.cursor {
		s.logger.Warnf("Envelope current_date %d is behind cursor %d. Keeping cursor.", currentDate, s.cursor)
		return
	}
	s.cursor = currentDate
}
