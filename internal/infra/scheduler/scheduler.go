package scheduler

import (
	"fmt"
	"time"

	"homework_status_bot/internal/app"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DigestScheduler sends a periodic summary of poller activity to the chat,
// so the operator gets a heartbeat even when no status changes for days.
type DigestScheduler struct {
	cronEngine     *cron.Cron
	stats          *app.Stats
	telegramClient domainTelegram.Client
	chatID         int64
	cronSpec       string
	logger         *logrus.Logger
}

func NewDigestScheduler(
	stats *app.Stats,
	tc domainTelegram.Client,
	chatID int64,
	cronSpec string, // e.g., "0 9 * * *" (9 AM daily)
	logger *logrus.Logger,
) *DigestScheduler {
	return &DigestScheduler{
		cronEngine:     cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		stats:          stats,
		telegramClient: tc,
		chatID:         chatID,
		cronSpec:       cronSpec,
		logger:         logger,
	}
}

func (s *DigestScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, s.sendDigest)
	if err != nil {
		return fmt.Errorf("could not add daily digest cron job: %w", err)
	}
	s.cronEngine.Start()
	s.logger.Infof("Digest scheduler started. Spec: %q", s.cronSpec)
	return nil
}

// sendDigest reports the accumulated activity window and resets it. A
// failed digest is logged and dropped, the same as any other notification.
func (s *DigestScheduler) sendDigest() {
	w := s.stats.TakeWindow()
	text := FormatDigest(w)
	if err := s.telegramClient.SendMessage(s.chatID, text, nil); err != nil {
		s.logger.Errorf("Failed to send daily digest to chat %d: %v", s.chatID, err)
		return
	}
	s.logger.Info("Daily digest sent.")
}

// FormatDigest renders the one-line activity summary.
func FormatDigest(w app.Window) string {
	return fmt.Sprintf(
		"Daily digest: %d poll cycles, %d notifications sent, %d failed cycles (%d duplicate failures suppressed).",
		w.Cycles, w.Notifications, w.Failures, w.SuppressedErrors,
	)
}

func (s *DigestScheduler) Stop() {
	s.logger.Info("Stopping digest scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	s.logger.Info("Digest scheduler gracefully stopped.")
}
