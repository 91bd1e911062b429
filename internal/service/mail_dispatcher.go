//go:generate mockery --name Notifier --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Notifier is the notification-sender collaborator of the auth service.
// Deliveries are fire-and-forget: enqueueing never fails the caller, and a
// failed send is only ever logged.
type Notifier interface {
	SendActivationEmail(email, code string)
	SendPasswordResetEmail(email, code string)
}

type mailJob struct {
	to      string
	subject string
	body    string
}

// MailDispatcher delivers mail from a background worker goroutine so that
// transient mail-provider failures never fail the primary operation.
type MailDispatcher struct {
	mailer      Mailer
	frontendURL string
	logger      *slog.Logger

	jobs      chan mailJob
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewMailDispatcher(mailer Mailer, frontendURL string, logger *slog.Logger) *MailDispatcher {
	d := &MailDispatcher{
		mailer:      mailer,
		frontendURL: frontendURL,
		logger:      logger,
		jobs:        make(chan mailJob, 64),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *MailDispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := d.mailer.Send(ctx, job.to, job.subject, job.body); err != nil {
			// Failure is observed by the log only, never by the caller.
			d.logger.Error("Background email delivery failed",
				"error", err,
				"to", job.to,
				"subject", job.subject,
			)
		}
		cancel()
	}
}

// Close stops accepting jobs and waits for in-flight deliveries.
func (d *MailDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *MailDispatcher) enqueue(job mailJob) {
	select {
	case d.jobs <- job:
	default:
		d.logger.Warn("Mail queue full, dropping email", "to", job.to, "subject", job.subject)
	}
}

func (d *MailDispatcher) SendActivationEmail(email, code string) {
	d.enqueue(mailJob{
		to:      email,
		subject: "Activate your dental clinic account",
		body: fmt.Sprintf(
			"Thank you for registering.\n\nYour activation code is: %s\n\nEnter it at %s/activate to activate your account. The code expires in 24 hours.",
			code, d.frontendURL,
		),
	})
}

func (d *MailDispatcher) SendPasswordResetEmail(email, code string) {
	d.enqueue(mailJob{
		to:      email,
		subject: "Reset your dental clinic password",
		body: fmt.Sprintf(
			"A password reset was requested for your account.\n\nYour reset code is: %s\n\nEnter it at %s/reset-password. The code expires in 30 minutes. If you did not request this, you can ignore this email.",
			code, d.frontendURL,
		),
	})
}
