package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/demowin23/vilaw-be/legaldoc"
	"github.com/demowin23/vilaw-be/user"
)

// Scheduler runs the background maintenance jobs: the nightly document
// status resync and the hourly OTP cleanup.
type Scheduler struct {
	cron      *cron.Cron
	documents *legaldoc.Service
	otp       *user.OTPService
}

func NewScheduler(documents *legaldoc.Service, otp *user.OTPService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		documents: documents,
		otp:       otp,
	}
}

func (s *Scheduler) Start() error {
	// Shortly after midnight, when effective/expiry dates roll over.
	if _, err := s.cron.AddFunc("5 0 * * *", s.resyncDocumentStatuses); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@hourly", s.purgeExpiredOTPs); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Background scheduler started")
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) resyncDocumentStatuses() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	updated, err := s.documents.ResyncStatuses(ctx)
	if err != nil {
		log.Printf("cron: resync document statuses: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("cron: resynced status on %d legal documents", updated)
	}
}

func (s *Scheduler) purgeExpiredOTPs() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := s.otp.PurgeExpired(ctx)
	if err != nil {
		log.Printf("cron: purge expired OTPs: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("cron: purged %d expired OTP codes", purged)
	}
}
