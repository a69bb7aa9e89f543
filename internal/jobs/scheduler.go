package jobs

import (
	"context"
	"log"
	"time"

	"busticket/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// StartReconciler schedules the seat-repair pass on a fixed interval and
// returns the running scheduler so the caller can shut it down. A zero or
// negative interval disables the job.
func StartReconciler(svc services.ReconcileService, interval time.Duration) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, nil
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	j, err := sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if _, err := svc.Run(ctx); err != nil {
				log.Printf("reconcile job failed: %v", err)
			}
		}),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}
	log.Printf("reconcile job scheduled: id=%s interval=%s", j.ID().String(), interval)

	sched.Start()
	return sched, nil
}

// StopScheduler shuts the scheduler down, tolerating a nil scheduler from a
// disabled job.
func StopScheduler(sched gocron.Scheduler) {
	if sched == nil {
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Printf("scheduler shutdown: %v", err)
	}
}
