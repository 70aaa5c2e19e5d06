package utils

import (
	"context"
	"log"

	"fluency/services"

	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler starts the periodic seat-reconciliation
// sweep. Payments whose seat decrement missed at enrollment time are
// retried until a seat frees up.
func InitializeReconcileScheduler(reconciler *services.Reconciler, cronSpec string) *cron.Cron {
	log.Println("[RECONCILER] Initializing seat reconciliation scheduler...")

	c := cron.New()

	_, err := c.AddFunc(cronSpec, func() {
		settled, err := reconciler.Run(context.Background())
		if err != nil {
			log.Printf("[RECONCILER] sweep failed: %v", err)
			return
		}
		if settled > 0 {
			log.Printf("[RECONCILER] settled %d pending seat adjustments", settled)
		}
	})
	if err != nil {
		log.Printf("[RECONCILER] invalid cron spec %q: %v", cronSpec, err)
		return c
	}

	c.Start()
	log.Printf("[RECONCILER] scheduler started with spec %q", cronSpec)
	return c
}
