package services

import (
	"context"
	"log"
)

// Reconciler retries the seat decrement for payments whose claim missed
// at enrollment time (course full, or the update failed outright). When
// a seat has since freed up the counters are corrected and the payment
// is flagged; a still-full course simply stays pending for the next
// sweep.
type Reconciler struct {
	payments PaymentStore
	courses  CourseStore
}

func NewReconciler(payments PaymentStore, courses CourseStore) *Reconciler {
	return &Reconciler{payments: payments, courses: courses}
}

// Run performs one sweep and returns how many payments were settled.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	pending, err := r.payments.ListSeatPending(ctx)
	if err != nil {
		return 0, err
	}

	settled := 0
	for _, payment := range pending {
		claimed, err := r.courses.ClaimSeat(ctx, payment.CourseID)
		if err != nil {
			log.Printf("[RECONCILER] seat claim failed for payment %s: %v", payment.TransactionID, err)
			continue
		}
		if !claimed {
			// Course still full; leave the payment for a later sweep.
			continue
		}
		if err := r.payments.MarkSeatAdjusted(ctx, payment.ID); err != nil {
			log.Printf("[RECONCILER] could not flag payment %s: %v", payment.TransactionID, err)
			continue
		}
		settled++
	}

	return settled, nil
}
