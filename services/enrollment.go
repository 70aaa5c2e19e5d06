package services

import (
	"context"
	"log"
	"time"

	"fluency/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Store interfaces the coordinator depends on. The GORM-backed
// implementations live in the database package; tests use in-memory
// fakes.

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	MarkSeatAdjusted(ctx context.Context, paymentID uint) error
	ListSeatPending(ctx context.Context) ([]models.Payment, error)
}

type CartStore interface {
	// Remove must be idempotent: deleting an absent entry is not an error.
	Remove(ctx context.Context, cartID uint) error
}

type CourseStore interface {
	// ClaimSeat atomically decrements available_seats and increments
	// enroll when available_seats > 0. Returns false when no row matched.
	ClaimSeat(ctx context.Context, courseID uint) (bool, error)
}

// EnrollmentPayload is the client-confirmed payment handed to the
// coordinator.
type EnrollmentPayload struct {
	StudentEmail string
	CourseID     uint
	CartID       uint
	Amount       float64
	Currency     string
	GatewayRaw   []byte
}

// EnrollmentCoordinator turns a confirmed payment into durable enrollment
// state: persist the payment record, drop the cart entry, claim a seat.
// The three steps hit independently durable stores and are deliberately
// not wrapped in a cross-store transaction; a payment record is never
// lost, and a missed seat claim is left for the reconciler to retry.
type EnrollmentCoordinator struct {
	payments PaymentStore
	carts    CartStore
	courses  CourseStore
	notify   func(payment *models.Payment)
}

func NewEnrollmentCoordinator(payments PaymentStore, carts CartStore, courses CourseStore) *EnrollmentCoordinator {
	return &EnrollmentCoordinator{
		payments: payments,
		carts:    carts,
		courses:  courses,
	}
}

// WithNotifier registers a best-effort post-enrollment callback (receipt
// email). It runs after the payment is durable and never affects the
// result.
func (ec *EnrollmentCoordinator) WithNotifier(notify func(payment *models.Payment)) *EnrollmentCoordinator {
	ec.notify = notify
	return ec
}

// CompleteEnrollment runs the enrollment sequence. The created payment
// record is returned whether or not a seat was still available; callers
// can read SeatAdjusted to see which case they got.
func (ec *EnrollmentCoordinator) CompleteEnrollment(ctx context.Context, payload EnrollmentPayload) (*models.Payment, error) {
	payment := &models.Payment{
		TransactionID: uuid.NewString(),
		StudentEmail:  payload.StudentEmail,
		CourseID:      payload.CourseID,
		CartID:        payload.CartID,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		PaidAt:        time.Now(),
	}
	if len(payload.GatewayRaw) > 0 {
		payment.GatewayResponse = datatypes.JSON(payload.GatewayRaw)
	}

	// Step 1: the payment record is the source of truth and must land
	// before anything else. A store failure here aborts the whole call.
	if err := ec.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	// Step 2: drop the cart entry. Best effort; the entry may already be
	// gone, and a failure must not undo the payment.
	if err := ec.carts.Remove(ctx, payload.CartID); err != nil {
		log.Printf("[ENROLLMENT] cart %d removal failed for payment %s: %v", payload.CartID, payment.TransactionID, err)
	}

	// Step 3: claim a seat. Zero rows matched means the course was full
	// (or missing); the payment stays with SeatAdjusted=false and the
	// reconciler retries it.
	claimed, err := ec.courses.ClaimSeat(ctx, payload.CourseID)
	if err != nil {
		log.Printf("[ENROLLMENT] seat claim failed for payment %s, course %d: %v", payment.TransactionID, payload.CourseID, err)
	}
	if claimed {
		if err := ec.payments.MarkSeatAdjusted(ctx, payment.ID); err != nil {
			log.Printf("[ENROLLMENT] could not flag payment %s as seat-adjusted: %v", payment.TransactionID, err)
		} else {
			payment.SeatAdjusted = true
		}
	}

	if ec.notify != nil {
		ec.notify(payment)
	}

	return payment, nil
}
