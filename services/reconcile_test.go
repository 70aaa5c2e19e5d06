package services

import (
	"context"
	"errors"
	"testing"

	"fluency/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPaymentStore struct {
	fakePaymentStore
	listErr error
}

func (f *failingPaymentStore) ListSeatPending(ctx context.Context) ([]models.Payment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.fakePaymentStore.ListSeatPending(ctx)
}

func TestReconcilerSettlesPendingPayment(t *testing.T) {
	payments := &fakePaymentStore{}
	courses := newFakeCourseStore(1, 0)
	carts := newFakeCartStore(7)

	// Enroll against a full course, then free a seat before the sweep.
	ec := NewEnrollmentCoordinator(payments, carts, courses)
	payment, err := ec.CompleteEnrollment(context.Background(), testPayload(1, 7))
	require.NoError(t, err)
	require.False(t, payment.SeatAdjusted)

	courses.mu.Lock()
	courses.seats[1] = 1
	courses.mu.Unlock()

	r := NewReconciler(payments, courses)
	settled, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, settled)
	assert.Equal(t, 0, courses.seats[1])
	assert.Equal(t, 1, courses.enroll[1])

	pending, err := payments.ListSeatPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestReconcilerLeavesFullCoursePending(t *testing.T) {
	payments := &fakePaymentStore{}
	courses := newFakeCourseStore(1, 0)
	carts := newFakeCartStore(7)

	ec := NewEnrollmentCoordinator(payments, carts, courses)
	_, err := ec.CompleteEnrollment(context.Background(), testPayload(1, 7))
	require.NoError(t, err)

	r := NewReconciler(payments, courses)
	settled, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, settled)

	pending, err := payments.ListSeatPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestReconcilerNothingPending(t *testing.T) {
	payments := &fakePaymentStore{}
	courses := newFakeCourseStore(1, 5)

	r := NewReconciler(payments, courses)
	settled, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, settled)
}

func TestReconcilerListFailure(t *testing.T) {
	payments := &failingPaymentStore{listErr: errors.New("store unreachable")}
	courses := newFakeCourseStore(1, 5)

	r := NewReconciler(payments, courses)
	_, err := r.Run(context.Background())
	assert.Error(t, err)
}
