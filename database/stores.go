package database

import (
	"context"

	"fluency/models"

	"gorm.io/gorm"
)

// GORM-backed store implementations handed to the enrollment coordinator
// and the reconciler. Constructed once at startup in main and passed in
// explicitly; controllers keep using the global handle directly.

// PaymentStore persists enrollment payment records.
type PaymentStore struct {
	Db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{Db: db}
}

func (s *PaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	// Never write through the Course association from here; the seat
	// counters move only via ClaimSeat.
	return s.Db.WithContext(ctx).Omit("Course").Create(payment).Error
}

func (s *PaymentStore) MarkSeatAdjusted(ctx context.Context, paymentID uint) error {
	return s.Db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", paymentID).
		UpdateColumn("seat_adjusted", true).Error
}

// ListSeatPending returns payments whose seat decrement never landed.
func (s *PaymentStore) ListSeatPending(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.Db.WithContext(ctx).
		Where("seat_adjusted = ?", false).
		Order("paid_at asc").
		Find(&payments).Error
	return payments, err
}

// CartStore removes pending enrollment intents.
type CartStore struct {
	Db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{Db: db}
}

// Remove deletes a cart entry by id. Deleting an absent row is not an
// error, so the operation is idempotent.
func (s *CartStore) Remove(ctx context.Context, cartID uint) error {
	return s.Db.WithContext(ctx).
		Unscoped().
		Delete(&models.CartItem{}, cartID).Error
}

// CourseStore owns the seat counters.
type CourseStore struct {
	Db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore {
	return &CourseStore{Db: db}
}

// ClaimSeat decrements available_seats and increments enroll in a single
// conditional UPDATE. The WHERE clause and the mutation are evaluated
// atomically by the database, so available_seats cannot go negative even
// under concurrent claims. Returns false when no row matched (course
// missing or already full).
func (s *CourseStore) ClaimSeat(ctx context.Context, courseID uint) (bool, error) {
	result := s.Db.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ? AND available_seats > 0", courseID).
		UpdateColumns(map[string]interface{}{
			"available_seats": gorm.Expr("available_seats - 1"),
			"enroll":          gorm.Expr("enroll + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
