package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is the durable record of a completed enrollment purchase.
// Rows are immutable after creation, except for SeatAdjusted which the
// reconciler flips once the course counters caught up.
type Payment struct {
	gorm.Model
	TransactionID string  `json:"transaction_id" gorm:"uniqueIndex;not null"`
	StudentEmail  string  `json:"student_email" gorm:"index;not null"`
	CourseID      uint    `json:"course_id" gorm:"index;not null"`
	CartID        uint    `json:"cart_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency" gorm:"default:'usd'"`
	// SeatAdjusted records whether the course seat counters were updated
	// for this payment. False means the course was full (or the update
	// failed) at payment time; the reconciliation sweep retries these.
	SeatAdjusted    bool           `json:"seat_adjusted" gorm:"default:false"`
	GatewayResponse datatypes.JSON `json:"gateway_response,omitempty"`
	PaidAt          time.Time      `json:"paid_at"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
