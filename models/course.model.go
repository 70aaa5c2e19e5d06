package models

import "gorm.io/gorm"

// Course status lifecycle: created as PENDING by an instructor, moved to
// APPROVED or REJECTED by an admin. Only approved courses are listed
// publicly or counted as popular.
const (
	CourseStatusPending  = "pending"
	CourseStatusApproved = "approved"
	CourseStatusRejected = "rejected"
)

// Course represents a marketplace course listing
type Course struct {
	gorm.Model
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructor_name"`
	InstructorEmail string  `json:"instructor_email" gorm:"index"`
	Price           float64 `json:"price" gorm:"default:0"`
	// AvailableSeats never goes negative: the only writers are the
	// enrollment coordinator and the reconciler, both through the
	// conditional seat-claim update.
	AvailableSeats int    `json:"available_seats" gorm:"default:0"`
	Enroll         int    `json:"enroll" gorm:"default:0"`
	Status         string `json:"status" gorm:"default:'pending'"`
	Feedback       string `json:"feedback" gorm:"default:''"`
}
