package models

import "gorm.io/gorm"

// CartItem is a pending intent to enroll: created when a student selects
// a course, removed either explicitly or by a completed enrollment.
type CartItem struct {
	gorm.Model
	StudentEmail string  `json:"student_email" gorm:"index;not null"`
	CourseID     uint    `json:"course_id" gorm:"index;not null"`
	CourseTitle  string  `json:"course_title"`
	Price        float64 `json:"price"`
}
