package models

import "gorm.io/gorm"

// Role values stored on a user. An empty role means the user has no
// elevated access and every role check fails for them.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	PhotoURL string `json:"photo_url" gorm:"default:''"`
	Role     string `json:"role" gorm:"default:''"`
	// Number of students enrolled across this instructor's courses,
	// used for the popular-instructors listing.
	Enroll int `json:"enroll" gorm:"default:0"`
}
