package models

import "gorm.io/gorm"

// Review is independent feedback on a course; no coupling to enrollment.
type Review struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Rating      int    `json:"rating" gorm:"default:0"`
	Text        string `json:"text"`
}
