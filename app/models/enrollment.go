package models

import "time"

type Enrollment struct {
	EnrollmentID int64     `gorm:"primaryKey;autoIncrement:false" json:"enrollmentId"`
	UserID       int64     `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID     int64     `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	EnrolledAt   time.Time `gorm:"not null" json:"enrollmentDate"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
