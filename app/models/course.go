package models

import "time"

type Course struct {
	CourseID     int64     `gorm:"primaryKey;autoIncrement:false" json:"courseId"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"size:4096;not null" json:"description"`
	Category     string    `gorm:"index;size:128;not null" json:"category"`
	Price        float64   `gorm:"not null" json:"price"`
	Duration     string    `gorm:"size:64;not null" json:"duration"`
	InstructorID int64     `gorm:"index;not null" json:"instructorId"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
