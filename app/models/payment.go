package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Payment struct {
	PaymentID   int64     `gorm:"primaryKey;autoIncrement:false" json:"paymentId"`
	UserID      int64     `gorm:"index;not null" json:"userId"`
	CourseID    int64     `gorm:"index;not null" json:"courseId"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Status      string    `gorm:"size:32;not null" json:"status"`
	Reference   string    `gorm:"uniqueIndex;size:64;not null" json:"reference"`
	PaymentDate time.Time `gorm:"not null" json:"paymentDate"`
}
