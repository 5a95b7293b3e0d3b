package dto

type CreatePaymentRequest struct {
	CourseID *int64   `json:"courseId"`
	Amount   *float64 `json:"amount"`
	Status   string   `json:"status"`
}

type PaymentCreatedResponse struct {
	PaymentID int64  `json:"paymentId"`
	Message   string `json:"message"`
}

type UpdatePaymentRequest struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}
