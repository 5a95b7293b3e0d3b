package dto

type EnrollRequest struct {
	CourseID *int64 `json:"courseId"`
}

type EnrollResponse struct {
	EnrollmentID int64  `json:"enrollmentId"`
	Message      string `json:"message"`
}

type UpdateEnrollmentRequest struct {
	EnrollmentDate *string `json:"enrollmentDate"`
}
