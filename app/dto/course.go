package dto

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Duration    string   `json:"duration"`
}

// Pointer fields distinguish "absent" from zero values in partial updates.
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
}

type CourseCreatedResponse struct {
	CourseID int64  `json:"courseId"`
	Message  string `json:"message"`
}
