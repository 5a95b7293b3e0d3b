package dto

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserID is stringified in the login response, mirroring the token claims.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
